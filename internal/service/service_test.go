package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/lshigami/Placify/internal/model"
	"gorm.io/gorm"
)

// newTestDB opens an isolated in-memory sqlite database with the full schema.
// A single pooled connection keeps the memory database alive for the test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.User{},
		&model.Session{},
		&model.TestSection{},
		&model.Question{},
		&model.TestAttempt{},
		&model.UserResponse{},
		&model.Resume{},
		&model.Recommendation{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// createSection seeds a section with n equal-weight questions whose correct
// answer is always "A". Returns the section with questions loaded.
func createSection(t *testing.T, db *gorm.DB, name string, n int) *model.TestSection {
	t.Helper()

	section := model.TestSection{Name: name, DurationMinutes: 30, TotalQuestions: n}
	for i := 0; i < n; i++ {
		section.Questions = append(section.Questions, model.Question{
			QuestionText:  "question",
			OptionA:       "a",
			OptionB:       "b",
			OptionC:       "c",
			OptionD:       "d",
			CorrectAnswer: "A",
			Points:        1,
		})
	}
	if err := db.Create(&section).Error; err != nil {
		t.Fatalf("create section %q: %v", name, err)
	}
	return &section
}

func createStudent(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()

	user := model.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		FullName:     "Test Student",
		Role:         model.RoleStudent,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user %q: %v", username, err)
	}
	return &user
}

func createAttempt(t *testing.T, db *gorm.DB, userID, sectionID uint, score float64) {
	t.Helper()

	attempt := model.TestAttempt{
		UserID:         userID,
		SectionID:      sectionID,
		TotalQuestions: 10,
		Score:          score,
	}
	if err := db.Create(&attempt).Error; err != nil {
		t.Fatalf("create attempt: %v", err)
	}
}
