package repository

import (
	"github.com/lshigami/Placify/internal/model"
	"gorm.io/gorm"
)

// SectionAverage is a student's aggregate over all attempts of one section.
type SectionAverage struct {
	SectionName string
	AvgScore    float64
	Attempts    int
}

type AttemptRepository interface {
	// CreateWithResponses persists the attempt and its response rows in one
	// transaction, so a scored attempt is never visible without its responses.
	CreateWithResponses(attempt *model.TestAttempt) error
	FindByID(id uint) (*model.TestAttempt, error)
	FindAllByUser(userID uint) ([]model.TestAttempt, error)
	SectionAveragesByUser(userID uint) ([]SectionAverage, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) CreateWithResponses(attempt *model.TestAttempt) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// GORM creates the associated UserResponse rows with the attempt.
		return tx.Create(attempt).Error
	})
}

func (r *attemptRepository) FindByID(id uint) (*model.TestAttempt, error) {
	var attempt model.TestAttempt
	if err := r.db.Preload("Responses").First(&attempt, id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindAllByUser(userID uint) ([]model.TestAttempt, error) {
	var attempts []model.TestAttempt
	err := r.db.Preload("Section").
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) SectionAveragesByUser(userID uint) ([]SectionAverage, error) {
	var results []SectionAverage
	err := r.db.Model(&model.TestAttempt{}).
		Select("test_sections.name as section_name, AVG(test_attempts.score) as avg_score, COUNT(test_attempts.id) as attempts").
		Joins("JOIN test_sections ON test_sections.id = test_attempts.section_id").
		Where("test_attempts.user_id = ?", userID).
		Group("test_sections.name").
		Order("test_sections.name").
		Scan(&results).Error
	return results, err
}
