package repository

import (
	"github.com/lshigami/Placify/internal/model"
	"gorm.io/gorm"
)

// StudentWithStats joins a student with their attempt aggregates for the
// admin overview.
type StudentWithStats struct {
	model.User
	AvgScore          *float64
	SectionsAttempted int
}

// DepartmentStats aggregates student performance per department.
type DepartmentStats struct {
	Department    string
	StudentCount  int
	AvgScore      *float64
	TotalAttempts int
}

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id uint) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	FindStudentsWithStats() ([]StudentWithStats, error)
	FindDepartmentStats() ([]DepartmentStats, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindStudentsWithStats() ([]StudentWithStats, error) {
	var results []StudentWithStats
	err := r.db.Model(&model.User{}).
		Select("users.*, AVG(test_attempts.score) as avg_score, COUNT(DISTINCT test_attempts.section_id) as sections_attempted").
		Joins("LEFT JOIN test_attempts ON test_attempts.user_id = users.id").
		Where("users.role = ?", model.RoleStudent).
		Group("users.id").
		Order("users.id").
		Scan(&results).Error
	return results, err
}

func (r *userRepository) FindDepartmentStats() ([]DepartmentStats, error) {
	var results []DepartmentStats
	err := r.db.Model(&model.User{}).
		Select("users.department, COUNT(DISTINCT users.id) as student_count, AVG(test_attempts.score) as avg_score, COUNT(test_attempts.id) as total_attempts").
		Joins("LEFT JOIN test_attempts ON test_attempts.user_id = users.id").
		Where("users.role = ? AND users.department IS NOT NULL AND users.department <> ''", model.RoleStudent).
		Group("users.department").
		Order("users.department").
		Scan(&results).Error
	return results, err
}
