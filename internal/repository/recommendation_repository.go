package repository

import (
	"github.com/lshigami/Placify/internal/model"
	"gorm.io/gorm"
)

type RecommendationRepository interface {
	Create(rec *model.Recommendation) error
	FindLatestByUser(userID uint) (*model.Recommendation, error)
}

type recommendationRepository struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) RecommendationRepository {
	return &recommendationRepository{db: db}
}

func (r *recommendationRepository) Create(rec *model.Recommendation) error {
	// History is retained; every generation appends a new row.
	return r.db.Create(rec).Error
}

func (r *recommendationRepository) FindLatestByUser(userID uint) (*model.Recommendation, error) {
	var rec model.Recommendation
	err := r.db.Where("user_id = ?", userID).
		Order("generated_at DESC, id DESC").
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
