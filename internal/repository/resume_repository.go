package repository

import (
	"errors"

	"github.com/lshigami/Placify/internal/model"
	"gorm.io/gorm"
)

type ResumeRepository interface {
	// Upsert updates the user's existing resume row, or inserts one when none
	// exists. A user has at most one resume.
	Upsert(resume *model.Resume) error
	FindByUserID(userID uint) (*model.Resume, error)
}

type resumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

func (r *resumeRepository) Upsert(resume *model.Resume) error {
	var existing model.Resume
	err := r.db.Where("user_id = ?", resume.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(resume).Error
	}
	if err != nil {
		return err
	}
	resume.ID = existing.ID
	resume.CreatedAt = existing.CreatedAt
	return r.db.Save(resume).Error
}

func (r *resumeRepository) FindByUserID(userID uint) (*model.Resume, error) {
	var resume model.Resume
	if err := r.db.Where("user_id = ?", userID).First(&resume).Error; err != nil {
		return nil, err
	}
	return &resume, nil
}
