package repository

import (
	"github.com/lshigami/Placify/internal/model"
	"gorm.io/gorm"
)

type SectionRepository interface {
	Create(section *model.TestSection) error
	FindAll() ([]model.TestSection, error)
	FindByID(id uint) (*model.TestSection, error)
	Count() (int64, error)
}

type sectionRepository struct {
	db *gorm.DB
}

func NewSectionRepository(db *gorm.DB) SectionRepository {
	return &sectionRepository{db: db}
}

func (r *sectionRepository) Create(section *model.TestSection) error {
	// Creates associated questions as well when section.Questions is populated.
	return r.db.Create(section).Error
}

func (r *sectionRepository) FindAll() ([]model.TestSection, error) {
	var sections []model.TestSection
	if err := r.db.Order("id ASC").Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

func (r *sectionRepository) FindByID(id uint) (*model.TestSection, error) {
	var section model.TestSection
	if err := r.db.First(&section, id).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *sectionRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.TestSection{}).Count(&count).Error
	return count, err
}
