package model

import (
	"time"

	"gorm.io/gorm"
)

// Known section names. The recommendation engine matches on these exhaustively;
// adding a section here requires adding its improvement advice as well.
const (
	SectionAptitude         = "Aptitude"
	SectionLogicalReasoning = "Logical Reasoning"
	SectionCoding           = "Coding"
	SectionHRSoftSkills     = "HR & Soft Skills"
	SectionDomainKnowledge  = "Domain Knowledge"
)

type TestSection struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	Name            string         `json:"section_name" gorm:"not null;uniqueIndex"`
	Description     string         `json:"description,omitempty"`
	DurationMinutes int            `json:"duration_minutes" gorm:"not null;default:30"`
	TotalQuestions  int            `json:"total_questions" gorm:"not null;default:0"`
	Questions       []Question     `json:"questions,omitempty" gorm:"foreignKey:SectionID"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
