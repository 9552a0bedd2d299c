package model

import (
	"time"

	"gorm.io/gorm"
)

// Resume holds the free-text resume fields together with the derived scores.
// At most one row per user; saving again updates the existing row.
type Resume struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	UserID         uint           `json:"user_id" gorm:"not null;uniqueIndex"`
	FullName       string         `json:"full_name"`
	Email          string         `json:"email"`
	Phone          string         `json:"phone"`
	Education      string         `json:"education" gorm:"type:text"`
	Skills         string         `json:"skills" gorm:"type:text"`
	Experience     string         `json:"experience" gorm:"type:text"`
	Projects       string         `json:"projects" gorm:"type:text"`
	Certifications string         `json:"certifications" gorm:"type:text"`
	ResumeText     string         `json:"resume_text" gorm:"type:text"`
	ATSScore       float64        `json:"ats_score"`
	KeywordScore   float64        `json:"keyword_score"`
	FormatScore    float64        `json:"format_score"`
	OverallScore   float64        `json:"overall_score"`
	Feedback       string         `json:"feedback" gorm:"type:text"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
