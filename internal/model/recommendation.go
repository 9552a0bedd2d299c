package model

import (
	"time"
)

// Recommendation rows are append-only; the most recent row for a user is the
// current recommendation. WeakSections and ImprovementAreas hold JSON arrays.
type Recommendation struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	UserID           uint      `json:"user_id" gorm:"not null;index"`
	WeakSections     string    `json:"weak_sections" gorm:"type:text"`
	ImprovementAreas string    `json:"improvement_areas" gorm:"type:text"`
	PracticeFocus    string    `json:"practice_focus" gorm:"type:text"`
	ReadinessScore   float64   `json:"readiness_score"`
	GeneratedAt      time.Time `json:"generated_at" gorm:"autoCreateTime"`
}
