package model

import (
	"time"
)

// TestAttempt is one completed submission of a section's test. Score and
// CorrectAnswers are written in the same transaction as the responses; the
// row is immutable once scored.
type TestAttempt struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	UserID         uint           `json:"user_id" gorm:"not null;index"`
	SectionID      uint           `json:"section_id" gorm:"not null;index"`
	Section        TestSection    `json:"section,omitempty" gorm:"foreignKey:SectionID"`
	TotalQuestions int            `json:"total_questions" gorm:"not null"`
	TimeTaken      int            `json:"time_taken" gorm:"not null"` // seconds
	Score          float64        `json:"score" gorm:"not null"`      // percentage, 0..100
	CorrectAnswers int            `json:"correct_answers" gorm:"not null"`
	Responses      []UserResponse `json:"responses,omitempty" gorm:"foreignKey:AttemptID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CompletedAt    time.Time      `json:"completed_at" gorm:"autoCreateTime"`
}
