package model

import (
	"time"
)

type UserResponse struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	AttemptID      uint      `json:"attempt_id" gorm:"not null;index"`
	QuestionID     uint      `json:"question_id" gorm:"not null;index"`
	SelectedAnswer string    `json:"selected_answer" gorm:"size:1"` // empty when the question was skipped
	IsCorrect      bool      `json:"is_correct" gorm:"not null"`
	CreatedAt      time.Time `json:"created_at"`
}
