package model

import (
	"time"
)

// Session is the server-side login state referenced by the opaque cookie token.
type Session struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Token     string    `json:"-" gorm:"size:36;not null;uniqueIndex"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
