package models

import (
	"time"

	"gorm.io/gorm"
)

// Admin owns the back-office surface: room type inventory and the booking
// lifecycle actions. Password holds a bcrypt hash and never leaves the API.
type Admin struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName string `gorm:"size:120" json:"full_name"`
	Username string `gorm:"size:120;uniqueIndex;not null" json:"username"`
	Password string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
