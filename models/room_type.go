package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RoomType is a bookable category (e.g. "Deluxe") backed by a pool of
// interchangeable physical units. TotalUnits is the admin-managed size of
// that pool; availability is always derived from it, never stored.
type RoomType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:120;not null" json:"name"`
	Slug     string `gorm:"size:120;uniqueIndex;not null" json:"slug"`
	Category string `gorm:"size:64" json:"category,omitempty"`

	// Price is per unit per night, in the smallest currency denomination.
	Price      int64 `gorm:"not null;default:0" json:"price"`
	Capacity   int   `gorm:"not null;default:2" json:"capacity"`
	TotalUnits int   `gorm:"column:total_units;not null;default:0" json:"total_units"`

	Image     string         `gorm:"size:255" json:"image,omitempty"`
	Amenities datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
