package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking statuses. Only the active set consumes capacity; a checked-out or
// cancelled booking frees its units immediately.
const (
	BookingStatusConfirmed  = "confirmed"
	BookingStatusPaid       = "paid"
	BookingStatusCheckedIn  = "checked_in"
	BookingStatusCheckedOut = "checked_out"
	BookingStatusCancelled  = "cancelled"
)

// ActiveBookingStatuses lists the statuses that count toward occupancy,
// in the form gorm's IN clause expects.
var ActiveBookingStatuses = []string{
	BookingStatusConfirmed,
	BookingStatusPaid,
	BookingStatusCheckedIn,
}

// IsActiveStatus reports whether a booking in the given status occupies
// capacity.
func IsActiveStatus(status string) bool {
	switch status {
	case BookingStatusConfirmed, BookingStatusPaid, BookingStatusCheckedIn:
		return true
	}
	return false
}

// IsKnownStatus reports whether status is one of the five lifecycle states.
func IsKnownStatus(status string) bool {
	switch status {
	case BookingStatusConfirmed, BookingStatusPaid, BookingStatusCheckedIn,
		BookingStatusCheckedOut, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking reserves Quantity units of one room type for the half-open stay
// [CheckIn, CheckOut). The checkout date itself is never occupied: the guest
// leaves before that night, so a new stay may begin the same day.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code"`

	RoomTypeID uint      `gorm:"column:room_type_id;index;not null" json:"room_type_id"`
	CheckIn    time.Time `gorm:"column:check_in;not null" json:"check_in"`
	CheckOut   time.Time `gorm:"column:check_out;not null" json:"check_out"`
	Quantity   int       `gorm:"not null;default:1" json:"quantity"`

	Status     string `gorm:"size:32;not null;index" json:"status"`
	TotalPrice int64  `gorm:"column:total_price;not null;default:0" json:"total_price"`

	GuestName     string `gorm:"column:guest_name;size:120" json:"guest_name"`
	Phone         string `gorm:"column:phone_number;size:32" json:"phone_number"`
	PaymentMethod string `gorm:"column:payment_method;size:32" json:"payment_method"`

	Adults   int `gorm:"default:1" json:"adults"`
	Children int `gorm:"default:0" json:"children"`

	RoomType RoomType `gorm:"foreignKey:RoomTypeID;references:ID" json:"room_type,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Units returns the number of physical units this booking consumes while
// active. Rows written before the quantity column existed default to one.
func (b Booking) Units() int {
	if b.Quantity < 1 {
		return 1
	}
	return b.Quantity
}
