package services

import (
	"hotel-booking-backend/models"
)

// OccupiedUnits counts how many units of roomTypeID are consumed during the
// stay. A booking counts iff it targets the same room type (matched on the
// id only, never on the name), its status is in the active set, and its own
// half-open range overlaps the queried one. Each match contributes its full
// quantity: a booking reserving 3 units consumes 3 units, not 1.
//
// Pure function: callers pass the booking set they already hold.
func OccupiedUnits(roomTypeID uint, stay StayInterval, bookings []models.Booking) int {
	occupied := 0
	for _, b := range bookings {
		if b.RoomTypeID != roomTypeID {
			continue
		}
		if !models.IsActiveStatus(b.Status) {
			continue
		}
		booked, ok := bookingStay(b)
		if !ok {
			continue
		}
		if !stay.Overlaps(booked) {
			continue
		}
		occupied += b.Units()
	}
	return occupied
}
