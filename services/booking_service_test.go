package services

import (
	"testing"

	"hotel-booking-backend/models"
)

func TestTransitionAllowed(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{models.BookingStatusConfirmed, models.BookingStatusCheckedIn, true},
		{models.BookingStatusConfirmed, models.BookingStatusPaid, true},
		{models.BookingStatusConfirmed, models.BookingStatusCancelled, true},
		{models.BookingStatusPaid, models.BookingStatusCheckedIn, true},
		{models.BookingStatusPaid, models.BookingStatusCancelled, true},
		{models.BookingStatusCheckedIn, models.BookingStatusCheckedOut, true},

		{models.BookingStatusConfirmed, models.BookingStatusCheckedOut, false},
		{models.BookingStatusCheckedIn, models.BookingStatusCancelled, false},
		{models.BookingStatusCheckedOut, models.BookingStatusCheckedIn, false},
		{models.BookingStatusCancelled, models.BookingStatusConfirmed, false},
		{models.BookingStatusCheckedOut, models.BookingStatusConfirmed, false},
	}

	for _, tt := range tests {
		if got := transitionAllowed(tt.from, tt.to); got != tt.want {
			t.Errorf("transitionAllowed(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestInsufficientCapacityErrorMessage(t *testing.T) {
	err := &InsufficientCapacityError{Remaining: 3}
	want := "insufficient capacity: only 3 unit(s) remaining"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
