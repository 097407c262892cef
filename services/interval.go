package services

import (
	"errors"
	"time"

	"hotel-booking-backend/models"
)

// ErrInvalidDateRange is returned whenever a requested stay has
// check-out on or before check-in. It is detected before any database or
// network work happens.
var ErrInvalidDateRange = errors.New("check-out date must be after check-in date")

// DateLayout is the wire format for dates, matching the frontend query
// parameters (check_in=2024-06-01).
const DateLayout = "2006-01-02"

// StayInterval is a half-open date range [Start, End): the start night is
// occupied, the checkout day is not. Checkout happens before check-in
// time-of-day, so a unit vacated on day D can be re-let for the night of D.
type StayInterval struct {
	Start time.Time
	End   time.Time
}

// NewStayInterval truncates both dates to midnight UTC and validates that
// the range spans at least one night.
func NewStayInterval(start, end time.Time) (StayInterval, error) {
	s := StayInterval{Start: truncateDay(start), End: truncateDay(end)}
	if !s.End.After(s.Start) {
		return StayInterval{}, ErrInvalidDateRange
	}
	return s, nil
}

// ParseStayInterval builds a StayInterval from the YYYY-MM-DD strings used
// on the wire.
func ParseStayInterval(checkIn, checkOut string) (StayInterval, error) {
	start, err := time.Parse(DateLayout, checkIn)
	if err != nil {
		return StayInterval{}, ErrInvalidDateRange
	}
	end, err := time.Parse(DateLayout, checkOut)
	if err != nil {
		return StayInterval{}, ErrInvalidDateRange
	}
	return NewStayInterval(start, end)
}

// SingleDay returns the one-night interval [d, d+1), used by the admin stock
// monitor to ask "who occupies a unit on this date".
func SingleDay(d time.Time) StayInterval {
	day := truncateDay(d)
	return StayInterval{Start: day, End: day.AddDate(0, 0, 1)}
}

// Nights is the length of the stay in nights, always >= 1 for a valid
// interval.
func (s StayInterval) Nights() int {
	return int(s.End.Sub(s.Start).Hours() / 24)
}

// ContainsDate reports whether date d falls inside the stay: Start <= d < End.
func (s StayInterval) ContainsDate(d time.Time) bool {
	day := truncateDay(d)
	return !day.Before(s.Start) && day.Before(s.End)
}

// Overlaps reports whether two stays share at least one night. Back-to-back
// stays (one ends the day the other starts) do not overlap.
func (s StayInterval) Overlaps(o StayInterval) bool {
	return s.Start.Before(o.End) && o.Start.Before(s.End)
}

// bookingStay derives the half-open interval a booking covers. Rows with a
// non-positive range are reported invalid and must not occupy capacity.
func bookingStay(b models.Booking) (StayInterval, bool) {
	stay, err := NewStayInterval(b.CheckIn, b.CheckOut)
	if err != nil {
		return StayInterval{}, false
	}
	return stay, true
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
