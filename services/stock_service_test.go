package services

import (
	"testing"

	"hotel-booking-backend/models"
)

func TestStockSnapshot(t *testing.T) {
	roomTypes := []models.RoomType{
		{ID: 1, Name: "Deluxe", TotalUnits: 5},
		{ID: 2, Name: "Standard", TotalUnits: 10},
		{ID: 3, Name: "Suite", TotalUnits: 0},
	}
	bookings := []models.Booking{
		mkBooking(1, models.BookingStatusConfirmed, 2, date(2024, 6, 1), date(2024, 6, 4)),
		mkBooking(1, models.BookingStatusCheckedIn, 1, date(2024, 6, 2), date(2024, 6, 5)),
		mkBooking(2, models.BookingStatusCancelled, 10, date(2024, 6, 1), date(2024, 6, 10)),
		mkBooking(2, models.BookingStatusConfirmed, 4, date(2024, 6, 3), date(2024, 6, 6)),
	}

	rows := StockSnapshot(date(2024, 6, 3), roomTypes, bookings)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	byID := map[uint]RoomTypeStock{}
	for _, row := range rows {
		byID[row.RoomTypeID] = row
	}

	if got := byID[1]; got.Occupied != 3 || got.Available != 2 {
		t.Errorf("deluxe = %+v, want occupied 3 available 2", got)
	}
	if got := byID[2]; got.Occupied != 4 || got.Available != 6 {
		t.Errorf("standard = %+v, want occupied 4 available 6 (cancelled ignored)", got)
	}
	if got := byID[3]; got.Occupied != 0 || got.Available != 0 {
		t.Errorf("suite = %+v, want empty pool", got)
	}
}

// The admin view on a checkout date must agree with the guest-facing rule:
// the unit is already free that night.
func TestStockSnapshotCheckoutDateFreesUnit(t *testing.T) {
	roomTypes := []models.RoomType{{ID: 1, Name: "Deluxe", TotalUnits: 5}}
	bookings := []models.Booking{
		mkBooking(1, models.BookingStatusConfirmed, 2, date(2024, 6, 1), date(2024, 6, 4)),
	}

	rows := StockSnapshot(date(2024, 6, 4), roomTypes, bookings)
	if rows[0].Occupied != 0 || rows[0].Available != 5 {
		t.Errorf("checkout date = %+v, want occupied 0 available 5", rows[0])
	}
}
