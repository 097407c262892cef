package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"hotel-booking-backend/models"
)

// RoomTypeStock is one row of the admin stock monitor: how a room type's
// unit pool is split between occupied and free on a single date.
type RoomTypeStock struct {
	RoomTypeID uint   `json:"room_type_id"`
	Name       string `json:"name"`
	TotalUnits int    `json:"total_units"`
	Occupied   int    `json:"occupied"`
	Available  int    `json:"available"`
}

// StockSnapshot projects per-room-type occupancy for the single night
// [date, date+1). It runs the exact same aggregation as the guest-facing
// search, over a booking set the caller already fetched, so the two views
// can never disagree.
func StockSnapshot(date time.Time, roomTypes []models.RoomType, bookings []models.Booking) []RoomTypeStock {
	day := SingleDay(date)
	rows := make([]RoomTypeStock, 0, len(roomTypes))
	for _, rt := range roomTypes {
		occupied := OccupiedUnits(rt.ID, day, bookings)
		res := ResolveCapacity(rt.TotalUnits, occupied, 1)
		rows = append(rows, RoomTypeStock{
			RoomTypeID: rt.ID,
			Name:       rt.Name,
			TotalUnits: rt.TotalUnits,
			Occupied:   occupied,
			Available:  res.Available,
		})
	}
	return rows
}

// StockService fetches the inputs for StockSnapshot on behalf of the admin
// dashboard. One round-trip per render; the date can then be changed
// client-side against the same booking set.
type StockService struct {
	DB *gorm.DB
}

func NewStockService(db *gorm.DB) *StockService {
	return &StockService{DB: db}
}

func (s *StockService) Snapshot(ctx context.Context, date time.Time) ([]RoomTypeStock, error) {
	var roomTypes []models.RoomType
	if err := s.DB.WithContext(ctx).Order("price ASC").Find(&roomTypes).Error; err != nil {
		return nil, fmt.Errorf("load room types: %w", err)
	}
	var bookings []models.Booking
	err := s.DB.WithContext(ctx).
		Where("status IN ?", models.ActiveBookingStatuses).
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("load active bookings: %w", err)
	}
	return StockSnapshot(date, roomTypes, bookings), nil
}
