package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"hotel-booking-backend/models"
)

// RoomAvailability is one row of the authoritative availability response:
// a room type together with how many of its units are free over the
// requested stay. Room types with nothing free are omitted from the
// response entirely, so "absent" reads as fully booked on the client side.
type RoomAvailability struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Image        string `json:"image"`
	Price        int64  `json:"price"`
	Capacity     int    `json:"capacity"`
	AvailableQty int    `json:"available_qty"`
}

// AvailabilitySearcher is the authoritative availability source. The
// DB-backed service below implements it server-side; client.HTTPSource
// implements it over the wire.
type AvailabilitySearcher interface {
	Search(ctx context.Context, stay StayInterval, adults, children int) ([]RoomAvailability, error)
}

// AvailabilityService computes availability straight from the bookings
// table. It is the single source of truth the check-availability endpoint
// serves; every client-side estimate must eventually agree with it.
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// Search returns, for every room type that can host the party and still has
// free units over the stay, its price, capacity and remaining quantity.
func (s *AvailabilityService) Search(ctx context.Context, stay StayInterval, adults, children int) ([]RoomAvailability, error) {
	var roomTypes []models.RoomType
	if err := s.DB.WithContext(ctx).Order("price ASC").Find(&roomTypes).Error; err != nil {
		return nil, fmt.Errorf("load room types: %w", err)
	}

	bookings, err := s.activeBookingsOverlapping(ctx, stay)
	if err != nil {
		return nil, err
	}

	party := adults + children
	results := make([]RoomAvailability, 0, len(roomTypes))
	for _, rt := range roomTypes {
		if party > 0 && rt.Capacity < party {
			continue
		}
		occupied := OccupiedUnits(rt.ID, stay, bookings)
		res := ResolveCapacity(rt.TotalUnits, occupied, 1)
		if res.Available <= 0 {
			continue
		}
		results = append(results, RoomAvailability{
			ID:           rt.ID,
			Name:         rt.Name,
			Slug:         rt.Slug,
			Image:        rt.Image,
			Price:        rt.Price,
			Capacity:     rt.Capacity,
			AvailableQty: res.Available,
		})
	}
	return results, nil
}

// activeBookingsOverlapping narrows the scan to bookings that can possibly
// occupy the stay; the exact half-open overlap is still decided by
// OccupiedUnits so the SQL filter and the in-memory rule cannot drift apart.
func (s *AvailabilityService) activeBookingsOverlapping(ctx context.Context, stay StayInterval) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.WithContext(ctx).
		Where("status IN ?", models.ActiveBookingStatuses).
		Where("check_in < ? AND check_out > ?", stay.End, stay.Start).
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("load overlapping bookings: %w", err)
	}
	return bookings, nil
}
