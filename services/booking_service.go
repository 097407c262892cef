package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotel-booking-backend/models"
)

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrRoomTypeNotFound = errors.New("room type not found")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
)

// InsufficientCapacityError rejects a booking whose quantity exceeds what is
// free over the stay. Remaining carries the exact count so the caller can
// tell the guest how far to adjust.
type InsufficientCapacityError struct {
	Remaining int
}

func (e *InsufficientCapacityError) Error() string {
	return fmt.Sprintf("insufficient capacity: only %d unit(s) remaining", e.Remaining)
}

// InvalidTransitionError rejects a lifecycle move the current status does
// not allow (e.g. checking out a booking that never checked in).
type InvalidTransitionError struct {
	From, To string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot move booking from %q to %q", e.From, e.To)
}

// legalTransitions is the admin-driven lifecycle: confirmed/paid bookings
// can check in or cancel, checked-in bookings can only check out.
var legalTransitions = map[string][]string{
	models.BookingStatusConfirmed: {models.BookingStatusPaid, models.BookingStatusCheckedIn, models.BookingStatusCancelled},
	models.BookingStatusPaid:      {models.BookingStatusCheckedIn, models.BookingStatusCancelled},
	models.BookingStatusCheckedIn: {models.BookingStatusCheckedOut},
}

// CreateBookingInput carries the booking submission as posted by the
// frontend. TotalPrice is intentionally absent: the server re-derives it.
type CreateBookingInput struct {
	RoomTypeID    uint
	CheckIn       string
	CheckOut      string
	Quantity      int
	Adults        int
	Children      int
	GuestName     string
	Phone         string
	PaymentMethod string
}

// BookingService owns the write path for bookings. The client-side
// availability verdict is advisory only; the capacity check here, inside a
// locked transaction, is the one that counts.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// Create validates the stay, re-checks capacity atomically and inserts the
// booking as confirmed. The room type row is locked for the duration of the
// transaction so two guests racing for the last unit serialize here.
func (s *BookingService) Create(ctx context.Context, in CreateBookingInput) (models.Booking, error) {
	stay, err := ParseStayInterval(in.CheckIn, in.CheckOut)
	if err != nil {
		return models.Booking{}, err
	}

	quantity := in.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return models.Booking{}, ErrInvalidQuantity
	}

	var booking models.Booking
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var roomType models.RoomType
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&roomType, in.RoomTypeID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomTypeNotFound
			}
			return fmt.Errorf("lock room type: %w", err)
		}

		var bookings []models.Booking
		err = tx.Where("room_type_id = ?", roomType.ID).
			Where("status IN ?", models.ActiveBookingStatuses).
			Where("check_in < ? AND check_out > ?", stay.End, stay.Start).
			Find(&bookings).Error
		if err != nil {
			return fmt.Errorf("load overlapping bookings: %w", err)
		}

		occupied := OccupiedUnits(roomType.ID, stay, bookings)
		res := ResolveCapacity(roomType.TotalUnits, occupied, quantity)
		if !res.Satisfiable {
			return &InsufficientCapacityError{Remaining: res.Available}
		}

		booking = models.Booking{
			ReferenceCode: uuid.NewString(),
			RoomTypeID:    roomType.ID,
			CheckIn:       stay.Start,
			CheckOut:      stay.End,
			Quantity:      quantity,
			Status:        models.BookingStatusConfirmed,
			TotalPrice:    TotalPrice(stay.Nights(), roomType.Price, quantity),
			GuestName:     in.GuestName,
			Phone:         in.Phone,
			PaymentMethod: in.PaymentMethod,
			Adults:        in.Adults,
			Children:      in.Children,
		}
		if booking.Adults < 1 {
			booking.Adults = 1
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("create booking: %w", err)
		}
		booking.RoomType = roomType
		return nil
	})
	if err != nil {
		return models.Booking{}, err
	}
	return booking, nil
}

// UpdateStatus applies one lifecycle transition (check-in, check-out,
// cancel, mark paid) after checking it is legal from the current status.
func (s *BookingService) UpdateStatus(ctx context.Context, id uint, next string) (models.Booking, error) {
	if !models.IsKnownStatus(next) {
		return models.Booking{}, &InvalidTransitionError{From: "", To: next}
	}

	var booking models.Booking
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&booking, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("lock booking: %w", err)
		}

		if !transitionAllowed(booking.Status, next) {
			return &InvalidTransitionError{From: booking.Status, To: next}
		}

		booking.Status = next
		if err := tx.Model(&booking).Update("status", next).Error; err != nil {
			return fmt.Errorf("update status: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Booking{}, err
	}
	return booking, nil
}

func transitionAllowed(from, to string) bool {
	for _, allowed := range legalTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// List returns all bookings, newest first, with their room type preloaded
// for the admin dashboard.
func (s *BookingService) List(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.WithContext(ctx).
		Preload("RoomType").
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

func (s *BookingService) GetByID(ctx context.Context, id uint) (models.Booking, error) {
	var booking models.Booking
	err := s.DB.WithContext(ctx).Preload("RoomType").First(&booking, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, ErrBookingNotFound
		}
		return models.Booking{}, fmt.Errorf("load booking: %w", err)
	}
	return booking, nil
}
