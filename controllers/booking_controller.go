package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"
)

// CreateBookingRequest mirrors what the booking form posts. total_price is
// accepted but ignored: the server recomputes it from the room type price.
type CreateBookingRequest struct {
	RoomTypeID    uint   `json:"room_type_id" binding:"required"`
	CheckIn       string `json:"check_in" binding:"required"`
	CheckOut      string `json:"check_out" binding:"required"`
	Quantity      int    `json:"quantity"`
	Adults        int    `json:"adults"`
	Children      int    `json:"children"`
	TotalPrice    int64  `json:"total_price"`
	GuestName     string `json:"guest_name" binding:"required"`
	Phone         string `json:"phone_number"`
	PaymentMethod string `json:"payment_method"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{Bookings: svc}
}

// CreateBooking handles POST /api/bookings. Capacity is re-checked
// atomically inside the service; a client that believed the stay was
// available can still be rejected here.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking payload")
		return
	}

	booking, err := bc.Bookings.Create(c.Request.Context(), services.CreateBookingInput{
		RoomTypeID:    req.RoomTypeID,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		Quantity:      req.Quantity,
		Adults:        req.Adults,
		Children:      req.Children,
		GuestName:     req.GuestName,
		Phone:         req.Phone,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		var capErr *services.InsufficientCapacityError
		switch {
		case errors.Is(err, services.ErrInvalidDateRange),
			errors.Is(err, services.ErrInvalidQuantity):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrRoomTypeNotFound):
			utils.JSONError(c, http.StatusNotFound, err.Error())
		case errors.As(err, &capErr):
			utils.JSONErrorWithRemaining(c, http.StatusConflict, capErr.Error(), capErr.Remaining)
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to create booking")
		}
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// GetBookings handles GET /api/bookings (admin scope).
func (bc *BookingController) GetBookings(c *gin.Context) {
	bookings, err := bc.Bookings.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// GetBooking handles GET /api/bookings/:id.
func (bc *BookingController) GetBooking(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	booking, err := bc.Bookings.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load booking")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// UpdateBookingStatus handles PATCH /api/bookings/:id/status, driving the
// admin check-in / check-out / cancel actions.
func (bc *BookingController) UpdateBookingStatus(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}

	booking, err := bc.Bookings.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		var transErr *services.InvalidTransitionError
		switch {
		case errors.Is(err, services.ErrBookingNotFound):
			utils.JSONError(c, http.StatusNotFound, err.Error())
		case errors.As(err, &transErr):
			utils.JSONError(c, http.StatusConflict, transErr.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to update booking status")
		}
		return
	}

	utils.JSONSuccess(c, http.StatusOK, booking)
}

// uintParam parses the :id path parameter, writing the 400 itself on
// failure.
func uintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}
