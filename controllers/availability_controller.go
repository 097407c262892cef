package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"
)

type AvailabilityController struct {
	Availability *services.AvailabilityService
}

func NewAvailabilityController(svc *services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{Availability: svc}
}

// CheckAvailability handles
// GET /api/check-availability?check_in=...&check_out=...&adults=...&children=...
// Response shape is the one the frontend expects: {"rooms": [...]}, where a
// fully booked room type is simply absent from the list.
func (ac *AvailabilityController) CheckAvailability(c *gin.Context) {
	stay, err := services.ParseStayInterval(c.Query("check_in"), c.Query("check_out"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	adults := intQuery(c, "adults", 1)
	children := intQuery(c, "children", 0)

	rooms, err := ac.Availability.Search(c.Request.Context(), stay, adults, children)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			utils.JSONError(c, http.StatusRequestTimeout, "availability check timed out")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to check availability")
		return
	}

	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

// intQuery reads an integer query parameter, falling back on absence or
// garbage.
func intQuery(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
