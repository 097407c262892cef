package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	mysql "github.com/go-sql-driver/mysql"

	"hotel-booking-backend/models"
	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"
)

type RoomTypeController struct {
	RoomTypes *services.RoomTypeService
}

func NewRoomTypeController(svc *services.RoomTypeService) *RoomTypeController {
	return &RoomTypeController{RoomTypes: svc}
}

// GetRoomTypes handles GET /api/room-types.
func (rc *RoomTypeController) GetRoomTypes(c *gin.Context) {
	roomTypes, err := rc.RoomTypes.GetAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list room types")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, roomTypes)
}

// GetRoomTypeBySlug handles GET /api/room-types/:slug, the room detail /
// booking form fetch.
func (rc *RoomTypeController) GetRoomTypeBySlug(c *gin.Context) {
	rt, err := rc.RoomTypes.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, services.ErrRoomTypeNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load room type")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rt)
}

// CreateRoomType handles POST /api/room-types.
func (rc *RoomTypeController) CreateRoomType(c *gin.Context) {
	var rt models.RoomType
	if err := c.ShouldBindJSON(&rt); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room type payload")
		return
	}

	created, err := rc.RoomTypes.Create(c.Request.Context(), rt)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRoomType) {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			utils.JSONError(c, http.StatusConflict, "a room type with that slug already exists")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to create room type")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

// UpdateRoomType handles PATCH /api/room-types/:id — the admin stock/price
// edit form.
func (rc *RoomTypeController) UpdateRoomType(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var in services.UpdateRoomTypeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room type payload")
		return
	}

	updated, err := rc.RoomTypes.Update(c.Request.Context(), id, in)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRoomTypeNotFound):
			utils.JSONError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrInvalidRoomType):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to update room type")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

// DeleteRoomType handles DELETE /api/room-types/:id.
func (rc *RoomTypeController) DeleteRoomType(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := rc.RoomTypes.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrRoomTypeNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete room type")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
