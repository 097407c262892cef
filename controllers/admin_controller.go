package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotel-booking-backend/models"
	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"
)

type AdminController struct {
	DB    *gorm.DB
	Stock *services.StockService
}

func NewAdminController(db *gorm.DB, stock *services.StockService) *AdminController {
	return &AdminController{DB: db, Stock: stock}
}

// GetStock handles GET /api/admin/stock?date=YYYY-MM-DD. The date defaults
// to today so the dashboard opens on the current picture.
func (a *AdminController) GetStock(c *gin.Context) {
	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(services.DateLayout, raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		date = parsed
	}

	rows, err := a.Stock.Snapshot(c.Request.Context(), date)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute stock")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"date":  date.UTC().Format(services.DateLayout),
		"stock": rows,
	})
}

// GetAdmins handles GET /api/admins.
func (a *AdminController) GetAdmins(c *gin.Context) {
	var admins []models.Admin
	if err := a.DB.WithContext(c.Request.Context()).Find(&admins).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list admins")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, admins)
}
