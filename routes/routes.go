package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-booking-backend/controllers"
	"hotel-booking-backend/middleware"
)

// parseCorsOrigins reads CORS_ORIGINS as a comma-separated list; empty
// means allow all (credentials disabled in that case).
func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	ac *controllers.AvailabilityController,
	bc *controllers.BookingController,
	rc *controllers.RoomTypeController,
	adc *controllers.AdminController,
) *gin.Engine {
	r := gin.Default()

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(middleware.Logger())
	{
		// The authoritative availability source every call site queries.
		api.GET("/check-availability", ac.CheckAvailability)

		roomTypes := api.Group("/room-types")
		{
			roomTypes.GET("", rc.GetRoomTypes)
			roomTypes.GET("/:slug", rc.GetRoomTypeBySlug)
			roomTypes.POST("", rc.CreateRoomType)
			roomTypes.PATCH("/:id", rc.UpdateRoomType)
			roomTypes.DELETE("/:id", rc.DeleteRoomType)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)
			bookings.GET("/:id", bc.GetBooking)
			bookings.PATCH("/:id/status", bc.UpdateBookingStatus)
		}

		admin := api.Group("/admin")
		{
			admin.GET("/stock", adc.GetStock)
		}

		api.GET("/admins", adc.GetAdmins)
	}

	return r
}
