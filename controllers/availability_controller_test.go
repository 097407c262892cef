package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// An invalid date range must be rejected before the service (and thus the
// database) is ever touched; the controller is built with a nil service to
// prove it.
func TestCheckAvailabilityRejectsInvalidRange(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ac := NewAvailabilityController(nil)
	r := gin.New()
	r.GET("/api/check-availability", ac.CheckAvailability)

	tests := []struct {
		name  string
		query string
	}{
		{"equal dates", "check_in=2024-06-05&check_out=2024-06-05"},
		{"reversed", "check_in=2024-06-05&check_out=2024-06-03"},
		{"missing check_out", "check_in=2024-06-05"},
		{"garbage", "check_in=xyz&check_out=2024-06-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/check-availability?"+tt.query, nil)
			r.ServeHTTP(w, req)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestIntQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?adults=3&children=abc&negative=-1", nil)

	if got := intQuery(c, "adults", 1); got != 3 {
		t.Errorf("adults = %d, want 3", got)
	}
	if got := intQuery(c, "children", 0); got != 0 {
		t.Errorf("children fallback = %d, want 0", got)
	}
	if got := intQuery(c, "negative", 2); got != 2 {
		t.Errorf("negative fallback = %d, want 2", got)
	}
	if got := intQuery(c, "missing", 1); got != 1 {
		t.Errorf("missing fallback = %d, want 1", got)
	}
}
