package services

import "testing"

func TestTotalPrice(t *testing.T) {
	tests := []struct {
		name      string
		nights    int
		unitPrice int64
		quantity  int
		want      int64
	}{
		{"single night single unit", 1, 850000, 1, 850000},
		{"three nights two units", 3, 450000, 2, 2700000},
		{"quantity defaults to one", 2, 500000, 0, 1000000},
		{"free room", 4, 0, 2, 0},
		{"negative nights clamp to zero", -1, 850000, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalPrice(tt.nights, tt.unitPrice, tt.quantity); got != tt.want {
				t.Errorf("TotalPrice = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTotalPriceMatchesStayNights(t *testing.T) {
	stay, err := ParseStayInterval("2024-06-01", "2024-06-04")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := TotalPrice(stay.Nights(), 850000, 2); got != 5100000 {
		t.Errorf("TotalPrice = %d, want 5100000 (3 nights x 850000 x 2)", got)
	}
}
