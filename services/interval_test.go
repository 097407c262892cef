package services

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseStayInterval(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		wantErr  bool
		nights   int
	}{
		{"one night", "2024-06-01", "2024-06-02", false, 1},
		{"three nights", "2024-06-01", "2024-06-04", false, 3},
		{"equal dates", "2024-06-05", "2024-06-05", true, 0},
		{"reversed", "2024-06-05", "2024-06-03", true, 0},
		{"garbage check-in", "notadate", "2024-06-03", true, 0},
		{"empty check-out", "2024-06-01", "", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stay, err := ParseStayInterval(tt.checkIn, tt.checkOut)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDateRange) {
					t.Fatalf("want ErrInvalidDateRange, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := stay.Nights(); got != tt.nights {
				t.Errorf("Nights() = %d, want %d", got, tt.nights)
			}
		})
	}
}

func TestNewStayIntervalTruncatesToMidnightUTC(t *testing.T) {
	start := time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)
	end := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	stay, err := NewStayInterval(start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !stay.Start.Equal(date(2024, 6, 1)) || !stay.End.Equal(date(2024, 6, 3)) {
		t.Errorf("got [%v, %v), want midnight bounds", stay.Start, stay.End)
	}
	if stay.Nights() != 2 {
		t.Errorf("Nights() = %d, want 2", stay.Nights())
	}
}

func TestContainsDateHalfOpen(t *testing.T) {
	stay, err := NewStayInterval(date(2024, 5, 1), date(2024, 5, 3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		d    time.Time
		want bool
	}{
		{date(2024, 4, 30), false},
		{date(2024, 5, 1), true},  // check-in night
		{date(2024, 5, 2), true},  // middle night
		{date(2024, 5, 3), false}, // checkout day is free
		{date(2024, 5, 4), false},
	}
	for _, tt := range tests {
		if got := stay.ContainsDate(tt.d); got != tt.want {
			t.Errorf("ContainsDate(%s) = %v, want %v", tt.d.Format(DateLayout), got, tt.want)
		}
	}
}

func TestOverlapsHalfOpen(t *testing.T) {
	base, _ := NewStayInterval(date(2024, 6, 10), date(2024, 6, 15))

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"identical", date(2024, 6, 10), date(2024, 6, 15), true},
		{"contained", date(2024, 6, 11), date(2024, 6, 12), true},
		{"overlap left", date(2024, 6, 8), date(2024, 6, 11), true},
		{"overlap right", date(2024, 6, 14), date(2024, 6, 20), true},
		{"back-to-back before", date(2024, 6, 5), date(2024, 6, 10), false},
		{"back-to-back after", date(2024, 6, 15), date(2024, 6, 18), false},
		{"disjoint", date(2024, 7, 1), date(2024, 7, 3), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other, err := NewStayInterval(tt.start, tt.end)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := base.Overlaps(other); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := other.Overlaps(base); got != tt.want {
				t.Errorf("Overlaps (reversed) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSingleDay(t *testing.T) {
	day := SingleDay(time.Date(2024, 6, 4, 18, 45, 0, 0, time.UTC))
	if day.Nights() != 1 {
		t.Fatalf("Nights() = %d, want 1", day.Nights())
	}
	if !day.ContainsDate(date(2024, 6, 4)) {
		t.Error("single day interval should contain its own date")
	}
	if day.ContainsDate(date(2024, 6, 5)) {
		t.Error("single day interval should not contain the next date")
	}
}
