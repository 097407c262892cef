package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel-booking-backend/services"
)

func TestHTTPSourceSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/check-availability" {
			t.Errorf("path = %s, want /api/check-availability", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("check_in") != "2024-06-02" || q.Get("check_out") != "2024-06-03" {
			t.Errorf("dates = %s..%s, want 2024-06-02..2024-06-03", q.Get("check_in"), q.Get("check_out"))
		}
		if q.Get("adults") != "2" || q.Get("children") != "1" {
			t.Errorf("party = %s+%s, want 2+1", q.Get("adults"), q.Get("children"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"rooms":[{"id":1,"name":"Deluxe","slug":"deluxe","price":850000,"capacity":4,"available_qty":3}]}`))
	}))
	defer srv.Close()

	stay, err := services.ParseStayInterval("2024-06-02", "2024-06-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	source := NewHTTPSource(srv.URL + "/api/")
	rooms, err := source.Search(context.Background(), stay, 2, 1)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(rooms) != 1 {
		t.Fatalf("got %d rooms, want 1", len(rooms))
	}
	if rooms[0].Slug != "deluxe" || rooms[0].AvailableQty != 3 {
		t.Errorf("room = %+v, want deluxe with 3 available", rooms[0])
	}
}

func TestHTTPSourceNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	stay, _ := services.ParseStayInterval("2024-06-02", "2024-06-03")
	source := NewHTTPSource(srv.URL)
	if _, err := source.Search(context.Background(), stay, 1, 0); err == nil {
		t.Fatal("want error on non-200 response")
	}
}

func TestHTTPSourceContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	stay, _ := services.ParseStayInterval("2024-06-02", "2024-06-03")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	source := NewHTTPSource(srv.URL)
	if _, err := source.Search(ctx, stay, 1, 0); err == nil {
		t.Fatal("want error on cancelled context")
	}
}
