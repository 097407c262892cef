package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"hotel-booking-backend/services"
)

// HTTPSource queries the backend check-availability endpoint and decodes
// its {rooms: [...]} payload. It satisfies services.AvailabilitySearcher so
// the orchestrator treats remote and in-process sources the same.
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSource points at the API root, e.g. "http://127.0.0.1:8080/api".
// The client timeout backstops callers that pass an unbounded context.
func NewHTTPSource(baseURL string) *HTTPSource {
	return &HTTPSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: DefaultQueryTimeout},
	}
}

func (h *HTTPSource) Search(ctx context.Context, stay services.StayInterval, adults, children int) ([]services.RoomAvailability, error) {
	query := url.Values{}
	query.Set("check_in", stay.Start.Format(services.DateLayout))
	query.Set("check_out", stay.End.Format(services.DateLayout))
	query.Set("adults", strconv.Itoa(adults))
	query.Set("children", strconv.Itoa(children))

	endpoint := h.baseURL + "/check-availability?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build availability request: %w", err)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("availability request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("availability request: unexpected status %d", resp.StatusCode)
	}

	var payload struct {
		Rooms []services.RoomAvailability `json:"rooms"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode availability response: %w", err)
	}
	return payload.Rooms, nil
}

var _ services.AvailabilitySearcher = (*HTTPSource)(nil)
