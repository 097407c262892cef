// Package client implements the availability query side of the booking
// flow: a debounced, staleness-guarded orchestrator that every call site
// (search bar, booking form, stock monitor) drives through one entry point,
// plus the HTTP source it queries. Its verdict only gates the submit
// action; the backend re-checks capacity atomically at commit time.
package client

import "fmt"

// State is the orchestrator's three-way (plus idle) availability verdict.
type State int

const (
	StateIdle State = iota
	StateChecking
	StateAvailable
	StateUnavailable
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateChecking:
		return "checking"
	case StateAvailable:
		return "available"
	case StateUnavailable:
		return "unavailable"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Reason explains an unavailable verdict.
type Reason int

const (
	ReasonNone Reason = iota
	// ReasonInvalidDateRange: check-out on or before check-in. Detected
	// locally, no query is issued.
	ReasonInvalidDateRange
	// ReasonNoInventory: the room type was absent from the authoritative
	// response or has zero units. Fully booked.
	ReasonNoInventory
	// ReasonInsufficientInventory: some units remain, fewer than requested.
	ReasonInsufficientInventory
	// ReasonError: the authoritative query failed or timed out. Retryable;
	// submission stays blocked rather than failing open.
	ReasonError
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonInvalidDateRange:
		return "invalid_date_range"
	case ReasonNoInventory:
		return "no_inventory"
	case ReasonInsufficientInventory:
		return "insufficient_inventory"
	case ReasonError:
		return "error"
	}
	return fmt.Sprintf("reason(%d)", int(r))
}

// Result is what a call site renders. Remaining is meaningful for
// StateAvailable (units still free) and ReasonInsufficientInventory (how
// many the guest could still take).
type Result struct {
	State     State
	Reason    Reason
	Remaining int
	Err       error
}

// CanSubmit is the single gating point for the booking submit action.
func (r Result) CanSubmit() bool {
	return r.State == StateAvailable
}
