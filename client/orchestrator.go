package client

import (
	"context"
	"sync"
	"time"

	"hotel-booking-backend/services"
)

// DefaultQuietPeriod bounds query volume under fast typing and date
// dragging: a pending query only fires once input has been still this long.
const DefaultQuietPeriod = 500 * time.Millisecond

// DefaultQueryTimeout caps one authoritative round-trip; expiry surfaces as
// a retryable ReasonError.
const DefaultQueryTimeout = 5 * time.Second

// Selection is the current user input: which room type, which stay, how
// many units, how many guests. Recreated on every edit.
type Selection struct {
	RoomTypeID uint
	CheckIn    string
	CheckOut   string
	Quantity   int
	Adults     int
	Children   int
}

// Orchestrator debounces rapidly changing selections, issues at most one
// authoritative availability query per quiet period, and guarantees that
// only the most recently issued query's response updates the displayed
// result. Every issued query carries a generation number; a response whose
// generation has been superseded is discarded, never treated as success.
//
// Safe for concurrent use. The listener is invoked with the state mutex
// held so results are always delivered in order; it must not call back into
// the orchestrator.
type Orchestrator struct {
	source  services.AvailabilitySearcher
	quiet   time.Duration
	timeout time.Duration
	listen  func(Result)

	mu    sync.Mutex
	gen   uint64
	timer *time.Timer
	last  Result
}

// Option tweaks an Orchestrator; tests shorten the quiet period.
type Option func(*Orchestrator)

func WithQuietPeriod(d time.Duration) Option {
	return func(o *Orchestrator) { o.quiet = d }
}

func WithQueryTimeout(d time.Duration) Option {
	return func(o *Orchestrator) { o.timeout = d }
}

// NewOrchestrator wires the single evaluate entry point. listen receives
// every state change (Checking included) and may be nil for poll-only use.
func NewOrchestrator(source services.AvailabilitySearcher, listen func(Result), opts ...Option) *Orchestrator {
	o := &Orchestrator{
		source:  source,
		quiet:   DefaultQuietPeriod,
		timeout: DefaultQueryTimeout,
		listen:  listen,
		last:    Result{State: StateIdle},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Update registers a new selection. An invalid date range is rejected
// immediately with no query; otherwise the pending query (if any) is
// cancelled and the quiet-period timer restarts. Changing input while a
// query is in flight does not abort the network call, but its response is
// suppressed by the generation check.
func (o *Orchestrator) Update(sel Selection) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.gen++
	gen := o.gen
	if o.timer != nil {
		o.timer.Stop()
		o.timer = nil
	}

	if _, err := services.ParseStayInterval(sel.CheckIn, sel.CheckOut); err != nil {
		o.apply(gen, Result{State: StateUnavailable, Reason: ReasonInvalidDateRange, Err: err})
		return
	}

	o.timer = time.AfterFunc(o.quiet, func() {
		o.fire(gen, sel)
	})
}

// fire runs in the timer goroutine once the quiet period elapses
// uninterrupted.
func (o *Orchestrator) fire(gen uint64, sel Selection) {
	o.mu.Lock()
	if gen != o.gen {
		// Superseded while the timer was being delivered.
		o.mu.Unlock()
		return
	}
	o.apply(gen, Result{State: StateChecking})
	o.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), o.timeout)
	defer cancel()
	result := o.evaluate(ctx, sel)

	o.mu.Lock()
	o.apply(gen, result)
	o.mu.Unlock()
}

// EvaluateNow skips the debounce and runs one authoritative query
// synchronously; the search bar's explicit Check button uses it. The result
// is returned and, if still current, also published to the listener.
// Deterministic for an unchanged booking set: same selection in, same
// result out.
func (o *Orchestrator) EvaluateNow(ctx context.Context, sel Selection) Result {
	o.mu.Lock()
	o.gen++
	gen := o.gen
	if o.timer != nil {
		o.timer.Stop()
		o.timer = nil
	}
	o.mu.Unlock()

	if _, err := services.ParseStayInterval(sel.CheckIn, sel.CheckOut); err != nil {
		result := Result{State: StateUnavailable, Reason: ReasonInvalidDateRange, Err: err}
		o.mu.Lock()
		o.apply(gen, result)
		o.mu.Unlock()
		return result
	}

	result := o.evaluate(ctx, sel)
	o.mu.Lock()
	o.apply(gen, result)
	o.mu.Unlock()
	return result
}

// evaluate issues the authoritative query and reconciles it with the
// requested quantity. Interval validity was checked by the caller.
func (o *Orchestrator) evaluate(ctx context.Context, sel Selection) Result {
	stay, err := services.ParseStayInterval(sel.CheckIn, sel.CheckOut)
	if err != nil {
		return Result{State: StateUnavailable, Reason: ReasonInvalidDateRange, Err: err}
	}

	rooms, err := o.source.Search(ctx, stay, sel.Adults, sel.Children)
	if err != nil {
		return Result{State: StateUnavailable, Reason: ReasonError, Err: err}
	}

	for _, room := range rooms {
		if room.ID != sel.RoomTypeID {
			continue
		}
		res := services.ResolveCapacity(room.AvailableQty, 0, sel.Quantity)
		if res.Satisfiable {
			return Result{State: StateAvailable, Remaining: res.Available}
		}
		return Result{
			State:     StateUnavailable,
			Reason:    ReasonInsufficientInventory,
			Remaining: res.Available,
		}
	}
	// Absent from the authoritative response means fully booked.
	return Result{State: StateUnavailable, Reason: ReasonNoInventory}
}

// apply publishes a result unless its generation has been superseded.
// Discarded responses change nothing: not the displayed state, not the
// submit gate.
func (o *Orchestrator) apply(gen uint64, result Result) {
	if gen != o.gen {
		return
	}
	o.last = result
	if o.listen != nil {
		o.listen(result)
	}
}

// Result returns the currently displayed result.
func (o *Orchestrator) Result() Result {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.last
}

// Stop cancels any pending debounced query and resets to idle. Responses of
// queries already in flight are discarded.
func (o *Orchestrator) Stop() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.gen++
	if o.timer != nil {
		o.timer.Stop()
		o.timer = nil
	}
	o.last = Result{State: StateIdle}
}
