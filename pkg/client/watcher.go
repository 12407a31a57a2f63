package client

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// State is the user-facing operation state the watcher derives from the
// user's active deliveries and reservations.
type State string

const (
	// StateIdle means the user has no active operation.
	StateIdle State = "idle"
	// StateReserved covers published and committed deliveries awaiting
	// pickup, and reservation holds.
	StateReserved State = "reserved"
	// StatePickedUp means the goods left the provider.
	StatePickedUp State = "picked_up"
	// StateInTransit means the volunteer is en route.
	StateInTransit State = "in_transit"
	// StateDelivering means an acquired reservation is being distributed.
	StateDelivering State = "delivering"
)

// StateColors maps each state to the display color clients render it with.
func StateColors() map[State]string {
	return map[State]string{
		StateIdle:       "#9e9e9e",
		StateReserved:   "#ff9800",
		StatePickedUp:   "#2196f3",
		StateInTransit:  "#3f51b5",
		StateDelivering: "#4caf50",
	}
}

// Operation is one active delivery or reservation in the merged feed.
type Operation struct {
	ID        string
	Kind      string // "delivery" or "reservation"
	Status    string
	State     State
	CreatedAt time.Time
}

// Snapshot is the watcher's current view of the user's operations.
// Err carries the last poll failure; when set, the remaining fields still
// reflect the last successful poll.
type Snapshot struct {
	CurrentState     State
	ActiveOperation  *Operation
	OperationHistory []Operation
	StateColors      map[State]string
	LastUpdate       time.Time
	Err              error
}

// defaultPollInterval is how often the watcher re-reads server state.
const defaultPollInterval = 30 * time.Second

// Watcher polls the API for the user's active deliveries and reservations
// and folds them into a single operation state. The newest operation wins.
// Only one poll runs at a time: refresh requests arriving while a poll is in
// flight coalesce into at most one follow-up.
type Watcher struct {
	client   *Client
	userID   string
	interval time.Duration
	logger   *slog.Logger

	mu       sync.Mutex
	inFlight bool
	stopped  bool
	snapshot Snapshot

	refresh chan struct{}
	cancel  context.CancelFunc
	done    chan struct{}
}

// WatcherOption customizes a Watcher.
type WatcherOption func(*Watcher)

// WithPollInterval overrides the default poll interval.
func WithPollInterval(interval time.Duration) WatcherOption {
	return func(w *Watcher) { w.interval = interval }
}

// WithWatcherLogger replaces the default logger.
func WithWatcherLogger(logger *slog.Logger) WatcherOption {
	return func(w *Watcher) { w.logger = logger }
}

// NewWatcher creates a watcher for the given user. Call Start to begin
// polling.
func NewWatcher(client *Client, userID string, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		client:   client,
		userID:   userID,
		interval: defaultPollInterval,
		logger:   slog.Default(),
		refresh:  make(chan struct{}, 1),
		done:     make(chan struct{}),
		snapshot: Snapshot{
			CurrentState: StateIdle,
			StateColors:  StateColors(),
		},
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Start begins the poll loop. An immediate poll runs first, then one per
// interval plus any explicitly requested refreshes. Start returns right
// away; polling happens on a background goroutine until Stop is called or
// the context is cancelled.
func (w *Watcher) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	go func() {
		defer close(w.done)

		w.poll(ctx)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				w.poll(ctx)
			case <-w.refresh:
				w.poll(ctx)
			}
		}
	}()
}

// RequestRefresh asks for an immediate poll. Safe to call from any
// goroutine; requests made while a poll is running coalesce.
func (w *Watcher) RequestRefresh() {
	select {
	case w.refresh <- struct{}{}:
	default:
	}
}

// Stop cancels any in-flight poll and prevents further state updates.
// Blocks until the poll loop has exited.
func (w *Watcher) Stop() {
	w.mu.Lock()
	w.stopped = true
	w.mu.Unlock()

	if w.cancel != nil {
		w.cancel()
		<-w.done
	}
}

// Snapshot returns a copy of the current state view.
func (w *Watcher) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshot
}

// activeDeliveryStatuses are the delivery statuses the watcher treats as an
// operation in progress.
func activeDeliveryStatuses() []string {
	return []string{"pending_confirmation", "reserved", "picked_up", "in_transit"}
}

// mapDeliveryStatus folds a delivery status into a watcher state.
func mapDeliveryStatus(status string) (State, bool) {
	switch status {
	case "pending_confirmation", "reserved":
		return StateReserved, true
	case "picked_up":
		return StatePickedUp, true
	case "in_transit":
		return StateInTransit, true
	default:
		return StateIdle, false
	}
}

// mapReservationStatus folds a reservation status into a watcher state.
func mapReservationStatus(status string) (State, bool) {
	switch status {
	case "reserved":
		return StateReserved, true
	case "acquired":
		return StateDelivering, true
	default:
		return StateIdle, false
	}
}

func (w *Watcher) poll(ctx context.Context) {
	w.mu.Lock()
	if w.inFlight || w.stopped {
		w.mu.Unlock()
		return
	}
	w.inFlight = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.inFlight = false
		w.mu.Unlock()
	}()

	var (
		deliveries   []Delivery
		reservations []Reservation
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		deliveries, err = w.client.ListDeliveries(gctx, w.userID, activeDeliveryStatuses())
		return err
	})
	g.Go(func() error {
		var err error
		reservations, err = w.client.ListReservations(gctx, w.userID, true)
		return err
	})

	if err := g.Wait(); err != nil {
		w.logger.WarnContext(ctx, "State poll failed", "error", err)
		w.applyError(err)
		return
	}

	w.apply(mergeOperations(deliveries, reservations))
}

// applyError records the failure but leaves the previous state intact; the
// next tick retries from scratch.
func (w *Watcher) applyError(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}

	w.snapshot.Err = err
	w.snapshot.LastUpdate = time.Now()
}

func (w *Watcher) apply(operations []Operation) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}

	w.snapshot.Err = nil
	w.snapshot.OperationHistory = operations
	w.snapshot.LastUpdate = time.Now()

	if len(operations) == 0 {
		w.snapshot.CurrentState = StateIdle
		w.snapshot.ActiveOperation = nil
		return
	}

	newest := operations[0]
	w.snapshot.CurrentState = newest.State
	w.snapshot.ActiveOperation = &newest
}

// mergeOperations folds both feeds into one list, newest first with a
// deterministic ID tie-break.
func mergeOperations(deliveries []Delivery, reservations []Reservation) []Operation {
	operations := make([]Operation, 0, len(deliveries)+len(reservations))

	for _, d := range deliveries {
		state, ok := mapDeliveryStatus(d.Status)
		if !ok {
			continue
		}
		operations = append(operations, Operation{
			ID:        d.ID,
			Kind:      "delivery",
			Status:    d.Status,
			State:     state,
			CreatedAt: d.CreatedAt,
		})
	}

	for _, r := range reservations {
		state, ok := mapReservationStatus(r.Status)
		if !ok {
			continue
		}
		operations = append(operations, Operation{
			ID:        r.ID,
			Kind:      "reservation",
			Status:    r.Status,
			State:     state,
			CreatedAt: r.CreatedAt,
		})
	}

	sort.Slice(operations, func(i, j int) bool {
		if !operations[i].CreatedAt.Equal(operations[j].CreatedAt) {
			return operations[i].CreatedAt.After(operations[j].CreatedAt)
		}
		return operations[i].ID > operations[j].ID
	})

	return operations
}
