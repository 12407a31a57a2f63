package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// operationsServer serves the delivery and reservation list endpoints from
// in-memory slices that tests mutate between polls.
type operationsServer struct {
	mu           sync.Mutex
	deliveries   []Delivery
	reservations []Reservation
	failing      bool
	server       *httptest.Server
}

func newOperationsServer() *operationsServer {
	s := &operationsServer{}
	s.server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

func (s *operationsServer) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failing {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]any{"code": 500, "message": "Something went wrong"})
		return
	}

	if strings.HasPrefix(r.URL.Path, "/api/deliveries") {
		_ = json.NewEncoder(w).Encode(s.deliveries)
		return
	}
	_ = json.NewEncoder(w).Encode(s.reservations)
}

func (s *operationsServer) set(deliveries []Delivery, reservations []Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deliveries = deliveries
	s.reservations = reservations
}

func (s *operationsServer) setFailing(failing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing = failing
}

func startWatcher(t *testing.T, s *operationsServer) *Watcher {
	t.Helper()

	w := NewWatcher(New(s.server.URL, "trusted-token"), "1b9dc1b8-9bb7-42f5-b6dc-43cf12102a6e",
		WithPollInterval(time.Hour))
	w.Start(context.Background())
	t.Cleanup(w.Stop)

	require.Eventually(t, func() bool {
		return !w.Snapshot().LastUpdate.IsZero()
	}, 2*time.Second, 5*time.Millisecond, "first poll never completed")

	return w
}

func waitForUpdate(t *testing.T, w *Watcher, after time.Time) Snapshot {
	t.Helper()

	w.RequestRefresh()
	require.Eventually(t, func() bool {
		return w.Snapshot().LastUpdate.After(after)
	}, 2*time.Second, 5*time.Millisecond, "refresh never applied")

	return w.Snapshot()
}

func activeDelivery(id, status string, createdAt time.Time) Delivery {
	volunteerID := "1b9dc1b8-9bb7-42f5-b6dc-43cf12102a6e"
	return Delivery{
		ID:          id,
		BatchID:     "5b7f3c0a-64a8-4cc8-9f9e-0d2f6a3b1c4d",
		VolunteerID: &volunteerID,
		Quantity:    2,
		Status:      status,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}

func activeReservation(id, status string, createdAt time.Time) Reservation {
	return Reservation{
		ID:        id,
		BatchID:   "5b7f3c0a-64a8-4cc8-9f9e-0d2f6a3b1c4d",
		UserID:    "1b9dc1b8-9bb7-42f5-b6dc-43cf12102a6e",
		Quantity:  3,
		Status:    status,
		CreatedAt: createdAt,
		ExpiresAt: createdAt.Add(24 * time.Hour),
	}
}

func TestWatcher_IdleWhenNothingActive(t *testing.T) {
	s := newOperationsServer()
	defer s.server.Close()

	w := startWatcher(t, s)
	snapshot := w.Snapshot()

	assert.Equal(t, StateIdle, snapshot.CurrentState)
	assert.Nil(t, snapshot.ActiveOperation)
	assert.Empty(t, snapshot.OperationHistory)
	assert.NoError(t, snapshot.Err)
	assert.Equal(t, StateColors(), snapshot.StateColors)
}

func TestWatcher_NewestOperationWins(t *testing.T) {
	s := newOperationsServer()
	defer s.server.Close()

	older := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	s.set(
		[]Delivery{activeDelivery("d-old", "picked_up", older)},
		[]Reservation{activeReservation("r-new", "acquired", older.Add(time.Hour))},
	)

	w := startWatcher(t, s)
	snapshot := w.Snapshot()

	assert.Equal(t, StateDelivering, snapshot.CurrentState)
	require.NotNil(t, snapshot.ActiveOperation)
	assert.Equal(t, "r-new", snapshot.ActiveOperation.ID)
	assert.Equal(t, "reservation", snapshot.ActiveOperation.Kind)
	require.Len(t, snapshot.OperationHistory, 2)
	assert.Equal(t, "d-old", snapshot.OperationHistory[1].ID)
}

func TestWatcher_PicksUpServerChangesOnRefresh(t *testing.T) {
	s := newOperationsServer()
	defer s.server.Close()

	createdAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	s.set([]Delivery{activeDelivery("d1", "reserved", createdAt)}, nil)

	w := startWatcher(t, s)
	assert.Equal(t, StateReserved, w.Snapshot().CurrentState)

	s.set([]Delivery{activeDelivery("d1", "in_transit", createdAt)}, nil)
	snapshot := waitForUpdate(t, w, w.Snapshot().LastUpdate)

	assert.Equal(t, StateInTransit, snapshot.CurrentState)

	s.set(nil, nil)
	snapshot = waitForUpdate(t, w, snapshot.LastUpdate)

	assert.Equal(t, StateIdle, snapshot.CurrentState)
	assert.Nil(t, snapshot.ActiveOperation)
}

func TestWatcher_FetchErrorKeepsPreviousState(t *testing.T) {
	s := newOperationsServer()
	defer s.server.Close()

	createdAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	s.set([]Delivery{activeDelivery("d1", "picked_up", createdAt)}, nil)

	w := startWatcher(t, s)
	require.Equal(t, StatePickedUp, w.Snapshot().CurrentState)

	s.setFailing(true)
	snapshot := waitForUpdate(t, w, w.Snapshot().LastUpdate)

	assert.Error(t, snapshot.Err)
	assert.Equal(t, StatePickedUp, snapshot.CurrentState)
	require.NotNil(t, snapshot.ActiveOperation)
	assert.Equal(t, "d1", snapshot.ActiveOperation.ID)

	// The next successful poll clears the error.
	s.setFailing(false)
	snapshot = waitForUpdate(t, w, snapshot.LastUpdate)
	assert.NoError(t, snapshot.Err)
}

func TestWatcher_StopPreventsLaterUpdates(t *testing.T) {
	s := newOperationsServer()
	defer s.server.Close()

	w := startWatcher(t, s)
	before := w.Snapshot()

	w.Stop()

	createdAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	w.apply(mergeOperations([]Delivery{activeDelivery("d1", "in_transit", createdAt)}, nil))

	after := w.Snapshot()
	assert.Equal(t, before.CurrentState, after.CurrentState)
	assert.Equal(t, before.LastUpdate, after.LastUpdate)
}

func TestWatcher_SatisfiesRefresher(t *testing.T) {
	var refresher Refresher = NewWatcher(New("http://localhost", ""), "user")
	assert.NotNil(t, refresher)
}

func TestMapDeliveryStatus(t *testing.T) {
	cases := []struct {
		status string
		state  State
		active bool
	}{
		{"pending_confirmation", StateReserved, true},
		{"reserved", StateReserved, true},
		{"picked_up", StatePickedUp, true},
		{"in_transit", StateInTransit, true},
		{"delivered", StateIdle, false},
		{"cancelled", StateIdle, false},
	}

	for _, tc := range cases {
		state, active := mapDeliveryStatus(tc.status)
		assert.Equal(t, tc.state, state, tc.status)
		assert.Equal(t, tc.active, active, tc.status)
	}
}

func TestMapReservationStatus(t *testing.T) {
	cases := []struct {
		status string
		state  State
		active bool
	}{
		{"reserved", StateReserved, true},
		{"acquired", StateDelivering, true},
		{"completed", StateIdle, false},
		{"expired", StateIdle, false},
	}

	for _, tc := range cases {
		state, active := mapReservationStatus(tc.status)
		assert.Equal(t, tc.state, state, tc.status)
		assert.Equal(t, tc.active, active, tc.status)
	}
}

func TestMergeOperations_TieBreaksOnID(t *testing.T) {
	createdAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	operations := mergeOperations(
		[]Delivery{activeDelivery("aaa", "reserved", createdAt)},
		[]Reservation{activeReservation("bbb", "reserved", createdAt)},
	)

	require.Len(t, operations, 2)
	assert.Equal(t, "bbb", operations[0].ID)
	assert.Equal(t, "aaa", operations[1].ID)
}
