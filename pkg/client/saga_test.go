package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRefresher struct {
	mu    sync.Mutex
	count int
}

func (r *countingRefresher) RequestRefresh() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.count++
}

func (r *countingRefresher) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// commitRecorder serves the commit endpoint and records every request in
// arrival order. Deliveries listed in failing get a 409 instead of a code.
type commitRecorder struct {
	mu       sync.Mutex
	calls    []string
	codes    map[string]string
	failing  map[string]bool
	server   *httptest.Server
	lastAuth string
}

func newCommitRecorder(codes map[string]string, failing map[string]bool) *commitRecorder {
	rec := &commitRecorder{codes: codes, failing: failing}
	rec.server = httptest.NewServer(http.HandlerFunc(rec.handle))
	return rec
}

func (rec *commitRecorder) handle(w http.ResponseWriter, r *http.Request) {
	deliveryID := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/api/deliveries/"), "/commit")

	rec.mu.Lock()
	rec.calls = append(rec.calls, deliveryID)
	rec.lastAuth = r.Header.Get("Authorization")
	rec.mu.Unlock()

	if rec.failing[deliveryID] {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]any{"code": 409, "message": "Volunteer already has an active delivery"})
		return
	}

	_ = json.NewEncoder(w).Encode(CommitResult{
		ID:           deliveryID,
		Status:       "reserved",
		PickupCode:   rec.codes[deliveryID],
		DeliveryCode: "ZZ99XX",
	})
}

func (rec *commitRecorder) Calls() []string {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return append([]string(nil), rec.calls...)
}

func (rec *commitRecorder) LastAuth() string {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.lastAuth
}

func TestSagaRunner_Run_AllSucceed(t *testing.T) {
	rec := newCommitRecorder(map[string]string{
		"d1": "AB12CD", "d2": "EF34GH", "d3": "IJ56KL",
	}, nil)
	defer rec.server.Close()

	runner := NewSagaRunner(New(rec.server.URL, "trusted-token"), WithCommitDelay(0))
	outcome := runner.Run(context.Background(), []Commitment{
		{DeliveryID: "d1", Quantity: 2},
		{DeliveryID: "d2", Quantity: 1},
		{DeliveryID: "d3", Quantity: 3},
	})

	assert.Equal(t, []string{"d1", "d2", "d3"}, rec.Calls())
	assert.False(t, outcome.HasError)
	assert.NoError(t, outcome.Err)
	require.Len(t, outcome.Results, 3)
	assert.Equal(t, "AB12CD", outcome.PickupCode)
	assert.Equal(t, "d2", outcome.Results[1].ID)
	assert.Equal(t, "Bearer trusted-token", rec.LastAuth())
}

func TestSagaRunner_Run_FailedItemIsSkippedNotFatal(t *testing.T) {
	rec := newCommitRecorder(map[string]string{
		"d2": "EF34GH", "d3": "IJ56KL",
	}, map[string]bool{"d1": true})
	defer rec.server.Close()

	runner := NewSagaRunner(New(rec.server.URL, "trusted-token"), WithCommitDelay(0))
	outcome := runner.Run(context.Background(), []Commitment{
		{DeliveryID: "d1", Quantity: 2},
		{DeliveryID: "d2", Quantity: 1},
		{DeliveryID: "d3", Quantity: 3},
	})

	// The failure does not stop the run; every item is posted exactly once.
	assert.Equal(t, []string{"d1", "d2", "d3"}, rec.Calls())
	assert.True(t, outcome.HasError)

	var apiErr *APIError
	require.ErrorAs(t, outcome.Err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)

	// The pickup code comes from the first commitment that succeeded.
	require.Len(t, outcome.Results, 2)
	assert.Equal(t, "EF34GH", outcome.PickupCode)
}

func TestSagaRunner_Run_AllFail(t *testing.T) {
	rec := newCommitRecorder(nil, map[string]bool{"d1": true, "d2": true})
	defer rec.server.Close()

	runner := NewSagaRunner(New(rec.server.URL, "trusted-token"), WithCommitDelay(0))
	outcome := runner.Run(context.Background(), []Commitment{
		{DeliveryID: "d1", Quantity: 1},
		{DeliveryID: "d2", Quantity: 1},
	})

	assert.Equal(t, []string{"d1", "d2"}, rec.Calls())
	assert.True(t, outcome.HasError)
	assert.Empty(t, outcome.Results)
	assert.Equal(t, NoPickupCode, outcome.PickupCode)
}

func TestSagaRunner_Run_EmptyInput(t *testing.T) {
	rec := newCommitRecorder(nil, nil)
	defer rec.server.Close()

	refresher := &countingRefresher{}
	runner := NewSagaRunner(New(rec.server.URL, "trusted-token"),
		WithCommitDelay(0), WithRefresher(refresher))
	outcome := runner.Run(context.Background(), nil)

	assert.Empty(t, rec.Calls())
	assert.False(t, outcome.HasError)
	assert.Equal(t, NoPickupCode, outcome.PickupCode)
	assert.Equal(t, 1, refresher.Count())
}

func TestSagaRunner_Run_RefreshesEvenWhenEverythingFails(t *testing.T) {
	rec := newCommitRecorder(nil, map[string]bool{"d1": true})
	defer rec.server.Close()

	refresher := &countingRefresher{}
	runner := NewSagaRunner(New(rec.server.URL, "trusted-token"),
		WithCommitDelay(0), WithRefresher(refresher))
	runner.Run(context.Background(), []Commitment{{DeliveryID: "d1", Quantity: 1}})

	assert.Equal(t, 1, refresher.Count())
}

func TestSagaRunner_Run_SpacesConsecutiveRequests(t *testing.T) {
	rec := newCommitRecorder(map[string]string{
		"d1": "AB12CD", "d2": "EF34GH", "d3": "IJ56KL",
	}, nil)
	defer rec.server.Close()

	var slept []time.Duration
	runner := NewSagaRunner(New(rec.server.URL, "trusted-token"),
		WithCommitDelay(100*time.Millisecond))
	runner.sleep = func(_ context.Context, d time.Duration) {
		slept = append(slept, d)
	}

	runner.Run(context.Background(), []Commitment{
		{DeliveryID: "d1", Quantity: 1},
		{DeliveryID: "d2", Quantity: 1},
		{DeliveryID: "d3", Quantity: 1},
	})

	// No pause before the first request, one fixed pause between each pair.
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 100 * time.Millisecond}, slept)
}

func TestSagaRunner_Run_UnreachableServer(t *testing.T) {
	rec := newCommitRecorder(nil, nil)
	rec.server.Close()

	runner := NewSagaRunner(New(rec.server.URL, "trusted-token"), WithCommitDelay(0))
	outcome := runner.Run(context.Background(), []Commitment{{DeliveryID: "d1", Quantity: 1}})

	assert.True(t, outcome.HasError)
	assert.Error(t, outcome.Err)
	assert.Equal(t, NoPickupCode, outcome.PickupCode)

	var apiErr *APIError
	assert.False(t, errors.As(outcome.Err, &apiErr))
}
