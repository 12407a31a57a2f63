package client

import (
	"context"
	"log/slog"
	"time"
)

// NoPickupCode is the aggregate pickup code when no commitment in the run
// succeeded.
const NoPickupCode = "------"

// defaultCommitDelay is the fixed spacing between consecutive commit
// requests.
const defaultCommitDelay = 100 * time.Millisecond

// Commitment identifies one delivery the volunteer wants to commit to and
// the quantity to carry.
type Commitment struct {
	DeliveryID string
	Quantity   int
}

// Outcome aggregates the results of a saga run. PickupCode is taken from the
// first successful commitment; when every item failed it carries the
// NoPickupCode sentinel. Results holds one entry per successful commitment,
// in input order. Err is the last failure observed.
type Outcome struct {
	PickupCode string
	Results    []CommitResult
	HasError   bool
	Err        error
}

// Refresher is notified after a saga run so dependent state can be re-read.
// *Watcher satisfies it.
type Refresher interface {
	RequestRefresh()
}

// SagaRunner executes a batch of commitments as a sequence of single-item
// commit requests. Items run strictly in input order with fixed spacing
// between requests; a failed item is logged and skipped, never aborting the
// run and never compensating already-committed items. There are no retries
// and no idempotency keys.
type SagaRunner struct {
	client  *Client
	watcher Refresher
	delay   time.Duration
	sleep   func(context.Context, time.Duration)
	logger  *slog.Logger
}

// SagaOption customizes a SagaRunner.
type SagaOption func(*SagaRunner)

// WithCommitDelay overrides the spacing between consecutive commit requests.
func WithCommitDelay(delay time.Duration) SagaOption {
	return func(r *SagaRunner) { r.delay = delay }
}

// WithRefresher sets the watcher notified after each run.
func WithRefresher(watcher Refresher) SagaOption {
	return func(r *SagaRunner) { r.watcher = watcher }
}

// WithSagaLogger replaces the default logger.
func WithSagaLogger(logger *slog.Logger) SagaOption {
	return func(r *SagaRunner) { r.logger = logger }
}

// NewSagaRunner creates a runner over the given API client.
func NewSagaRunner(client *Client, opts ...SagaOption) *SagaRunner {
	r := &SagaRunner{
		client: client,
		delay:  defaultCommitDelay,
		sleep:  sleepContext,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run commits every item in order and reports the aggregate outcome.
// Exactly one POST is issued per input item regardless of failures. The
// state refresh at the end is unconditional: even a fully failed run leaves
// the server state uncertain enough to warrant a re-read.
func (r *SagaRunner) Run(ctx context.Context, commitments []Commitment) Outcome {
	outcome := Outcome{
		PickupCode: NoPickupCode,
		Results:    make([]CommitResult, 0, len(commitments)),
	}

	for i, commitment := range commitments {
		if i > 0 {
			r.sleep(ctx, r.delay)
		}

		result, err := r.client.CommitDelivery(ctx, commitment.DeliveryID, commitment.Quantity)
		if err != nil {
			r.logger.WarnContext(ctx, "Commitment failed, continuing",
				"delivery_id", commitment.DeliveryID, "error", err)
			outcome.HasError = true
			outcome.Err = err
			continue
		}

		if len(outcome.Results) == 0 {
			outcome.PickupCode = result.PickupCode
		}
		outcome.Results = append(outcome.Results, result)
	}

	if r.watcher != nil {
		r.watcher.RequestRefresh()
	}

	return outcome
}

func sleepContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
