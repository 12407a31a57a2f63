package jobs

import (
	"context"
	"log/slog"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleDeliverySweepJob cancels deliveries stuck in a pre-pickup status past
// the configured cutoff. Runs hourly; picked-up and in-transit deliveries are
// left alone since the goods already moved.
type StaleDeliverySweepJob struct {
	handler     commands.SweepStaleDeliveriesCommandHandler
	cutoffHours int
	cron        *cron.Cron
	logger      *slog.Logger
}

// NewStaleDeliverySweepJob creates a new job for sweeping stale deliveries.
func NewStaleDeliverySweepJob(
	handler commands.SweepStaleDeliveriesCommandHandler,
	cutoffHours int,
	logger *slog.Logger,
) *StaleDeliverySweepJob {
	return &StaleDeliverySweepJob{
		handler:     handler,
		cutoffHours: cutoffHours,
		cron:        cron.New(),
		logger:      logger.With("component", "stale_delivery_sweep_job"),
	}
}

// Start begins the stale delivery sweep job to run at the top of every hour.
func (j *StaleDeliverySweepJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewSweepStaleDeliveriesCommand(j.cutoffHours)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale delivery sweep misconfigured", "error", err)
			return
		}

		swept, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale delivery sweep failed", "error", err)
			return
		}

		if swept > 0 {
			j.logger.InfoContext(ctx, "Cancelled stale deliveries", "count", swept)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale delivery sweep job started (running hourly)")
	return nil
}

// Stop stops the stale delivery sweep job.
func (j *StaleDeliverySweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale delivery sweep job stopped")
}
