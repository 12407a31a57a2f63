package jobs

import (
	"fmt"
	"log/slog"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	reservationExpiryJob  *ReservationExpiryJob
	staleDeliverySweepJob *StaleDeliverySweepJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	expireReservationsHandler commands.ExpireReservationsCommandHandler,
	sweepStaleDeliveriesHandler commands.SweepStaleDeliveriesCommandHandler,
	sweepCutoffHours int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		reservationExpiryJob:  NewReservationExpiryJob(expireReservationsHandler, logger),
		staleDeliverySweepJob: NewStaleDeliverySweepJob(sweepStaleDeliveriesHandler, sweepCutoffHours, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.reservationExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start reservation expiry job: %w", err)
	}

	if err := jm.staleDeliverySweepJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.reservationExpiryJob.Stop()
		return fmt.Errorf("failed to start stale delivery sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleDeliverySweepJob.Stop()
	jm.reservationExpiryJob.Stop()
}
