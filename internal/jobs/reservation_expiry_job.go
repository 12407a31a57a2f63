package jobs

import (
	"context"
	"log/slog"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ReservationExpiryJob expires overdue reservation holds on a schedule.
// Runs every minute; each run releases the held quantity of every
// reservation whose deadline has passed.
type ReservationExpiryJob struct {
	handler commands.ExpireReservationsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewReservationExpiryJob creates a new job for expiring reservations.
func NewReservationExpiryJob(handler commands.ExpireReservationsCommandHandler, logger *slog.Logger) *ReservationExpiryJob {
	return &ReservationExpiryJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "reservation_expiry_job"),
	}
}

// Start begins the reservation expiry job to run every minute.
func (j *ReservationExpiryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewExpireReservationsCommand()

		expired, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Reservation expiry job failed", "error", err)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired overdue reservations", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reservation expiry job started (running every minute)")
	return nil
}

// Stop stops the reservation expiry job.
func (j *ReservationExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reservation expiry job stopped")
}
