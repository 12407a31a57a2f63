// Package jobs provides scheduled background tasks for the donation
// logistics system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic housekeeping the service depends on.
//
// # Available Jobs
//
// 1. ReservationExpiryJob - Runs every minute to expire overdue reservation
// holds and release their quantity back to the batch.
// 2. StaleDeliverySweepJob - Runs hourly to cancel deliveries that sat in a
// pre-pickup status past the configured cutoff.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(expireHandler, sweepHandler, sweepCutoffHours, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job runs log failures and carry on; the next tick retries from current
// database state. Failed job starts stop any already running jobs.
package jobs
