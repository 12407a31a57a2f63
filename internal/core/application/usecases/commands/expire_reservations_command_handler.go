package commands

import (
	"context"
	"time"
)

// ExpireReservationsCommandHandler lapses overdue reservation holds.
// Each expired reservation returns its quantity to the source batch; the
// whole sweep runs in one transaction so a partial sweep never leaks
// quantity.
//
// Example:
//
//	handler := NewExpireReservationsCommandHandler(uowFactory)
//	cmd := NewExpireReservationsCommand()
//
//	expired, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("expiry sweep failed: %w", err)
//	}
//	log.Printf("Expired %d overdue reservations", expired)
type ExpireReservationsCommandHandler struct {
	uowFactory ReservationUoWFactory
	now        func() time.Time
}

// NewExpireReservationsCommandHandler creates a handler for the expiry sweep.
// Requires a ReservationUoWFactory for coordinating transactional updates
// across the reservation and batch repositories.
func NewExpireReservationsCommandHandler(uowFactory ReservationUoWFactory) ExpireReservationsCommandHandler {
	return ExpireReservationsCommandHandler{
		uowFactory: uowFactory,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Handle processes the expiry sweep.
// Expires every reservation past its deadline and releases the held
// quantity. Returns the number of reservations expired.
func (h ExpireReservationsCommandHandler) Handle(ctx context.Context, cmd ExpireReservationsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reservationRepo := uow.ReservationRepository()
	batchRepo := uow.BatchRepository()

	now := h.now()
	overdue, err := reservationRepo.GetExpired(ctx, now)
	if err != nil {
		return 0, err
	}

	for _, held := range overdue {
		if err = held.Expire(now); err != nil {
			return 0, err
		}

		sourceBatch, batchErr := batchRepo.Get(ctx, held.Batch())
		if batchErr != nil {
			return 0, batchErr
		}

		if batchErr = sourceBatch.Release(held.Quantity()); batchErr != nil {
			return 0, batchErr
		}

		if batchErr = batchRepo.Update(ctx, sourceBatch); batchErr != nil {
			return 0, batchErr
		}

		if err = reservationRepo.Update(ctx, held); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(overdue), nil
}
