package commands

import (
	"context"
)

// CancelReservationCommandHandler handles reservation cancellation.
// Releases the held quantity back to the source batch within the same
// transaction.
type CancelReservationCommandHandler struct {
	uowFactory ReservationUoWFactory
}

// NewCancelReservationCommandHandler creates a handler for reservation cancellation.
// Requires a ReservationUoWFactory for coordinating transactional updates
// across the reservation and batch repositories.
func NewCancelReservationCommandHandler(uowFactory ReservationUoWFactory) CancelReservationCommandHandler {
	return CancelReservationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
// Cancels the reservation and returns its quantity to the batch atomically.
func (h CancelReservationCommandHandler) Handle(ctx context.Context, cmd CancelReservationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reservationRepo := uow.ReservationRepository()
	batchRepo := uow.BatchRepository()

	cancelledReservation, err := reservationRepo.Get(ctx, cmd.ReservationID())
	if err != nil {
		return err
	}

	if err = cancelledReservation.Cancel(); err != nil {
		return err
	}

	sourceBatch, err := batchRepo.Get(ctx, cancelledReservation.Batch())
	if err != nil {
		return err
	}

	if err = sourceBatch.Release(cancelledReservation.Quantity()); err != nil {
		return err
	}

	if err = reservationRepo.Update(ctx, cancelledReservation); err != nil {
		return err
	}

	if err = batchRepo.Update(ctx, sourceBatch); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
