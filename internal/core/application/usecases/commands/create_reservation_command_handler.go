package commands

import (
	"context"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/reservation"
)

// CreateReservationCommandHandler handles shelter reservations.
// Locks quantity on the source batch and records the hold with its expiry
// deadline within a single transaction.
//
// Example:
//
//	handler := NewCreateReservationCommandHandler(uowFactory)
//	cmd, _ := NewCreateReservationCommand(reservationID, batchID, shelterID, quantity, 0)
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, batch.ErrInsufficientQuantity):
//	    log.Println("Not enough left in the batch")
//	case err != nil:
//	    log.Printf("Reservation failed: %v", err)
//	}
type CreateReservationCommandHandler struct {
	uowFactory ReservationUoWFactory
}

// NewCreateReservationCommandHandler creates a handler for shelter reservations.
// Requires a ReservationUoWFactory for coordinating transactional updates
// across the reservation and batch repositories.
func NewCreateReservationCommandHandler(uowFactory ReservationUoWFactory) CreateReservationCommandHandler {
	return CreateReservationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reservation command.
// Reserves the quantity on the batch and records the hold atomically.
func (h CreateReservationCommandHandler) Handle(ctx context.Context, cmd CreateReservationCommand) error {
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

	batchRepo := uow.BatchRepository()

	sourceBatch, err := batchRepo.Get(ctx, cmd.BatchID())
	if err != nil {
		return err
	}

	if err = sourceBatch.Reserve(cmd.Quantity()); err != nil {
		return err
	}

	newReservation, err := reservation.NewReservation(
		cmd.ReservationID(),
		cmd.BatchID(),
		cmd.UserID(),
		cmd.Quantity(),
		cmd.TTL(),
	)
	if err != nil {
		return err
	}

	if err = uow.ReservationRepository().Add(ctx, newReservation); err != nil {
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
