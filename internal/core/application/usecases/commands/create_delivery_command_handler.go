package commands

import (
	"context"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/batch"
	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/delivery"
)

// CreateDeliveryCommandHandler handles the business logic for publishing
// delivery needs. Verifies the source batch is ready before adding the
// delivery to the pool in pending confirmation status.
//
// Example:
//
//	handler := NewCreateDeliveryCommandHandler(uowFactory)
//	cmd, _ := NewCreateDeliveryCommand(kernel.NewUUID(), batchID, quantity)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("delivery creation failed: %w", err)
//	}
//	// Delivery is now published and ready for volunteer commitment
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCreateDeliveryCommandHandler creates a handler for delivery publication.
// Requires a DeliveryUoWFactory for transactional persistence.
func NewCreateDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery creation command.
// Loads the batch to verify it exists and is ready for reservations, then
// creates the delivery in pending confirmation status.
// Returns batch.ErrBatchNotReady when the batch has not been published yet.
func (h CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
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

	sourceBatch, err := uow.BatchRepository().Get(ctx, cmd.BatchID())
	if err != nil {
		return err
	}
	if sourceBatch.Status() != batch.Ready {
		return batch.ErrBatchNotReady
	}

	newDelivery, err := delivery.NewDelivery(cmd.DeliveryID(), cmd.BatchID(), cmd.Quantity())
	if err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, newDelivery); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
