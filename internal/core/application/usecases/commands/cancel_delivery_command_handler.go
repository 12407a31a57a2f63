package commands

import (
	"context"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/delivery"
)

// CancelDeliveryCommandHandler handles delivery cancellation.
// A delivery in reserved status has quantity locked on its source batch;
// cancelling releases that quantity so other volunteers can commit to it.
// Deliveries that were never committed carry no lock and simply cancel.
type CancelDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCancelDeliveryCommandHandler creates a handler for delivery cancellation.
// Requires a DeliveryUoWFactory for coordinating transactional updates across
// the delivery and batch repositories.
func NewCancelDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CancelDeliveryCommandHandler {
	return CancelDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
// Cancels the delivery and, when it held a reservation, releases the locked
// quantity back to the source batch within the same transaction.
func (h CancelDeliveryCommandHandler) Handle(ctx context.Context, cmd CancelDeliveryCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()

	cancelledDelivery, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	wasReserved := cancelledDelivery.Status() == delivery.Reserved

	if err = cancelledDelivery.Cancel(); err != nil {
		return err
	}

	if wasReserved {
		batchRepo := uow.BatchRepository()

		sourceBatch, batchErr := batchRepo.Get(ctx, cancelledDelivery.BatchID())
		if batchErr != nil {
			return batchErr
		}

		if batchErr = sourceBatch.Release(cancelledDelivery.Quantity()); batchErr != nil {
			return batchErr
		}

		if batchErr = batchRepo.Update(ctx, sourceBatch); batchErr != nil {
			return batchErr
		}
	}

	if err = deliveryRepo.Update(ctx, cancelledDelivery); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
