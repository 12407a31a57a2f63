package commands

import (
	"context"
)

// ConfirmPickupCommandHandler handles the provider-side handoff.
// Checks the presented code against the issued pickup code, moves the
// delivery to picked up and immediately to in transit (goods leaving the
// provider are on their way), and confirms the dispatch on the source batch
// so its totals reflect stock that has physically left the location.
type ConfirmPickupCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewConfirmPickupCommandHandler creates a handler for pickup confirmation.
// Requires a DeliveryUoWFactory for coordinating transactional updates across
// the delivery and batch repositories.
func NewConfirmPickupCommandHandler(uowFactory DeliveryUoWFactory) ConfirmPickupCommandHandler {
	return ConfirmPickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pickup confirmation command.
// Returns delivery.ErrPickupCodeMismatch when the presented code does not
// match the one issued at commitment.
func (h ConfirmPickupCommandHandler) Handle(ctx context.Context, cmd ConfirmPickupCommand) error {
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
	batchRepo := uow.BatchRepository()

	pickedDelivery, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = pickedDelivery.ConfirmPickup(cmd.Code()); err != nil {
		return err
	}
	if err = pickedDelivery.StartTransit(); err != nil {
		return err
	}

	sourceBatch, err := batchRepo.Get(ctx, pickedDelivery.BatchID())
	if err != nil {
		return err
	}

	if err = sourceBatch.ConfirmDispatch(pickedDelivery.Quantity()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, pickedDelivery); err != nil {
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
