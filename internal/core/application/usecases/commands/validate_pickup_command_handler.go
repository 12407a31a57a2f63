package commands

import (
	"context"
)

// ValidatePickupCommandHandler handles the shelter-side handoff.
// Checks the presented code against the issued delivery code and moves the
// delivery from in transit to delivered.
type ValidatePickupCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewValidatePickupCommandHandler creates a handler for dropoff validation.
// Requires a DeliveryUoWFactory for transactional persistence.
func NewValidatePickupCommandHandler(uowFactory DeliveryUoWFactory) ValidatePickupCommandHandler {
	return ValidatePickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dropoff validation command.
// Returns delivery.ErrPickupCodeMismatch when the presented code does not
// match the one issued at commitment.
func (h ValidatePickupCommandHandler) Handle(ctx context.Context, cmd ValidatePickupCommand) error {
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

	completedDelivery, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = completedDelivery.CompleteDelivery(cmd.Code()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, completedDelivery); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
