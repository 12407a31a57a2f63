package commands

import (
	"context"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/delivery"
	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"
)

// CommitDeliveryResult carries the outcome of a successful commitment back
// to the transport layer: the issued codes and the new status.
type CommitDeliveryResult struct {
	DeliveryID   kernel.UUID
	PickupCode   kernel.PickupCode
	DeliveryCode kernel.PickupCode
	Status       delivery.Status
}

// CommitDeliveryCommandHandler orchestrates a volunteer's commitment to a
// published delivery. Moves the delivery to reserved status, issues the
// confirmation codes, and locks the committed quantity on the source batch
// within a single transaction.
//
// The persistence layer enforces that a volunteer holds at most one active
// delivery at a time; a second commitment surfaces as errs.ConflictError.
//
// Example:
//
//	handler := NewCommitDeliveryCommandHandler(uowFactory)
//	cmd, _ := NewCommitDeliveryCommand(deliveryID, volunteerID, quantity)
//
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, batch.ErrInsufficientQuantity):
//	    log.Println("Not enough left in the batch")
//	case errors.Is(err, errs.ErrConflict):
//	    log.Println("Volunteer already has an active delivery")
//	case err != nil:
//	    log.Printf("Commitment failed: %v", err)
//	default:
//	    log.Printf("Committed, pickup code %s", result.PickupCode)
//	}
type CommitDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCommitDeliveryCommandHandler creates a handler for delivery commitments.
// Requires a DeliveryUoWFactory for coordinating transactional updates across
// the delivery and batch repositories.
func NewCommitDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CommitDeliveryCommandHandler {
	return CommitDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the commitment command.
// Loads the delivery and its source batch, attaches the volunteer via
// Commit, reserves the committed quantity on the batch, and persists both
// aggregates atomically. Returns the issued codes on success.
func (h CommitDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd CommitDeliveryCommand,
) (CommitDeliveryResult, error) {
	if err := cmd.Validate(); err != nil {
		return CommitDeliveryResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CommitDeliveryResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	batchRepo := uow.BatchRepository()

	committedDelivery, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return CommitDeliveryResult{}, err
	}

	sourceBatch, err := batchRepo.Get(ctx, committedDelivery.BatchID())
	if err != nil {
		return CommitDeliveryResult{}, err
	}

	if err = committedDelivery.Commit(cmd.VolunteerID(), cmd.Quantity()); err != nil {
		return CommitDeliveryResult{}, err
	}

	if err = sourceBatch.Reserve(cmd.Quantity()); err != nil {
		return CommitDeliveryResult{}, err
	}

	if err = deliveryRepo.Update(ctx, committedDelivery); err != nil {
		return CommitDeliveryResult{}, err
	}

	if err = batchRepo.Update(ctx, sourceBatch); err != nil {
		return CommitDeliveryResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CommitDeliveryResult{}, err
	}

	return CommitDeliveryResult{
		DeliveryID:   committedDelivery.ID(),
		PickupCode:   *committedDelivery.PickupCode(),
		DeliveryCode: *committedDelivery.DeliveryCode(),
		Status:       committedDelivery.Status(),
	}, nil
}
