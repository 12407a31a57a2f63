package commands

import (
	"context"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/delivery"
)

// SweepStaleDeliveriesCommandHandler cancels deliveries abandoned mid-flow.
// Only deliveries that have not reached pickup can be cancelled; stale
// commitments past pickup are left alone, since the goods already moved and
// need human follow-up rather than automatic compensation.
type SweepStaleDeliveriesCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewSweepStaleDeliveriesCommandHandler creates a handler for the stale sweep.
// Requires a DeliveryUoWFactory for coordinating transactional updates across
// the delivery and batch repositories.
func NewSweepStaleDeliveriesCommandHandler(uowFactory DeliveryUoWFactory) SweepStaleDeliveriesCommandHandler {
	return SweepStaleDeliveriesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stale delivery sweep.
// Cancels every delivery stuck in pending confirmation or reserved status
// beyond the cutoff, releasing locked quantity back to the source batch.
// Returns the number of deliveries cancelled.
func (h SweepStaleDeliveriesCommandHandler) Handle(
	ctx context.Context,
	cmd SweepStaleDeliveriesCommand,
) (int, error) {
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

	deliveryRepo := uow.DeliveryRepository()
	batchRepo := uow.BatchRepository()

	stale, err := deliveryRepo.GetActiveOlderThan(ctx, cmd.CutoffHours())
	if err != nil {
		return 0, err
	}

	cancelled := 0
	for _, staleDelivery := range stale {
		status := staleDelivery.Status()
		if status != delivery.PendingConfirmation && status != delivery.Reserved {
			continue
		}

		if err = staleDelivery.Cancel(); err != nil {
			return 0, err
		}

		if status == delivery.Reserved {
			sourceBatch, batchErr := batchRepo.Get(ctx, staleDelivery.BatchID())
			if batchErr != nil {
				return 0, batchErr
			}

			if batchErr = sourceBatch.Release(staleDelivery.Quantity()); batchErr != nil {
				return 0, batchErr
			}

			if batchErr = batchRepo.Update(ctx, sourceBatch); batchErr != nil {
				return 0, batchErr
			}
		}

		if err = deliveryRepo.Update(ctx, staleDelivery); err != nil {
			return 0, err
		}

		cancelled++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return cancelled, nil
}
