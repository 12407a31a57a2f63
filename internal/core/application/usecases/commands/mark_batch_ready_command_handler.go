package commands

import (
	"context"
)

// MarkBatchReadyCommandHandler handles batch publication.
// Moves a draft batch to ready status so quantity can be claimed from it.
type MarkBatchReadyCommandHandler struct {
	uowFactory BatchUoWFactory
}

// NewMarkBatchReadyCommandHandler creates a handler for batch publication.
// Requires a BatchUoWFactory for transactional persistence.
func NewMarkBatchReadyCommandHandler(uowFactory BatchUoWFactory) MarkBatchReadyCommandHandler {
	return MarkBatchReadyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the publication command.
// Fails with a validation error when the batch is not in draft status.
func (h MarkBatchReadyCommandHandler) Handle(ctx context.Context, cmd MarkBatchReadyCommand) error {
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

	publishedBatch, err := batchRepo.Get(ctx, cmd.BatchID())
	if err != nil {
		return err
	}

	if err = publishedBatch.MarkReady(); err != nil {
		return err
	}

	if err = batchRepo.Update(ctx, publishedBatch); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
