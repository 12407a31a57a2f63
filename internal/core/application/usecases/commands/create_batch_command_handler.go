package commands

import (
	"context"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/batch"
)

// CreateBatchCommandHandler handles the business logic for batch creation.
// Registers new donation batches in draft status.
type CreateBatchCommandHandler struct {
	uowFactory BatchUoWFactory
}

// NewCreateBatchCommandHandler creates a handler for batch creation.
// Requires a BatchUoWFactory for transactional persistence.
func NewCreateBatchCommandHandler(uowFactory BatchUoWFactory) CreateBatchCommandHandler {
	return CreateBatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the batch creation command.
// Creates the batch in draft status; it becomes claimable once marked ready.
func (h CreateBatchCommandHandler) Handle(ctx context.Context, cmd CreateBatchCommand) error {
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

	newBatch, err := batch.NewBatch(
		cmd.BatchID(),
		cmd.ProviderID(),
		cmd.LocationID(),
		cmd.CategoryID(),
		cmd.ResourceName(),
		cmd.Total(),
	)
	if err != nil {
		return err
	}

	if err = uow.BatchRepository().Add(ctx, newBatch); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
