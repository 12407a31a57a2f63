package commands

import (
	"errors"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"
	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/guard"
)

var ErrMarkBatchReadyCommandIsNotConstructed = errors.New(
	"MarkBatchReadyCommand must be created via NewMarkBatchReadyCommand constructor",
)

// MarkBatchReadyCommand represents a provider's request to publish a draft
// batch, making it visible to volunteers and shelters.
type MarkBatchReadyCommand struct { //nolint:recvcheck //using for validation
	batchID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkBatchReadyCommand creates a command to publish a draft batch.
// Returns an error if the batch identifier is invalid.
func NewMarkBatchReadyCommand(batchID kernel.UUID) (MarkBatchReadyCommand, error) {
	cmd := MarkBatchReadyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setBatchID(batchID); err != nil {
		return MarkBatchReadyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkBatchReadyCommandIsNotConstructed if validation fails.
func (c MarkBatchReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkBatchReadyCommandIsNotConstructed)
}

// BatchID returns the identifier of the batch to publish.
func (c MarkBatchReadyCommand) BatchID() kernel.UUID {
	return c.batchID
}

func (c *MarkBatchReadyCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}
