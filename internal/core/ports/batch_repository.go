package ports

import (
	"context"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/batch"
	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"
)

// BatchRepository defines the persistence contract for donation batch aggregates.
// Provides methods for storing, retrieving, and querying batches with their
// quantity accounting.
type BatchRepository interface {
	// Add persists a new batch aggregate to storage.
	// The batch must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *batch.Batch) error

	// Update persists changes to an existing batch aggregate.
	// The batch must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *batch.Batch) error

	// Get retrieves a batch aggregate by its unique identifier.
	// Returns the complete batch with its current quantity accounting.
	Get(ctx context.Context, id kernel.UUID) (*batch.Batch, error)

	// GetAllReady retrieves all batches in Ready status that still have
	// unreserved quantity available for new commitments.
	GetAllReady(ctx context.Context) ([]*batch.Batch, error)
}
