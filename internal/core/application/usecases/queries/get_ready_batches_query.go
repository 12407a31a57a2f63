package queries

import (
	"errors"
	"time"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"
	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/guard"
)

var ErrGetReadyBatchesQueryIsNotConstructed = errors.New(
	"GetReadyBatchesQuery must be created via NewGetReadyBatchesQuery constructor",
)

// GetReadyBatchesQuery retrieves published batches that still have
// unreserved quantity, the pool volunteers and shelters claim from.
//
// Example:
//
//	query := NewGetReadyBatchesQuery()
//	handler := NewGetReadyBatchesQueryHandler(db)
//
//	batches, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list ready batches: %w", err)
//	}
//	for _, b := range batches {
//	    fmt.Printf("%s: %d of %d available\n", b.ResourceName, b.Available, b.Total)
//	}
type GetReadyBatchesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetReadyBatchesQuery creates a query to list claimable batches.
// This is a parameterless query.
func NewGetReadyBatchesQuery() GetReadyBatchesQuery {
	return GetReadyBatchesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetReadyBatchesQueryIsNotConstructed if validation fails.
func (q GetReadyBatchesQuery) Validate() error {
	return q.guard.Validate(ErrGetReadyBatchesQueryIsNotConstructed)
}

// GetReadyBatchesQueryResponse represents one claimable batch row.
type GetReadyBatchesQueryResponse struct {
	ID           kernel.UUID
	ProviderID   kernel.UUID
	LocationID   kernel.UUID
	CategoryID   kernel.UUID
	ResourceName string
	Total        int
	Reserved     int
	Available    int
	CreatedAt    time.Time
}
