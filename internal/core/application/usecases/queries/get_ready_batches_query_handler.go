package queries

import (
	"context"
	"time"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/batch"
	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetReadyBatchesQueryHandler retrieves claimable batch rows from the database.
type GetReadyBatchesQueryHandler struct {
	db *gorm.DB
}

// NewGetReadyBatchesQueryHandler creates a handler for ready batch queries.
// Requires a GORM database connection for query execution.
func NewGetReadyBatchesQueryHandler(db *gorm.DB) GetReadyBatchesQueryHandler {
	return GetReadyBatchesQueryHandler{db: db}
}

// Handle executes the query.
// Only batches in ready status with available quantity are returned, newest
// first.
func (h GetReadyBatchesQueryHandler) Handle(
	ctx context.Context,
	query GetReadyBatchesQuery,
) ([]GetReadyBatchesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			provider_id,
			location_id,
			category_id,
			resource_name,
			total_quantity,
			reserved_quantity,
			created_at
		FROM batches
		WHERE status = ?
		  AND total_quantity > reserved_quantity
		ORDER BY created_at DESC, id DESC
	`, batch.Ready.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	batches := make([]GetReadyBatchesQueryResponse, 0)

	for rows.Next() {
		var resp GetReadyBatchesQueryResponse
		var id, providerID, locationID, categoryID uuid.UUID
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&providerID,
			&locationID,
			&categoryID,
			&resp.ResourceName,
			&resp.Total,
			&resp.Reserved,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.ProviderID, err = kernel.UUIDFromBytes(providerID[:]); err != nil {
			return nil, err
		}
		if resp.LocationID, err = kernel.UUIDFromBytes(locationID[:]); err != nil {
			return nil, err
		}
		if resp.CategoryID, err = kernel.UUIDFromBytes(categoryID[:]); err != nil {
			return nil, err
		}

		resp.Available = resp.Total - resp.Reserved
		resp.CreatedAt = createdAt
		batches = append(batches, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return batches, nil
}
