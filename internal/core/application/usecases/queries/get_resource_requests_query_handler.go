package queries

import (
	"context"
	"time"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetResourceRequestsQueryHandler retrieves shelter need rows from the database.
type GetResourceRequestsQueryHandler struct {
	db *gorm.DB
}

// NewGetResourceRequestsQueryHandler creates a handler for resource request queries.
// Requires a GORM database connection for query execution.
func NewGetResourceRequestsQueryHandler(db *gorm.DB) GetResourceRequestsQueryHandler {
	return GetResourceRequestsQueryHandler{db: db}
}

// Handle executes the query, newest requests first.
func (h GetResourceRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetResourceRequestsQuery,
) ([]GetResourceRequestsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			shelter_id,
			category_id,
			resource_name,
			quantity,
			status,
			created_at
		FROM resource_requests
	`
	var args []any
	if query.Status() != "" {
		sql += " WHERE status = ?"
		args = append(args, query.Status())
	}
	sql += " ORDER BY created_at DESC, id DESC"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]GetResourceRequestsQueryResponse, 0)

	for rows.Next() {
		var resp GetResourceRequestsQueryResponse
		var id, shelterID, categoryID uuid.UUID
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&shelterID,
			&categoryID,
			&resp.ResourceName,
			&resp.Quantity,
			&resp.Status,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.ShelterID, err = kernel.UUIDFromBytes(shelterID[:]); err != nil {
			return nil, err
		}
		if resp.CategoryID, err = kernel.UUIDFromBytes(categoryID[:]); err != nil {
			return nil, err
		}

		resp.CreatedAt = createdAt
		requests = append(requests, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
