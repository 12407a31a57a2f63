package queries

import (
	"context"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLocationsQueryHandler retrieves pickup location rows from the database.
type GetLocationsQueryHandler struct {
	db *gorm.DB
}

// NewGetLocationsQueryHandler creates a handler for location list queries.
// Requires a GORM database connection for query execution.
func NewGetLocationsQueryHandler(db *gorm.DB) GetLocationsQueryHandler {
	return GetLocationsQueryHandler{db: db}
}

// Handle executes the query, returning locations sorted by name.
func (h GetLocationsQueryHandler) Handle(
	ctx context.Context,
	query GetLocationsQuery,
) ([]GetLocationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			name,
			street,
			active
		FROM locations
	`
	var args []any
	if query.ActiveOnly() {
		sql += " WHERE active = ?"
		args = append(args, true)
	}
	sql += " ORDER BY name"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := make([]GetLocationsQueryResponse, 0)

	for rows.Next() {
		var resp GetLocationsQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &resp.Name, &resp.Street, &resp.Active); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		locations = append(locations, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return locations, nil
}
