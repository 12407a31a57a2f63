package queries

import (
	"context"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCategoriesQueryHandler retrieves resource category rows from the database.
type GetCategoriesQueryHandler struct {
	db *gorm.DB
}

// NewGetCategoriesQueryHandler creates a handler for category list queries.
// Requires a GORM database connection for query execution.
func NewGetCategoriesQueryHandler(db *gorm.DB) GetCategoriesQueryHandler {
	return GetCategoriesQueryHandler{db: db}
}

// Handle executes the query, returning categories sorted by name.
func (h GetCategoriesQueryHandler) Handle(
	ctx context.Context,
	query GetCategoriesQuery,
) ([]GetCategoriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			name,
			active
		FROM categories
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

	categories := make([]GetCategoriesQueryResponse, 0)

	for rows.Next() {
		var resp GetCategoriesQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &resp.Name, &resp.Active); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		categories = append(categories, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}
