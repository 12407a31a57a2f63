package queries

import (
	"context"
	"strings"
	"time"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUsersQueryHandler retrieves user account rows from the database.
type GetUsersQueryHandler struct {
	db *gorm.DB
}

// NewGetUsersQueryHandler creates a handler for user list queries.
// Requires a GORM database connection for query execution.
func NewGetUsersQueryHandler(db *gorm.DB) GetUsersQueryHandler {
	return GetUsersQueryHandler{db: db}
}

// Handle executes the query, returning accounts sorted by username.
// Roles are stored comma-separated and split into a slice here.
func (h GetUsersQueryHandler) Handle(
	ctx context.Context,
	query GetUsersQuery,
) ([]GetUsersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			username,
			roles,
			active,
			created_at
		FROM users
		ORDER BY username
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]GetUsersQueryResponse, 0)

	for rows.Next() {
		var resp GetUsersQueryResponse
		var id uuid.UUID
		var roles string
		var createdAt time.Time

		if err = rows.Scan(&id, &resp.Username, &roles, &resp.Active, &createdAt); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		resp.Roles = strings.Split(roles, ",")
		resp.CreatedAt = createdAt
		users = append(users, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
