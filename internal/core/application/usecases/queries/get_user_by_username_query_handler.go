package queries

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"
	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUserByUsernameQueryHandler retrieves one account row from the database.
type GetUserByUsernameQueryHandler struct {
	db *gorm.DB
}

// NewGetUserByUsernameQueryHandler creates a handler for username lookups.
// Requires a GORM database connection for query execution.
func NewGetUserByUsernameQueryHandler(db *gorm.DB) GetUserByUsernameQueryHandler {
	return GetUserByUsernameQueryHandler{db: db}
}

// Handle executes the lookup.
// Returns errs.ObjectNotFoundError when no account carries the username.
func (h GetUserByUsernameQueryHandler) Handle(
	ctx context.Context,
	query GetUserByUsernameQuery,
) (GetUserByUsernameQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUserByUsernameQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			username,
			password_hash,
			roles,
			active,
			created_at
		FROM users
		WHERE username = ?
	`, query.Username()).Row()

	var resp GetUserByUsernameQueryResponse
	var id uuid.UUID
	var roles string
	var createdAt time.Time

	err := row.Scan(&id, &resp.Username, &resp.PasswordHash, &roles, &resp.Active, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return GetUserByUsernameQueryResponse{}, errs.NewObjectNotFoundError("username", query.Username())
	}
	if err != nil {
		return GetUserByUsernameQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetUserByUsernameQueryResponse{}, err
	}

	resp.Roles = strings.Split(roles, ",")
	resp.CreatedAt = createdAt
	return resp, nil
}
