package queries

import (
	"errors"
	"time"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"
	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/guard"
)

var ErrGetUsersQueryIsNotConstructed = errors.New(
	"GetUsersQuery must be created via NewGetUsersQuery constructor",
)

// GetUsersQuery retrieves all user accounts for the admin overview.
type GetUsersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUsersQuery creates a query to list user accounts.
// This is a parameterless query.
func NewGetUsersQuery() GetUsersQuery {
	return GetUsersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUsersQueryIsNotConstructed if validation fails.
func (q GetUsersQuery) Validate() error {
	return q.guard.Validate(ErrGetUsersQueryIsNotConstructed)
}

// GetUsersQueryResponse represents one user account row.
// The password hash is deliberately not part of the projection.
type GetUsersQueryResponse struct {
	ID        kernel.UUID
	Username  string
	Roles     []string
	Active    bool
	CreatedAt time.Time
}
