package queries

import (
	"errors"
	"time"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"
	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/guard"
)

var (
	ErrGetUserByUsernameQueryIsNotConstructed = errors.New(
		"GetUserByUsernameQuery must be created via NewGetUserByUsernameQuery constructor",
	)
	ErrUsernameIsRequired = errors.New("username is required")
)

// GetUserByUsernameQuery retrieves a single account by its unique username.
// Used by the login flow, which needs the stored password hash to verify
// credentials; it is never exposed as an endpoint.
type GetUserByUsernameQuery struct {
	username string

	guard guard.ConstructorGuard
}

// NewGetUserByUsernameQuery creates a query to load an account by username.
// Returns an error if the username is empty.
func NewGetUserByUsernameQuery(username string) (GetUserByUsernameQuery, error) {
	if username == "" {
		return GetUserByUsernameQuery{}, ErrUsernameIsRequired
	}

	return GetUserByUsernameQuery{
		username: username,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUserByUsernameQueryIsNotConstructed if validation fails.
func (q GetUserByUsernameQuery) Validate() error {
	return q.guard.Validate(ErrGetUserByUsernameQueryIsNotConstructed)
}

// Username returns the account name to look up.
func (q GetUserByUsernameQuery) Username() string {
	return q.username
}

// GetUserByUsernameQueryResponse carries the full account row, including the
// password hash needed for credential verification.
type GetUserByUsernameQueryResponse struct {
	ID           kernel.UUID
	Username     string
	PasswordHash string
	Roles        []string
	Active       bool
	CreatedAt    time.Time
}
