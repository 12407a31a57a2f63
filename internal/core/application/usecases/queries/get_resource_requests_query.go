package queries

import (
	"errors"
	"time"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"
	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/guard"
)

var ErrGetResourceRequestsQueryIsNotConstructed = errors.New(
	"GetResourceRequestsQuery must be created via NewGetResourceRequestsQuery constructor",
)

// GetResourceRequestsQuery retrieves shelter-declared needs, optionally
// filtered by status.
type GetResourceRequestsQuery struct {
	status string

	guard guard.ConstructorGuard
}

// NewGetResourceRequestsQuery creates a query to list resource requests.
// An empty status matches all requests.
func NewGetResourceRequestsQuery(status string) GetResourceRequestsQuery {
	return GetResourceRequestsQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetResourceRequestsQueryIsNotConstructed if validation fails.
func (q GetResourceRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetResourceRequestsQueryIsNotConstructed)
}

// Status returns the optional status filter.
func (q GetResourceRequestsQuery) Status() string {
	return q.status
}

// GetResourceRequestsQueryResponse represents one shelter need row.
type GetResourceRequestsQueryResponse struct {
	ID           kernel.UUID
	ShelterID    kernel.UUID
	CategoryID   kernel.UUID
	ResourceName string
	Quantity     int
	Status       string
	CreatedAt    time.Time
}
