package queries

import (
	"errors"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"
	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/guard"
)

var ErrGetLocationsQueryIsNotConstructed = errors.New(
	"GetLocationsQuery must be created via NewGetLocationsQuery constructor",
)

// GetLocationsQuery retrieves pickup locations, optionally restricted to
// active ones.
type GetLocationsQuery struct {
	activeOnly bool

	guard guard.ConstructorGuard
}

// NewGetLocationsQuery creates a query to list pickup locations.
func NewGetLocationsQuery(activeOnly bool) GetLocationsQuery {
	return GetLocationsQuery{
		activeOnly: activeOnly,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetLocationsQueryIsNotConstructed if validation fails.
func (q GetLocationsQuery) Validate() error {
	return q.guard.Validate(ErrGetLocationsQueryIsNotConstructed)
}

// ActiveOnly reports whether deactivated locations are excluded.
func (q GetLocationsQuery) ActiveOnly() bool {
	return q.activeOnly
}

// GetLocationsQueryResponse represents one pickup location row.
type GetLocationsQueryResponse struct {
	ID     kernel.UUID
	Name   string
	Street string
	Active bool
}
