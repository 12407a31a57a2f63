package queries

import (
	"errors"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"
	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/guard"
)

var ErrGetCategoriesQueryIsNotConstructed = errors.New(
	"GetCategoriesQuery must be created via NewGetCategoriesQuery constructor",
)

// GetCategoriesQuery retrieves resource categories, optionally restricted to
// active ones.
type GetCategoriesQuery struct {
	activeOnly bool

	guard guard.ConstructorGuard
}

// NewGetCategoriesQuery creates a query to list resource categories.
func NewGetCategoriesQuery(activeOnly bool) GetCategoriesQuery {
	return GetCategoriesQuery{
		activeOnly: activeOnly,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCategoriesQueryIsNotConstructed if validation fails.
func (q GetCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrGetCategoriesQueryIsNotConstructed)
}

// ActiveOnly reports whether deactivated categories are excluded.
func (q GetCategoriesQuery) ActiveOnly() bool {
	return q.activeOnly
}

// GetCategoriesQueryResponse represents one resource category row.
type GetCategoriesQueryResponse struct {
	ID     kernel.UUID
	Name   string
	Active bool
}
