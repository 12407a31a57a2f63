package queries

import (
	"errors"
	"time"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"
	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/guard"
)

var ErrGetReservationsQueryIsNotConstructed = errors.New(
	"GetReservationsQuery must be created via NewGetReservationsQuery constructor",
)

// GetReservationsQuery retrieves reservations, newest first, optionally
// filtered by user and restricted to active holds. Together with the
// delivery list this feeds the operation state watcher.
type GetReservationsQuery struct {
	userID     *kernel.UUID
	activeOnly bool

	guard guard.ConstructorGuard
}

// NewGetReservationsQuery creates a query to list reservations.
// A nil user ID matches all users; activeOnly restricts to holds in
// reserved or acquired status.
func NewGetReservationsQuery(userID *kernel.UUID, activeOnly bool) (GetReservationsQuery, error) {
	if userID != nil {
		if err := userID.Validate(); err != nil {
			return GetReservationsQuery{}, err
		}
	}

	return GetReservationsQuery{
		userID:     userID,
		activeOnly: activeOnly,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetReservationsQueryIsNotConstructed if validation fails.
func (q GetReservationsQuery) Validate() error {
	return q.guard.Validate(ErrGetReservationsQueryIsNotConstructed)
}

// UserID returns the optional user filter.
func (q GetReservationsQuery) UserID() *kernel.UUID {
	return q.userID
}

// ActiveOnly reports whether lapsed and finished holds are excluded.
func (q GetReservationsQuery) ActiveOnly() bool {
	return q.activeOnly
}

// GetReservationsQueryResponse represents one reservation row.
type GetReservationsQueryResponse struct {
	ID        kernel.UUID
	BatchID   kernel.UUID
	UserID    kernel.UUID
	Quantity  int
	Status    string
	CreatedAt time.Time
	ExpiresAt time.Time
}
