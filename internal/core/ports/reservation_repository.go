package ports

import (
	"context"
	"time"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"
	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/reservation"
)

// ReservationRepository defines the persistence contract for shelter
// reservation aggregates.
type ReservationRepository interface {
	// Add persists a new reservation aggregate to storage.
	// The reservation must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *reservation.Reservation) error

	// Update persists changes to an existing reservation aggregate.
	// The reservation must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *reservation.Reservation) error

	// Get retrieves a reservation aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*reservation.Reservation, error)

	// GetActiveByShelter retrieves all reservations of the shelter that are
	// in an active status (reserved or acquired).
	GetActiveByShelter(ctx context.Context, shelterID kernel.UUID) ([]*reservation.Reservation, error)

	// GetExpired retrieves reservations in Reserved status whose expiry
	// deadline has passed at the given instant. Used by the expiry job.
	GetExpired(ctx context.Context, now time.Time) ([]*reservation.Reservation, error)
}
