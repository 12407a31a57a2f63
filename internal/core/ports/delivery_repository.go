// Package ports defines repository interfaces for the donation logistics domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/delivery"
	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
// Provides methods for storing, retrieving, and querying deliveries with their
// complete state including commitment codes.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	// The delivery must be valid and not already exist in the repository.
	//
	// Returns errs.ConflictError when storing the delivery would give the
	// volunteer more than one active delivery at a time.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	// The delivery must exist in the repository and be valid.
	//
	// Returns errs.ConflictError when the update would give the volunteer
	// more than one active delivery at a time.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	// Returns the complete delivery with its current status and codes.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetActiveByVolunteer retrieves all deliveries of the volunteer that are
	// in an active status (pending confirmation, reserved, picked up or in transit).
	//
	// Under the one-active-delivery rule the result has at most one element,
	// but the contract allows more so callers can surface inconsistent data.
	GetActiveByVolunteer(ctx context.Context, volunteerID kernel.UUID) ([]*delivery.Delivery, error)

	// GetActiveOlderThan retrieves deliveries that have been in an active
	// status without updates for longer than the given number of hours.
	// Used by the stale delivery sweep to release abandoned commitments.
	GetActiveOlderThan(ctx context.Context, hours int) ([]*delivery.Delivery, error)
}
