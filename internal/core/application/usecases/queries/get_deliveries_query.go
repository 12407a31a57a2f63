// Package queries contains read-only operations over the persistence layer.
// Implements the Query side of the CQRS architecture: guarded query objects
// handled directly against the database with raw SQL, bypassing the domain
// aggregates.
package queries

import (
	"errors"
	"time"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/delivery"
	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"
	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/guard"
)

var ErrGetDeliveriesQueryIsNotConstructed = errors.New(
	"GetDeliveriesQuery must be created via NewGetDeliveriesQuery constructor",
)

// GetDeliveriesQuery retrieves deliveries, newest first, optionally filtered
// by volunteer and by a set of statuses.
//
// Example:
//
//	query, err := NewGetDeliveriesQuery(&volunteerID, delivery.ActiveStatuses())
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetDeliveriesQueryHandler(db)
//	deliveries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list deliveries: %w", err)
//	}
//	fmt.Printf("Found %d deliveries\n", len(deliveries))
type GetDeliveriesQuery struct {
	volunteerID *kernel.UUID
	statuses    []delivery.Status

	guard guard.ConstructorGuard
}

// NewGetDeliveriesQuery creates a query to list deliveries.
// Both filters are optional: a nil volunteer ID matches all volunteers and
// an empty status set matches all statuses.
func NewGetDeliveriesQuery(
	volunteerID *kernel.UUID,
	statuses []delivery.Status,
) (GetDeliveriesQuery, error) {
	if volunteerID != nil {
		if err := volunteerID.Validate(); err != nil {
			return GetDeliveriesQuery{}, err
		}
	}
	for _, status := range statuses {
		if err := status.Validate(); err != nil {
			return GetDeliveriesQuery{}, err
		}
	}

	return GetDeliveriesQuery{
		volunteerID: volunteerID,
		statuses:    statuses,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveriesQueryIsNotConstructed if validation fails.
func (q GetDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesQueryIsNotConstructed)
}

// VolunteerID returns the optional volunteer filter.
func (q GetDeliveriesQuery) VolunteerID() *kernel.UUID {
	return q.volunteerID
}

// Statuses returns the optional status filter.
func (q GetDeliveriesQuery) Statuses() []delivery.Status {
	return q.statuses
}

// GetDeliveriesQueryResponse represents one delivery row.
// Codes are only present once a volunteer has committed.
type GetDeliveriesQueryResponse struct {
	ID           kernel.UUID
	BatchID      kernel.UUID
	VolunteerID  *kernel.UUID
	Quantity     int
	Status       string
	PickupCode   *string
	DeliveryCode *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
