package reservation

import (
	"errors"
	"fmt"
	"time"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"
	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/errs"
)

// DefaultTTL is how long a reservation holds quantity before it can be
// expired by the sweep job.
const DefaultTTL = 24 * time.Hour

var (
	// ErrReservationIsNotConstructed is returned when a Reservation instance
	// was not created through NewReservation or RestoreReservation.
	ErrReservationIsNotConstructed = errors.New(
		"Reservation must be created via NewReservation constructor")

	// ErrReservationNotExpirable is returned when Expire is called before
	// the hold deadline has passed.
	ErrReservationNotExpirable = errors.New("reservation hold has not lapsed yet")
)

// Reservation represents a direct hold on a batch's quantity, used by
// shelters that collect goods themselves instead of going through a
// volunteer delivery. It shares the batch accounting with deliveries:
// quantity is locked at creation and released on cancellation or expiry.
type Reservation struct {
	id        kernel.UUID
	batchID   kernel.UUID
	userID    kernel.UUID
	quantity  kernel.Quantity
	status    Status
	createdAt time.Time
	expiresAt time.Time

	isConstructed bool
}

// NewReservation creates a reservation in Reserved status holding quantity
// until the expiry deadline. The caller reserves the quantity on the batch
// within the same transaction.
func NewReservation(
	id kernel.UUID,
	batchID kernel.UUID,
	userID kernel.UUID,
	quantity kernel.Quantity,
	ttl time.Duration,
) (*Reservation, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	now := time.Now().UTC()
	r := &Reservation{
		status:        Reserved,
		createdAt:     now,
		expiresAt:     now.Add(ttl),
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setBatchID(batchID),
		r.setUserID(userID),
		r.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreReservation reconstructs a reservation from persistence.
func RestoreReservation(
	id kernel.UUID,
	batchID kernel.UUID,
	userID kernel.UUID,
	quantity kernel.Quantity,
	status Status,
	createdAt time.Time,
	expiresAt time.Time,
) (*Reservation, error) {
	r := &Reservation{
		createdAt:     createdAt,
		expiresAt:     expiresAt,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setBatchID(batchID),
		r.setUserID(userID),
		r.setQuantity(quantity),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	r.status = status
	return r, nil
}

// Validate ensures the Reservation instance was properly constructed.
func (r *Reservation) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReservationIsNotConstructed
	}
	return nil
}

// ID returns the reservation's unique identifier.
func (r *Reservation) ID() kernel.UUID {
	return r.id
}

// Batch returns the identifier of the batch holding the quantity.
func (r *Reservation) Batch() kernel.UUID {
	return r.batchID
}

// User returns the reserving user's ID.
func (r *Reservation) User() kernel.UUID {
	return r.userID
}

// Quantity returns the held amount.
func (r *Reservation) Quantity() kernel.Quantity {
	return r.quantity
}

// Status returns the current status of the reservation.
func (r *Reservation) Status() Status {
	return r.status
}

// CreatedAt returns when the reservation was placed.
func (r *Reservation) CreatedAt() time.Time {
	return r.createdAt
}

// ExpiresAt returns the hold deadline.
func (r *Reservation) ExpiresAt() time.Time {
	return r.expiresAt
}

// Acquire records that the reserving party collected the goods.
//
// Valid transitions:
//   - Reserved -> Acquired
func (r *Reservation) Acquire() error {
	if r.status != Reserved {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is not a valid status to acquire", r.status))
	}
	r.status = Acquired
	return nil
}

// Complete marks the distribution finished.
//
// Valid transitions:
//   - Acquired -> Completed
func (r *Reservation) Complete() error {
	if r.status != Acquired {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is not a valid status to complete", r.status))
	}
	r.status = Completed
	return nil
}

// Cancel abandons the reservation. Allowed while Reserved or Acquired.
// The caller releases quantity back to the batch for Reserved cancellations.
func (r *Reservation) Cancel() error {
	if r.status != Reserved && r.status != Acquired {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is not a valid status to cancel", r.status))
	}
	r.status = Cancelled
	return nil
}

// Expire lapses a never-acquired hold once its deadline passed.
// Returns ErrReservationNotExpirable before the deadline; only Reserved
// reservations can expire.
func (r *Reservation) Expire(now time.Time) error {
	if r.status != Reserved {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is not a valid status to expire", r.status))
	}
	if now.Before(r.expiresAt) {
		return ErrReservationNotExpirable
	}
	r.status = Expired
	return nil
}

func (r *Reservation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Reservation) setBatchID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.batchID = id
	return nil
}

func (r *Reservation) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.userID = id
	return nil
}

func (r *Reservation) setQuantity(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}
	r.quantity = quantity
	return nil
}
