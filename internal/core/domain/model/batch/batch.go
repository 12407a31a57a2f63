package batch

import (
	"errors"
	"fmt"
	"time"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"
	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/errs"
)

var (
	// ErrBatchIsNotConstructed is returned when a Batch instance was not
	// created through NewBatch or RestoreBatch.
	ErrBatchIsNotConstructed = errors.New("Batch must be created via NewBatch constructor")

	// ErrInsufficientQuantity is returned when a reservation asks for more
	// than the batch still has available.
	ErrInsufficientQuantity = errors.New("batch has insufficient available quantity")

	// ErrBatchNotReady is returned when a reservation targets a batch that
	// has not been published yet.
	ErrBatchNotReady = errors.New("batch is not ready for reservations")

	// ErrResourceNameIsRequired is returned when a batch is created without
	// naming the resource it holds.
	ErrResourceNameIsRequired = errors.New("resource name is required")
)

// Batch represents a provider-published pool of a resource available for
// pickup, with an available/reserved quantity split. It is the aggregate
// root for quantity accounting: deliveries and reservations draw from it
// and return to it on cancellation.
//
// Batch maintains the invariant 0 <= reserved <= total at all times.
type Batch struct {
	id           kernel.UUID
	providerID   kernel.UUID
	locationID   kernel.UUID
	categoryID   kernel.UUID
	resourceName string
	total        int
	reserved     int
	status       Status
	createdAt    time.Time

	isConstructed bool
}

// NewBatch creates a batch in Draft status holding the full quantity
// unreserved. The provider publishes it later via MarkReady.
func NewBatch(
	id kernel.UUID,
	providerID kernel.UUID,
	locationID kernel.UUID,
	categoryID kernel.UUID,
	resourceName string,
	total kernel.Quantity,
) (*Batch, error) {
	b := &Batch{
		status:        Draft,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setProviderID(providerID),
		b.setLocationID(locationID),
		b.setCategoryID(categoryID),
		b.setResourceName(resourceName),
		b.setTotal(total),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBatch reconstructs a batch from persistence, accepting any valid
// status and reserved amount within the accounting invariant.
func RestoreBatch(
	id kernel.UUID,
	providerID kernel.UUID,
	locationID kernel.UUID,
	categoryID kernel.UUID,
	resourceName string,
	total int,
	reserved int,
	status Status,
	createdAt time.Time,
) (*Batch, error) {
	b := &Batch{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setProviderID(providerID),
		b.setLocationID(locationID),
		b.setCategoryID(categoryID),
		b.setResourceName(resourceName),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if total < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"total", fmt.Errorf("%d is negative", total))
	}
	if reserved < 0 || reserved > total {
		return nil, errs.NewValueIsOutOfRangeError("reserved", reserved, 0, total)
	}

	b.total = total
	b.reserved = reserved
	b.status = status
	return b, nil
}

// Validate ensures the Batch instance was properly constructed.
func (b *Batch) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBatchIsNotConstructed
	}
	return nil
}

// IsEqual compares two batches by their unique identifiers.
func (b *Batch) IsEqual(other *Batch) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the batch's unique identifier.
func (b *Batch) ID() kernel.UUID {
	return b.id
}

// Provider returns the publishing provider's ID.
func (b *Batch) Provider() kernel.UUID {
	return b.providerID
}

// Location returns the pickup location's ID.
func (b *Batch) Location() kernel.UUID {
	return b.locationID
}

// Category returns the resource category's ID.
func (b *Batch) Category() kernel.UUID {
	return b.categoryID
}

// ResourceName returns the human-readable name of the pooled resource.
func (b *Batch) ResourceName() string {
	return b.resourceName
}

// Total returns the total quantity the batch still holds.
func (b *Batch) Total() int {
	return b.total
}

// Reserved returns the quantity currently locked by deliveries and reservations.
func (b *Batch) Reserved() int {
	return b.reserved
}

// Available returns the quantity still open for new commitments.
func (b *Batch) Available() int {
	return b.total - b.reserved
}

// Status returns the publication state of the batch.
func (b *Batch) Status() Status {
	return b.status
}

// CreatedAt returns when the batch was registered.
func (b *Batch) CreatedAt() time.Time {
	return b.createdAt
}

// MarkReady publishes a Draft batch so it can take reservations.
func (b *Batch) MarkReady() error {
	if b.status != Draft {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is not a valid status to mark ready", b.status))
	}
	b.status = Ready
	return nil
}

// Reserve locks quantity for a commitment.
//
// Business rules:
//   - The batch must be Ready (or Exhausted batches reject outright)
//   - The requested quantity must not exceed Available()
//
// When the reservation consumes the last available unit the batch moves to
// Exhausted.
func (b *Batch) Reserve(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}

	if b.status == Draft {
		return ErrBatchNotReady
	}
	if quantity.Value() > b.Available() {
		return ErrInsufficientQuantity
	}

	b.reserved += quantity.Value()
	if b.Available() == 0 {
		b.status = Exhausted
	}
	return nil
}

// Release returns previously reserved quantity to the pool, used when a
// delivery or reservation is cancelled or expires. An Exhausted batch
// becomes Ready again.
func (b *Batch) Release(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}

	if quantity.Value() > b.reserved {
		return errs.NewValueIsOutOfRangeError("release quantity", quantity.Value(), 0, b.reserved)
	}

	b.reserved -= quantity.Value()
	if b.status == Exhausted && b.Available() > 0 {
		b.status = Ready
	}
	return nil
}

// ConfirmDispatch permanently removes quantity from the pool once goods
// physically left the provider. The quantity must have been reserved first.
func (b *Batch) ConfirmDispatch(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}

	if quantity.Value() > b.reserved {
		return errs.NewValueIsOutOfRangeError("dispatch quantity", quantity.Value(), 0, b.reserved)
	}

	b.reserved -= quantity.Value()
	b.total -= quantity.Value()
	return nil
}

func (b *Batch) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Batch) setProviderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.providerID = id
	return nil
}

func (b *Batch) setLocationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.locationID = id
	return nil
}

func (b *Batch) setCategoryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.categoryID = id
	return nil
}

func (b *Batch) setResourceName(name string) error {
	if name == "" {
		return ErrResourceNameIsRequired
	}
	b.resourceName = name
	return nil
}

func (b *Batch) setTotal(total kernel.Quantity) error {
	if err := total.Validate(); err != nil {
		return err
	}
	b.total = total.Value()
	return nil
}
