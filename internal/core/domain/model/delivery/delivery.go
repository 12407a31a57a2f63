package delivery

import (
	"errors"
	"time"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"
	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
	// created through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

	// ErrPickupCodeMismatch is returned when the code presented at a handoff
	// does not match the one issued for the delivery.
	ErrPickupCodeMismatch = errors.New("confirmation code does not match")
)

// Delivery represents a tracked pickup-to-dropoff operation: a quantity of a
// published batch that needs to travel from a provider location to a shelter.
// It is the aggregate root that manages the handoff lifecycle from commitment
// through pickup and transit to validated delivery.
//
// Delivery follows these invariants:
//   - Must have a valid unique identifier and a valid source batch identifier
//   - Quantity is always a validated positive amount
//   - A volunteer is attached exactly when the status is Reserved or later
//   - Confirmation codes exist exactly when a volunteer is attached
//   - Status transitions follow the Status state machine
//   - Can only be created through NewDelivery or RestoreDelivery
type Delivery struct {
	id          kernel.UUID
	batchID     kernel.UUID
	volunteerID *kernel.UUID
	quantity    kernel.Quantity

	// pickupCode is checked by the provider when goods leave the location.
	pickupCode *kernel.PickupCode

	// deliveryCode is checked by the shelter when goods arrive.
	deliveryCode *kernel.PickupCode

	status    Status
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewDelivery registers a new delivery need against a published batch.
// The delivery starts in PendingConfirmation with no volunteer attached;
// a volunteer later commits to it via Commit.
//
// Parameters:
//   - id: unique identifier for the delivery
//   - batchID: the published batch the goods come from
//   - quantity: the requested amount
//
// Returns a validation error if any parameter is invalid.
func NewDelivery(id kernel.UUID, batchID kernel.UUID, quantity kernel.Quantity) (*Delivery, error) {
	now := time.Now().UTC()
	d := &Delivery{
		status:        PendingConfirmation,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setBatchID(batchID),
		d.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a delivery from persistence.
// Unlike NewDelivery it accepts any valid status and optional volunteer and
// codes, but still enforces cross-field consistency: statuses from Reserved
// onward require a volunteer and confirmation codes.
func RestoreDelivery(
	id kernel.UUID,
	batchID kernel.UUID,
	volunteerID *kernel.UUID,
	quantity kernel.Quantity,
	pickupCode *kernel.PickupCode,
	deliveryCode *kernel.PickupCode,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Delivery, error) {
	d := &Delivery{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setBatchID(batchID),
		d.setQuantity(quantity),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	d.status = status

	if volunteerID != nil {
		if err := volunteerID.Validate(); err != nil {
			return nil, err
		}
		d.volunteerID = volunteerID
	}

	// Cancelled deliveries may or may not carry a volunteer depending on when
	// the cancellation happened, so consistency is only enforced elsewhere.
	if status != Cancelled {
		if err := status.ValidateCanHaveVolunteer(d.volunteerID != nil); err != nil {
			return nil, err
		}
	}

	if pickupCode != nil {
		if err := pickupCode.Validate(); err != nil {
			return nil, err
		}
		d.pickupCode = pickupCode
	}
	if deliveryCode != nil {
		if err := deliveryCode.Validate(); err != nil {
			return nil, err
		}
		d.deliveryCode = deliveryCode
	}

	if d.volunteerID != nil && (d.pickupCode == nil || d.deliveryCode == nil) {
		return nil, errs.NewValueIsRequiredError("confirmation codes for committed delivery")
	}

	return d, nil
}

// Validate ensures the Delivery instance was properly constructed.
// Returns ErrDeliveryIsNotConstructed otherwise.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// BatchID returns the identifier of the source batch.
func (d *Delivery) BatchID() kernel.UUID {
	return d.batchID
}

// Volunteer returns the committed volunteer's ID, or nil before commitment.
func (d *Delivery) Volunteer() *kernel.UUID {
	return d.volunteerID
}

// Quantity returns the amount being delivered.
func (d *Delivery) Quantity() kernel.Quantity {
	return d.quantity
}

// PickupCode returns the code the provider checks at pickup, or nil before
// commitment.
func (d *Delivery) PickupCode() *kernel.PickupCode {
	return d.pickupCode
}

// DeliveryCode returns the code the shelter checks at dropoff, or nil before
// commitment.
func (d *Delivery) DeliveryCode() *kernel.PickupCode {
	return d.deliveryCode
}

// Status returns the current status of the delivery.
func (d *Delivery) Status() Status {
	return d.status
}

// CreatedAt returns when the delivery was registered.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// UpdatedAt returns when the delivery last changed state.
func (d *Delivery) UpdatedAt() time.Time {
	return d.updatedAt
}

// Commit attaches a volunteer to the delivery and moves it to Reserved.
// The committed quantity replaces the requested one (the volunteer may take
// less than was asked for), and both confirmation codes are issued.
//
// Business rules:
//   - The volunteer ID must be valid
//   - The delivery must be in PendingConfirmation status
//   - The quantity must be a valid positive amount
//
// The caller is responsible for reserving the quantity on the source batch
// within the same transaction.
func (d *Delivery) Commit(volunteerID kernel.UUID, quantity kernel.Quantity) error {
	if err := volunteerID.Validate(); err != nil {
		return err
	}
	if err := quantity.Validate(); err != nil {
		return err
	}

	newStatus, err := d.status.Commit()
	if err != nil {
		return err
	}

	pickupCode, err := kernel.GeneratePickupCode()
	if err != nil {
		return err
	}
	deliveryCode, err := kernel.GeneratePickupCode()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.volunteerID = &volunteerID
	d.quantity = quantity
	d.pickupCode = &pickupCode
	d.deliveryCode = &deliveryCode
	d.touch()
	return nil
}

// ConfirmPickup records the provider-side handoff: the presented code must
// match the issued pickup code, and the delivery moves Reserved -> PickedUp.
func (d *Delivery) ConfirmPickup(code kernel.PickupCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	if d.pickupCode == nil || !d.pickupCode.IsEqual(code) {
		return ErrPickupCodeMismatch
	}

	newStatus, err := d.status.ConfirmPickup()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.touch()
	return nil
}

// StartTransit moves the delivery PickedUp -> InTransit.
func (d *Delivery) StartTransit() error {
	newStatus, err := d.status.StartTransit()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.touch()
	return nil
}

// CompleteDelivery records the shelter-side handoff: the presented code must
// match the issued delivery code, and the delivery moves InTransit -> Delivered.
func (d *Delivery) CompleteDelivery(code kernel.PickupCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	if d.deliveryCode == nil || !d.deliveryCode.IsEqual(code) {
		return ErrPickupCodeMismatch
	}

	newStatus, err := d.status.Complete()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.touch()
	return nil
}

// Cancel abandons the delivery before pickup.
// The caller is responsible for releasing any reserved quantity back to the
// source batch within the same transaction.
func (d *Delivery) Cancel() error {
	newStatus, err := d.status.Cancel()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.touch()
	return nil
}

func (d *Delivery) touch() {
	d.updatedAt = time.Now().UTC()
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}
	d.batchID = batchID
	return nil
}

func (d *Delivery) setQuantity(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}
	d.quantity = quantity
	return nil
}
