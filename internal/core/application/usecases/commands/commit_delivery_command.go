package commands

import (
	"errors"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"
	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/guard"
)

var ErrCommitDeliveryCommandIsNotConstructed = errors.New(
	"CommitDeliveryCommand must be created via NewCommitDeliveryCommand constructor",
)

// CommitDeliveryCommand represents a volunteer's commitment to carry out a
// published delivery. Committing locks the quantity on the source batch and
// issues the confirmation codes for both handoffs.
//
// Example:
//
//	cmd, err := NewCommitDeliveryCommand(deliveryID, volunteerID, quantity)
//	if err != nil {
//	    return fmt.Errorf("invalid commitment data: %w", err)
//	}
//
//	handler := NewCommitDeliveryCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("commitment failed: %w", err)
//	}
//	fmt.Printf("Show code %s at pickup", result.PickupCode)
type CommitDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID  kernel.UUID
	volunteerID kernel.UUID
	quantity    kernel.Quantity

	guard guard.ConstructorGuard
}

// NewCommitDeliveryCommand creates a command for a volunteer to commit to a
// delivery. Validates both identifiers and the committed quantity.
// Returns an error if any validation fails.
func NewCommitDeliveryCommand(
	deliveryID kernel.UUID,
	volunteerID kernel.UUID,
	quantity kernel.Quantity,
) (CommitDeliveryCommand, error) {
	cmd := CommitDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setVolunteerID(volunteerID),
		cmd.setQuantity(quantity),
	); err != nil {
		return CommitDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCommitDeliveryCommandIsNotConstructed if validation fails.
func (c CommitDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCommitDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery being committed to.
func (c CommitDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// VolunteerID returns the identifier of the committing volunteer.
func (c CommitDeliveryCommand) VolunteerID() kernel.UUID {
	return c.volunteerID
}

// Quantity returns the amount the volunteer commits to carry.
func (c CommitDeliveryCommand) Quantity() kernel.Quantity {
	return c.quantity
}

func (c *CommitDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *CommitDeliveryCommand) setVolunteerID(volunteerID kernel.UUID) error {
	if err := volunteerID.Validate(); err != nil {
		return err
	}

	c.volunteerID = volunteerID
	return nil
}

func (c *CommitDeliveryCommand) setQuantity(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}

	c.quantity = quantity
	return nil
}
