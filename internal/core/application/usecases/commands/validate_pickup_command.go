package commands

import (
	"errors"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"
	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/guard"
)

var ErrValidatePickupCommandIsNotConstructed = errors.New(
	"ValidatePickupCommand must be created via NewValidatePickupCommand constructor",
)

// ValidatePickupCommand represents the shelter-side handoff: the volunteer
// presents the delivery code on arrival and the shelter validates it,
// completing the delivery.
type ValidatePickupCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	code       kernel.PickupCode

	guard guard.ConstructorGuard
}

// NewValidatePickupCommand creates a command to validate a dropoff handoff.
// Validates the delivery identifier and the presented code's shape; whether
// the code matches is decided by the aggregate during handling.
func NewValidatePickupCommand(
	deliveryID kernel.UUID,
	code kernel.PickupCode,
) (ValidatePickupCommand, error) {
	cmd := ValidatePickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setCode(code),
	); err != nil {
		return ValidatePickupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrValidatePickupCommandIsNotConstructed if validation fails.
func (c ValidatePickupCommand) Validate() error {
	return c.guard.Validate(ErrValidatePickupCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery being completed.
func (c ValidatePickupCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Code returns the confirmation code presented by the volunteer.
func (c ValidatePickupCommand) Code() kernel.PickupCode {
	return c.code
}

func (c *ValidatePickupCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *ValidatePickupCommand) setCode(code kernel.PickupCode) error {
	if err := code.Validate(); err != nil {
		return err
	}

	c.code = code
	return nil
}
