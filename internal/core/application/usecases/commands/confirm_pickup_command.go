package commands

import (
	"errors"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"
	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/guard"
)

var ErrConfirmPickupCommandIsNotConstructed = errors.New(
	"ConfirmPickupCommand must be created via NewConfirmPickupCommand constructor",
)

// ConfirmPickupCommand represents the provider-side handoff: the volunteer
// presents the pickup code at the provider location and leaves with the goods.
//
// Example:
//
//	code, err := kernel.PickupCodeFromString(presented)
//	if err != nil {
//	    return fmt.Errorf("malformed code: %w", err)
//	}
//	cmd, err := NewConfirmPickupCommand(deliveryID, code)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewConfirmPickupCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("pickup confirmation failed: %w", err)
//	}
type ConfirmPickupCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	code       kernel.PickupCode

	guard guard.ConstructorGuard
}

// NewConfirmPickupCommand creates a command to confirm a pickup handoff.
// Validates the delivery identifier and the presented code's shape; whether
// the code matches is decided by the aggregate during handling.
func NewConfirmPickupCommand(
	deliveryID kernel.UUID,
	code kernel.PickupCode,
) (ConfirmPickupCommand, error) {
	cmd := ConfirmPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setCode(code),
	); err != nil {
		return ConfirmPickupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrConfirmPickupCommandIsNotConstructed if validation fails.
func (c ConfirmPickupCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPickupCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery being picked up.
func (c ConfirmPickupCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Code returns the confirmation code presented by the volunteer.
func (c ConfirmPickupCommand) Code() kernel.PickupCode {
	return c.code
}

func (c *ConfirmPickupCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *ConfirmPickupCommand) setCode(code kernel.PickupCode) error {
	if err := code.Validate(); err != nil {
		return err
	}

	c.code = code
	return nil
}
