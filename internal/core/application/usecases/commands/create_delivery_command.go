package commands

import (
	"errors"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"
	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand represents a request to publish a new delivery need
// against a ready batch. The delivery enters the pool volunteers browse;
// no quantity is locked until a volunteer commits.
//
// Example:
//
//	deliveryID := kernel.NewUUID()
//	cmd, err := NewCreateDeliveryCommand(deliveryID, batchID, quantity)
//	if err != nil {
//	    return fmt.Errorf("invalid delivery data: %w", err)
//	}
//
//	handler := NewCreateDeliveryCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create delivery: %w", err)
//	}
//	fmt.Printf("Delivery %s published and awaiting a volunteer", deliveryID)
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	batchID    kernel.UUID
	quantity   kernel.Quantity

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to publish a delivery need.
// Validates that both identifiers and the requested quantity are valid.
// Returns an error if any validation fails.
func NewCreateDeliveryCommand(
	deliveryID kernel.UUID,
	batchID kernel.UUID,
	quantity kernel.Quantity,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setBatchID(batchID),
		cmd.setQuantity(quantity),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDeliveryCommandIsNotConstructed if validation fails.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the unique identifier for the new delivery.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// BatchID returns the identifier of the batch the goods come from.
func (c CreateDeliveryCommand) BatchID() kernel.UUID {
	return c.batchID
}

// Quantity returns the requested amount.
func (c CreateDeliveryCommand) Quantity() kernel.Quantity {
	return c.quantity
}

func (c *CreateDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *CreateDeliveryCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}

func (c *CreateDeliveryCommand) setQuantity(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}

	c.quantity = quantity
	return nil
}
