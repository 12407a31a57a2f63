package commands

import (
	"errors"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"
	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/guard"
)

var (
	ErrCreateBatchCommandIsNotConstructed = errors.New(
		"CreateBatchCommand must be created via NewCreateBatchCommand constructor",
	)
	ErrResourceNameIsRequired = errors.New("resource name is required")
)

// CreateBatchCommand represents a provider's request to register a new batch
// of donated goods. The batch starts in draft status and has to be marked
// ready before volunteers or shelters can claim from it.
//
// Example:
//
//	batchID := kernel.NewUUID()
//	cmd, err := NewCreateBatchCommand(batchID, providerID, locationID, categoryID, "Blankets", total)
//	if err != nil {
//	    return fmt.Errorf("invalid batch data: %w", err)
//	}
//
//	handler := NewCreateBatchCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create batch: %w", err)
//	}
type CreateBatchCommand struct { //nolint:recvcheck //using for validation
	batchID      kernel.UUID
	providerID   kernel.UUID
	locationID   kernel.UUID
	categoryID   kernel.UUID
	resourceName string
	total        kernel.Quantity

	guard guard.ConstructorGuard
}

// NewCreateBatchCommand creates a command to register a new donation batch.
// Validates all identifiers, the resource name, and the total quantity.
// Returns an error if any validation fails.
func NewCreateBatchCommand(
	batchID kernel.UUID,
	providerID kernel.UUID,
	locationID kernel.UUID,
	categoryID kernel.UUID,
	resourceName string,
	total kernel.Quantity,
) (CreateBatchCommand, error) {
	cmd := CreateBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBatchID(batchID),
		cmd.setProviderID(providerID),
		cmd.setLocationID(locationID),
		cmd.setCategoryID(categoryID),
		cmd.setResourceName(resourceName),
		cmd.setTotal(total),
	); err != nil {
		return CreateBatchCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateBatchCommandIsNotConstructed if validation fails.
func (c CreateBatchCommand) Validate() error {
	return c.guard.Validate(ErrCreateBatchCommandIsNotConstructed)
}

// BatchID returns the unique identifier for the new batch.
func (c CreateBatchCommand) BatchID() kernel.UUID {
	return c.batchID
}

// ProviderID returns the identifier of the donating provider.
func (c CreateBatchCommand) ProviderID() kernel.UUID {
	return c.providerID
}

// LocationID returns the identifier of the pickup location.
func (c CreateBatchCommand) LocationID() kernel.UUID {
	return c.locationID
}

// CategoryID returns the identifier of the resource category.
func (c CreateBatchCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

// ResourceName returns the human-readable name of the donated resource.
func (c CreateBatchCommand) ResourceName() string {
	return c.resourceName
}

// Total returns the total donated quantity.
func (c CreateBatchCommand) Total() kernel.Quantity {
	return c.total
}

func (c *CreateBatchCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}

func (c *CreateBatchCommand) setProviderID(providerID kernel.UUID) error {
	if err := providerID.Validate(); err != nil {
		return err
	}

	c.providerID = providerID
	return nil
}

func (c *CreateBatchCommand) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	c.locationID = locationID
	return nil
}

func (c *CreateBatchCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}

	c.categoryID = categoryID
	return nil
}

func (c *CreateBatchCommand) setResourceName(resourceName string) error {
	if resourceName == "" {
		return ErrResourceNameIsRequired
	}

	c.resourceName = resourceName
	return nil
}

func (c *CreateBatchCommand) setTotal(total kernel.Quantity) error {
	if err := total.Validate(); err != nil {
		return err
	}

	c.total = total
	return nil
}
