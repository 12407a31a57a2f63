package commands

import (
	"errors"
	"time"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"
	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/guard"
)

var ErrCreateReservationCommandIsNotConstructed = errors.New(
	"CreateReservationCommand must be created via NewCreateReservationCommand constructor",
)

// CreateReservationCommand represents a shelter's request to hold quantity
// on a ready batch for direct collection, bypassing volunteer delivery.
// The hold lapses automatically after the TTL unless acquired first.
//
// Example:
//
//	cmd, err := NewCreateReservationCommand(reservationID, batchID, shelterID, quantity, 0)
//	if err != nil {
//	    return fmt.Errorf("invalid reservation data: %w", err)
//	}
//
//	handler := NewCreateReservationCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("reservation failed: %w", err)
//	}
type CreateReservationCommand struct { //nolint:recvcheck //using for validation
	reservationID kernel.UUID
	batchID       kernel.UUID
	userID        kernel.UUID
	quantity      kernel.Quantity
	ttl           time.Duration

	guard guard.ConstructorGuard
}

// NewCreateReservationCommand creates a command to hold batch quantity for a
// shelter. A non-positive ttl falls back to the aggregate's default hold
// duration. Returns an error if any identifier or the quantity is invalid.
func NewCreateReservationCommand(
	reservationID kernel.UUID,
	batchID kernel.UUID,
	userID kernel.UUID,
	quantity kernel.Quantity,
	ttl time.Duration,
) (CreateReservationCommand, error) {
	cmd := CreateReservationCommand{
		ttl:   ttl,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReservationID(reservationID),
		cmd.setBatchID(batchID),
		cmd.setUserID(userID),
		cmd.setQuantity(quantity),
	); err != nil {
		return CreateReservationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateReservationCommandIsNotConstructed if validation fails.
func (c CreateReservationCommand) Validate() error {
	return c.guard.Validate(ErrCreateReservationCommandIsNotConstructed)
}

// ReservationID returns the unique identifier for the new reservation.
func (c CreateReservationCommand) ReservationID() kernel.UUID {
	return c.reservationID
}

// BatchID returns the identifier of the batch quantity is held on.
func (c CreateReservationCommand) BatchID() kernel.UUID {
	return c.batchID
}

// UserID returns the identifier of the reserving shelter user.
func (c CreateReservationCommand) UserID() kernel.UUID {
	return c.userID
}

// Quantity returns the amount to hold.
func (c CreateReservationCommand) Quantity() kernel.Quantity {
	return c.quantity
}

// TTL returns the requested hold duration, zero meaning the default.
func (c CreateReservationCommand) TTL() time.Duration {
	return c.ttl
}

func (c *CreateReservationCommand) setReservationID(reservationID kernel.UUID) error {
	if err := reservationID.Validate(); err != nil {
		return err
	}

	c.reservationID = reservationID
	return nil
}

func (c *CreateReservationCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}

func (c *CreateReservationCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateReservationCommand) setQuantity(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}

	c.quantity = quantity
	return nil
}
