package commands

import (
	"errors"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"
	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/guard"
)

var ErrCancelReservationCommandIsNotConstructed = errors.New(
	"CancelReservationCommand must be created via NewCancelReservationCommand constructor",
)

// CancelReservationCommand represents a request to give up a hold on batch
// quantity, returning it to the pool.
type CancelReservationCommand struct { //nolint:recvcheck //using for validation
	reservationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelReservationCommand creates a command to cancel a reservation.
// Returns an error if the reservation identifier is invalid.
func NewCancelReservationCommand(reservationID kernel.UUID) (CancelReservationCommand, error) {
	cmd := CancelReservationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setReservationID(reservationID); err != nil {
		return CancelReservationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelReservationCommandIsNotConstructed if validation fails.
func (c CancelReservationCommand) Validate() error {
	return c.guard.Validate(ErrCancelReservationCommandIsNotConstructed)
}

// ReservationID returns the identifier of the reservation to cancel.
func (c CancelReservationCommand) ReservationID() kernel.UUID {
	return c.reservationID
}

func (c *CancelReservationCommand) setReservationID(reservationID kernel.UUID) error {
	if err := reservationID.Validate(); err != nil {
		return err
	}

	c.reservationID = reservationID
	return nil
}
