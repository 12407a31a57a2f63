package commands

import (
	"errors"

	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/guard"
)

var ErrExpireReservationsCommandIsNotConstructed = errors.New(
	"ExpireReservationsCommand must be created via NewExpireReservationsCommand constructor",
)

// ExpireReservationsCommand represents the periodic sweep that lapses all
// overdue holds. It is a parameterless command: the handler finds every
// reservation whose deadline has passed.
type ExpireReservationsCommand struct {
	guard guard.ConstructorGuard
}

// NewExpireReservationsCommand creates a command to expire overdue reservations.
// This is a parameterless command used by the background sweep job.
func NewExpireReservationsCommand() ExpireReservationsCommand {
	return ExpireReservationsCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
// Returns ErrExpireReservationsCommandIsNotConstructed if validation fails.
func (c ExpireReservationsCommand) Validate() error {
	return c.guard.Validate(ErrExpireReservationsCommandIsNotConstructed)
}
