package commands

import (
	"errors"

	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/errs"
	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/guard"
)

const (
	staleCutoffMinHours = 1
	staleCutoffMaxHours = 24 * 30
)

var ErrSweepStaleDeliveriesCommandIsNotConstructed = errors.New(
	"SweepStaleDeliveriesCommand must be created via NewSweepStaleDeliveriesCommand constructor",
)

// SweepStaleDeliveriesCommand represents the periodic sweep that cancels
// deliveries abandoned mid-flow: published needs nobody committed to and
// commitments that never reached pickup within the cutoff window.
type SweepStaleDeliveriesCommand struct { //nolint:recvcheck //using for validation
	cutoffHours int

	guard guard.ConstructorGuard
}

// NewSweepStaleDeliveriesCommand creates a command to cancel stale deliveries.
// The cutoff is expressed in hours without updates; it must fall within a
// sane operational window.
func NewSweepStaleDeliveriesCommand(cutoffHours int) (SweepStaleDeliveriesCommand, error) {
	cmd := SweepStaleDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCutoffHours(cutoffHours); err != nil {
		return SweepStaleDeliveriesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSweepStaleDeliveriesCommandIsNotConstructed if validation fails.
func (c SweepStaleDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrSweepStaleDeliveriesCommandIsNotConstructed)
}

// CutoffHours returns the staleness threshold in hours.
func (c SweepStaleDeliveriesCommand) CutoffHours() int {
	return c.cutoffHours
}

func (c *SweepStaleDeliveriesCommand) setCutoffHours(cutoffHours int) error {
	if cutoffHours < staleCutoffMinHours || cutoffHours > staleCutoffMaxHours {
		return errs.NewValueIsOutOfRangeError(
			"cutoff hours", cutoffHours, staleCutoffMinHours, staleCutoffMaxHours)
	}

	c.cutoffHours = cutoffHours
	return nil
}
