package commands

import (
	"errors"

	"laundry/internal/pkg/guard"
)

var ErrSweepLateDeliveriesCommandIsNotConstructed = errors.New(
	"SweepLateDeliveriesCommand must be created via NewSweepLateDeliveriesCommand constructor",
)

// SweepLateDeliveriesCommand triggers one pass of the lateness sweep: every
// active job past its scheduled delivery time gets its late flag set. The
// sweep runs on a schedule with no acting principal.
type SweepLateDeliveriesCommand struct {
	guard guard.ConstructorGuard
}

// NewSweepLateDeliveriesCommand creates a parameterless sweep command.
func NewSweepLateDeliveriesCommand() SweepLateDeliveriesCommand {
	return SweepLateDeliveriesCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c SweepLateDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrSweepLateDeliveriesCommandIsNotConstructed)
}
