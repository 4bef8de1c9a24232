package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrConfirmCODPaymentCommandIsNotConstructed = errors.New(
	"ConfirmCODPaymentCommand must be created via NewConfirmCODPaymentCommand constructor",
)

// ConfirmCODPaymentCommand represents the choice of cash on delivery for an
// order. The amount recorded is always the order's server-computed total.
type ConfirmCODPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmCODPaymentCommand creates a command to confirm a cash payment.
func NewConfirmCODPaymentCommand(orderID, actorID kernel.UUID) (ConfirmCODPaymentCommand, error) {
	cmd := ConfirmCODPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
	); err != nil {
		return ConfirmCODPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmCODPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmCODPaymentCommandIsNotConstructed)
}

// OrderID returns the settled order's identifier.
func (c ConfirmCODPaymentCommand) OrderID() kernel.UUID { return c.orderID }

// ActorID returns the acting principal's identifier.
func (c ConfirmCODPaymentCommand) ActorID() kernel.UUID { return c.actorID }

func (c *ConfirmCODPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ConfirmCODPaymentCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}
