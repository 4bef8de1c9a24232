package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrMarkPaymentFailedCommandIsNotConstructed = errors.New(
	"MarkPaymentFailedCommand must be created via NewMarkPaymentFailedCommand constructor",
)

// MarkPaymentFailedCommand represents a failed payment attempt callback for
// an order, with the provider's failure reason.
type MarkPaymentFailedCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewMarkPaymentFailedCommand creates a command to record a failed attempt.
func NewMarkPaymentFailedCommand(orderID, actorID kernel.UUID, reason string) (MarkPaymentFailedCommand, error) {
	cmd := MarkPaymentFailedCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
	); err != nil {
		return MarkPaymentFailedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkPaymentFailedCommand) Validate() error {
	return c.guard.Validate(ErrMarkPaymentFailedCommandIsNotConstructed)
}

// OrderID returns the order's identifier.
func (c MarkPaymentFailedCommand) OrderID() kernel.UUID { return c.orderID }

// ActorID returns the acting principal's identifier.
func (c MarkPaymentFailedCommand) ActorID() kernel.UUID { return c.actorID }

// Reason returns the provider's failure reason.
func (c MarkPaymentFailedCommand) Reason() string { return c.reason }

func (c *MarkPaymentFailedCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *MarkPaymentFailedCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}
