package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/payment"
	"laundry/internal/pkg/guard"
)

var ErrUpdatePaymentStatusCommandIsNotConstructed = errors.New(
	"UpdatePaymentStatusCommand must be created via NewUpdatePaymentStatusCommand constructor",
)

// UpdatePaymentStatusCommand represents a staff request to set an order's
// payment status directly, e.g. reconciling an out-of-band settlement.
type UpdatePaymentStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	next    payment.Status

	guard guard.ConstructorGuard
}

// NewUpdatePaymentStatusCommand creates a command to set the payment status.
func NewUpdatePaymentStatusCommand(
	orderID, actorID kernel.UUID, next payment.Status,
) (UpdatePaymentStatusCommand, error) {
	cmd := UpdatePaymentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setNext(next),
	); err != nil {
		return UpdatePaymentStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePaymentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePaymentStatusCommandIsNotConstructed)
}

// OrderID returns the order's identifier.
func (c UpdatePaymentStatusCommand) OrderID() kernel.UUID { return c.orderID }

// ActorID returns the acting principal's identifier.
func (c UpdatePaymentStatusCommand) ActorID() kernel.UUID { return c.actorID }

// Next returns the requested payment status.
func (c UpdatePaymentStatusCommand) Next() payment.Status { return c.next }

func (c *UpdatePaymentStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdatePaymentStatusCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *UpdatePaymentStatusCommand) setNext(next payment.Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	c.next = next
	return nil
}
