package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrMarkCardPaidCommandIsNotConstructed = errors.New(
	"MarkCardPaidCommand must be created via NewMarkCardPaidCommand constructor",
)

// MarkCardPaidCommand represents a successful demo card payment callback for
// an order. Carries the provider's reference for the charge.
type MarkCardPaidCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	actorID     kernel.UUID
	providerRef string

	guard guard.ConstructorGuard
}

// NewMarkCardPaidCommand creates a command to settle an order by card.
func NewMarkCardPaidCommand(orderID, actorID kernel.UUID, providerRef string) (MarkCardPaidCommand, error) {
	cmd := MarkCardPaidCommand{
		providerRef: providerRef,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
	); err != nil {
		return MarkCardPaidCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkCardPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkCardPaidCommandIsNotConstructed)
}

// OrderID returns the settled order's identifier.
func (c MarkCardPaidCommand) OrderID() kernel.UUID { return c.orderID }

// ActorID returns the acting principal's identifier.
func (c MarkCardPaidCommand) ActorID() kernel.UUID { return c.actorID }

// ProviderRef returns the provider's charge reference.
func (c MarkCardPaidCommand) ProviderRef() string { return c.providerRef }

func (c *MarkCardPaidCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *MarkCardPaidCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}
