package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrSetPressingPriceCommandIsNotConstructed = errors.New(
	"SetPressingPriceCommand must be created via NewSetPressingPriceCommand constructor",
)

// SetPressingPriceCommand represents an administrator setting the per-item
// pressing price for a garment category, creating the entry when absent.
// Deactivated entries fall back to the default price; orders priced earlier
// keep their snapshots.
type SetPressingPriceCommand struct { //nolint:recvcheck //using for validation
	actorID      kernel.UUID
	category     pricing.PressingCategory
	pricePerItem kernel.Money
	active       bool

	guard guard.ConstructorGuard
}

// NewSetPressingPriceCommand creates a command to set a category price.
func NewSetPressingPriceCommand(
	actorID kernel.UUID, category pricing.PressingCategory,
	pricePerItem kernel.Money, active bool,
) (SetPressingPriceCommand, error) {
	cmd := SetPressingPriceCommand{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setCategory(category),
		cmd.setPricePerItem(pricePerItem),
	); err != nil {
		return SetPressingPriceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetPressingPriceCommand) Validate() error {
	return c.guard.Validate(ErrSetPressingPriceCommandIsNotConstructed)
}

// ActorID returns the acting principal's identifier.
func (c SetPressingPriceCommand) ActorID() kernel.UUID { return c.actorID }

// Category returns the priced garment category.
func (c SetPressingPriceCommand) Category() pricing.PressingCategory { return c.category }

// PricePerItem returns the new per-item price.
func (c SetPressingPriceCommand) PricePerItem() kernel.Money { return c.pricePerItem }

// Active reports whether the entry participates in pricing.
func (c SetPressingPriceCommand) Active() bool { return c.active }

func (c *SetPressingPriceCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *SetPressingPriceCommand) setCategory(category pricing.PressingCategory) error {
	if err := category.Validate(); err != nil {
		return err
	}
	c.category = category
	return nil
}

func (c *SetPressingPriceCommand) setPricePerItem(pricePerItem kernel.Money) error {
	if pricePerItem.IsNegative() {
		return errs.NewValueIsInvalidError("pricePerItem")
	}
	c.pricePerItem = pricePerItem
	return nil
}
