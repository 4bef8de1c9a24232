package commands

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrEditOrderCommandIsNotConstructed = errors.New(
	"EditOrderCommand must be created via NewEditOrderCommand constructor",
)

// EditOrderCommand represents a request to rework a Pending order: new
// selections, add-on flags, dates, and notes. The order is re-priced from
// scratch against the current catalog.
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	actorID      kernel.UUID
	selections   []order.Selection
	express      bool
	premium      bool
	pickupDate   time.Time
	deliveryDate time.Time
	notes        string

	guard guard.ConstructorGuard
}

// NewEditOrderCommand creates a command to edit a Pending order.
func NewEditOrderCommand(
	orderID, actorID kernel.UUID,
	selections []order.Selection, express, premium bool,
	pickupDate, deliveryDate time.Time, notes string,
) (EditOrderCommand, error) {
	cmd := EditOrderCommand{
		express:      express,
		premium:      premium,
		pickupDate:   pickupDate,
		deliveryDate: deliveryDate,
		notes:        notes,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setSelections(selections),
		cmd.checkDates(pickupDate, deliveryDate),
	); err != nil {
		return EditOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

// OrderID returns the edited order's identifier.
func (c EditOrderCommand) OrderID() kernel.UUID { return c.orderID }

// ActorID returns the acting principal's identifier.
func (c EditOrderCommand) ActorID() kernel.UUID { return c.actorID }

// Selections returns the replacement service selections.
func (c EditOrderCommand) Selections() []order.Selection { return c.selections }

// Express reports whether the express add-on was requested.
func (c EditOrderCommand) Express() bool { return c.express }

// Premium reports whether the premium care add-on was requested.
func (c EditOrderCommand) Premium() bool { return c.premium }

// PickupDate returns the new pickup date.
func (c EditOrderCommand) PickupDate() time.Time { return c.pickupDate }

// DeliveryDate returns the new delivery date.
func (c EditOrderCommand) DeliveryDate() time.Time { return c.deliveryDate }

// Notes returns the replacement notes.
func (c EditOrderCommand) Notes() string { return c.notes }

func (c *EditOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *EditOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *EditOrderCommand) setSelections(selections []order.Selection) error {
	if len(selections) == 0 {
		return errs.NewValueIsRequiredError("selections")
	}
	c.selections = selections
	return nil
}

func (c *EditOrderCommand) checkDates(pickupDate, deliveryDate time.Time) error {
	if pickupDate.IsZero() {
		return errs.NewValueIsRequiredError("pickupDate")
	}
	if deliveryDate.IsZero() {
		return errs.NewValueIsRequiredError("deliveryDate")
	}
	if !deliveryDate.After(pickupDate) {
		return errs.NewValueIsInvalidError("deliveryDate must be after pickupDate")
	}
	return nil
}
