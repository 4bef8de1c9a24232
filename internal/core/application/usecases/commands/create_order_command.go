package commands

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new laundry order.
// Carries the requested service selections and add-on flags; the total is
// always computed server-side, never taken from the caller.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerID   kernel.UUID
	actorID      kernel.UUID
	selections   []order.Selection
	express      bool
	premium      bool
	pickupDate   time.Time
	deliveryDate time.Time
	notes        string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order. Validates the
// identifiers, that at least one service is selected, and that the dates are
// present and ordered.
func NewCreateOrderCommand(
	orderID, customerID, actorID kernel.UUID,
	selections []order.Selection, express, premium bool,
	pickupDate, deliveryDate time.Time, notes string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		express:      express,
		premium:      premium,
		pickupDate:   pickupDate,
		deliveryDate: deliveryDate,
		notes:        notes,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setActorID(actorID),
		cmd.setSelections(selections),
		cmd.checkDates(pickupDate, deliveryDate),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will carry.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// CustomerID returns the owning customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID { return c.customerID }

// ActorID returns the acting principal's identifier.
func (c CreateOrderCommand) ActorID() kernel.UUID { return c.actorID }

// Selections returns the requested services.
func (c CreateOrderCommand) Selections() []order.Selection { return c.selections }

// Express reports whether the express add-on was requested.
func (c CreateOrderCommand) Express() bool { return c.express }

// Premium reports whether the premium care add-on was requested.
func (c CreateOrderCommand) Premium() bool { return c.premium }

// PickupDate returns the requested pickup date.
func (c CreateOrderCommand) PickupDate() time.Time { return c.pickupDate }

// DeliveryDate returns the requested delivery date.
func (c CreateOrderCommand) DeliveryDate() time.Time { return c.deliveryDate }

// Notes returns the free-text notes.
func (c CreateOrderCommand) Notes() string { return c.notes }

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *CreateOrderCommand) setSelections(selections []order.Selection) error {
	if len(selections) == 0 {
		return errs.NewValueIsRequiredError("selections")
	}
	c.selections = selections
	return nil
}

func (c *CreateOrderCommand) checkDates(pickupDate, deliveryDate time.Time) error {
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
