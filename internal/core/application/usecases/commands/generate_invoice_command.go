package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrGenerateInvoiceCommandIsNotConstructed = errors.New(
	"GenerateInvoiceCommand must be created via NewGenerateInvoiceCommand constructor",
)

// GenerateInvoiceCommand represents a finance request to issue the invoice
// for an order. At most one invoice may exist per order.
type GenerateInvoiceCommand struct { //nolint:recvcheck //using for validation
	invoiceID kernel.UUID
	orderID   kernel.UUID
	actorID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewGenerateInvoiceCommand creates a command to issue an invoice.
func NewGenerateInvoiceCommand(invoiceID, orderID, actorID kernel.UUID) (GenerateInvoiceCommand, error) {
	cmd := GenerateInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setInvoiceID(invoiceID),
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
	); err != nil {
		return GenerateInvoiceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrGenerateInvoiceCommandIsNotConstructed)
}

// InvoiceID returns the identifier the new invoice will carry.
func (c GenerateInvoiceCommand) InvoiceID() kernel.UUID { return c.invoiceID }

// OrderID returns the billed order's identifier.
func (c GenerateInvoiceCommand) OrderID() kernel.UUID { return c.orderID }

// ActorID returns the acting principal's identifier.
func (c GenerateInvoiceCommand) ActorID() kernel.UUID { return c.actorID }

func (c *GenerateInvoiceCommand) setInvoiceID(invoiceID kernel.UUID) error {
	if err := invoiceID.Validate(); err != nil {
		return err
	}
	c.invoiceID = invoiceID
	return nil
}

func (c *GenerateInvoiceCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *GenerateInvoiceCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}
