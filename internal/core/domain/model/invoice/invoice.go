// Package invoice contains the billing record issued once per order.
package invoice

import (
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"
)

// ErrInvoiceIsNotConstructed is returned when an Invoice instance was not
// created through the NewInvoice constructor.
var ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice constructor")

// Invoice bills a customer for one order. At most one invoice exists per
// order; the amount is copied from the order's server-computed total at
// issue time.
type Invoice struct {
	id        kernel.UUID
	orderID   kernel.UUID
	invoiceNo string
	amount    kernel.Money
	issuedAt  time.Time
	createdAt time.Time

	isConstructed bool
}

// NewInvoice issues an invoice for an order. The invoice number is derived
// from the issue instant.
func NewInvoice(id kernel.UUID, orderID kernel.UUID, amount kernel.Money, now time.Time) (*Invoice, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	return &Invoice{
		id:            id,
		orderID:       orderID,
		invoiceNo:     fmt.Sprintf("INV-%d", now.UnixMilli()),
		amount:        amount,
		issuedAt:      now,
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreInvoice rehydrates an invoice from persistence.
func RestoreInvoice(
	id kernel.UUID, orderID kernel.UUID, invoiceNo string, amount kernel.Money,
	issuedAt, createdAt time.Time,
) (*Invoice, error) {
	inv, err := NewInvoice(id, orderID, amount, issuedAt)
	if err != nil {
		return nil, err
	}
	inv.invoiceNo = invoiceNo
	inv.createdAt = createdAt
	return inv, nil
}

// Validate ensures the invoice was built through a constructor.
func (i *Invoice) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInvoiceIsNotConstructed
	}
	return nil
}

// ID returns the invoice identifier.
func (i *Invoice) ID() kernel.UUID { return i.id }

// OrderID returns the billed order's identifier.
func (i *Invoice) OrderID() kernel.UUID { return i.orderID }

// InvoiceNo returns the unique invoice number.
func (i *Invoice) InvoiceNo() string { return i.invoiceNo }

// Amount returns the billed amount.
func (i *Invoice) Amount() kernel.Money { return i.amount }

// IssuedAt returns the issue timestamp.
func (i *Invoice) IssuedAt() time.Time { return i.issuedAt }

// CreatedAt returns the record creation timestamp.
func (i *Invoice) CreatedAt() time.Time { return i.createdAt }
