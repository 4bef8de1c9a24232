// Package order contains the order aggregate: priced line items, the
// fulfillment status machine, and the payment fields the ledger settles.
package order

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/payment"
	"laundry/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder constructors.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// maxCancelReasonLen bounds the free-form cancellation reason appended to the
// order notes. Longer reasons are truncated, not rejected.
const maxCancelReasonLen = 255

// Order is a customer's request for one or more laundry services, priced as
// a whole. It is the aggregate root for the fulfillment workflow.
//
// Invariants:
//   - The total is always computed server-side from the line items plus
//     add-on flags; it is never accepted verbatim from a client.
//   - Status transitions follow the workflow table in Status.
//   - Edits are permitted only while the order is Pending.
//   - Customers may cancel only their own Pending orders.
type Order struct {
	id            kernel.UUID
	customerID    kernel.UUID
	items         []Item
	total         kernel.Money
	status        Status
	paymentStatus payment.Status
	paymentMethod string
	paidAt        *time.Time
	pickupDate    time.Time
	deliveryDate  time.Time
	notes         string
	createdAt     time.Time

	isConstructed bool
}

// NewOrder creates a Pending order from priced items. The total must come
// from the pricing rules; NewOrder does not re-derive it but refuses an order
// whose items are missing.
func NewOrder(
	id kernel.UUID, customerID kernel.UUID, items []Item, total kernel.Money,
	pickupDate, deliveryDate time.Time, notes string, now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		paymentStatus: payment.Pending,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setDates(pickupDate, deliveryDate),
	); err != nil {
		return nil, err
	}

	o.total = total
	o.notes = notes
	return o, nil
}

// RestoreOrder rehydrates an order from persistence, including its current
// workflow and payment state.
func RestoreOrder(
	id kernel.UUID, customerID kernel.UUID, items []Item, total kernel.Money,
	status Status, paymentStatus payment.Status, paymentMethod string, paidAt *time.Time,
	pickupDate, deliveryDate time.Time, notes string, createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, customerID, items, total, pickupDate, deliveryDate, notes, createdAt)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := paymentStatus.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.paymentStatus = paymentStatus
	o.paymentMethod = paymentMethod
	o.paidAt = paidAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID { return o.customerID }

// Items returns the priced line items in order.
func (o *Order) Items() []Item { return o.items }

// Total returns the server-computed order total.
func (o *Order) Total() kernel.Money { return o.total }

// Status returns the current fulfillment status.
func (o *Order) Status() Status { return o.status }

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() payment.Status { return o.paymentStatus }

// PaymentMethod returns the recorded payment method, if any.
func (o *Order) PaymentMethod() string { return o.paymentMethod }

// PaidAt returns when the order was paid, or nil.
func (o *Order) PaidAt() *time.Time { return o.paidAt }

// PickupDate returns the scheduled pickup date.
func (o *Order) PickupDate() time.Time { return o.pickupDate }

// DeliveryDate returns the scheduled delivery date.
func (o *Order) DeliveryDate() time.Time { return o.deliveryDate }

// Notes returns the free-text notes.
func (o *Order) Notes() string { return o.notes }

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// TransitionTo moves the order through the fulfillment workflow.
// A self-transition is a permitted no-op; anything else outside the table
// fails with an invalid-transition error.
func (o *Order) TransitionTo(next Status) error {
	applied, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}
	o.status = applied
	return nil
}

// CancelByCustomer cancels the order on behalf of its owner. Only the owning
// customer may cancel, and only while the order is Pending.
func (o *Order) CancelByCustomer(customerID kernel.UUID, reason string) error {
	if !o.customerID.IsEqual(customerID) {
		return errs.NewAccessForbiddenError("order " + o.id.String())
	}
	if o.status != Pending {
		return errs.NewInvalidStateError("customer cancellation", o.status.String())
	}

	o.status = Cancelled
	o.appendCancellationReason(reason)
	return nil
}

// Cancel cancels the order on behalf of an administrative actor. Ownership is
// not checked but the workflow table still governs the transition.
func (o *Order) Cancel(reason string) error {
	applied, err := o.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}
	o.status = applied
	o.appendCancellationReason(reason)
	return nil
}

// Edit replaces the order's items, total, dates, and notes. Permitted only
// while the order is Pending; the new total must again come from the pricing
// rules applied to the new items.
func (o *Order) Edit(
	items []Item, total kernel.Money, pickupDate, deliveryDate time.Time, notes string,
) error {
	if o.status != Pending {
		return errs.NewInvalidStateError("edit", o.status.String())
	}

	if err := o.setItems(items); err != nil {
		return err
	}
	if err := o.setDates(pickupDate, deliveryDate); err != nil {
		return err
	}

	o.total = total
	o.notes = notes
	return nil
}

// SetPaymentStatus implements payment.PayableOrder.
func (o *Order) SetPaymentStatus(status payment.Status) {
	o.paymentStatus = status
}

// SetPaymentMethod implements payment.PayableOrder.
func (o *Order) SetPaymentMethod(method string) {
	o.paymentMethod = method
}

// SetPaidAt implements payment.PayableOrder.
func (o *Order) SetPaidAt(paidAt time.Time) {
	o.paidAt = &paidAt
}

func (o *Order) appendCancellationReason(reason string) {
	if len(reason) > maxCancelReasonLen {
		reason = reason[:maxCancelReasonLen]
	}
	note := "Cancelled: " + reason
	if o.notes != "" {
		note = o.notes + " | " + note
	}
	o.notes = note
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	o.items = items
	return nil
}

func (o *Order) setDates(pickupDate, deliveryDate time.Time) error {
	if pickupDate.IsZero() {
		return errs.NewValueIsRequiredError("pickupDate")
	}
	if deliveryDate.IsZero() {
		return errs.NewValueIsRequiredError("deliveryDate")
	}
	if !deliveryDate.After(pickupDate) {
		return errs.NewValueIsInvalidError("deliveryDate must be after pickupDate")
	}

	o.pickupDate = pickupDate
	o.deliveryDate = deliveryDate
	return nil
}

var _ payment.PayableOrder = (*Order)(nil)
