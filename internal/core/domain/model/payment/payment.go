// Package payment contains the payment ledger side of an order: the Payment
// record, its status machine, and the narrow capability surface the ledger
// needs from any order representation.
package payment

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through the NewPayment or RestorePayment constructors.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Providers and methods recorded on payment attempts.
const (
	ProviderCash = "CASH"
	ProviderDemo = "DEMO"

	MethodCashOnDelivery = "COD"
	MethodCard           = "CARD"
)

// PayableOrder is the capability surface the payment ledger needs from an
// order, regardless of its concrete representation: read the server-computed
// total and get/set the payment-related fields. Any order type exposing these
// can be settled by the ledger; resolution happens at compile time, never by
// runtime name lookup.
type PayableOrder interface {
	Total() kernel.Money
	PaymentStatus() Status
	SetPaymentStatus(status Status)
	SetPaymentMethod(method string)
	PaidAt() *time.Time
	SetPaidAt(paidAt time.Time)
}

// Payment records one order's settlement state. There is at most one payment
// per order; the cash-on-delivery and demo-card flows upsert it by order id.
//
// Invariant: once status reaches Paid, no further status mutation is
// permitted except the idempotent re-application of Paid.
type Payment struct {
	id          kernel.UUID
	orderID     kernel.UUID
	amount      kernel.Money
	method      string
	provider    string
	providerRef string
	status      Status
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewPayment creates a payment record for an order in the given status.
func NewPayment(
	id kernel.UUID, orderID kernel.UUID, amount kernel.Money,
	method, provider, providerRef string, status Status, now time.Time,
) (*Payment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Payment{
		id:            id,
		orderID:       orderID,
		amount:        amount,
		method:        method,
		provider:      provider,
		providerRef:   providerRef,
		status:        status,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestorePayment rehydrates a payment from persistence.
func RestorePayment(
	id kernel.UUID, orderID kernel.UUID, amount kernel.Money,
	method, provider, providerRef string, status Status,
	createdAt, updatedAt time.Time,
) (*Payment, error) {
	p, err := NewPayment(id, orderID, amount, method, provider, providerRef, status, createdAt)
	if err != nil {
		return nil, err
	}
	p.updatedAt = updatedAt
	return p, nil
}

// Validate ensures the payment was built through a constructor.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment identifier.
func (p *Payment) ID() kernel.UUID { return p.id }

// OrderID returns the settled order's identifier.
func (p *Payment) OrderID() kernel.UUID { return p.orderID }

// Amount returns the recorded amount.
func (p *Payment) Amount() kernel.Money { return p.amount }

// Method returns the payment method, e.g. COD or CARD.
func (p *Payment) Method() string { return p.method }

// Provider returns the processing provider, e.g. CASH or DEMO.
func (p *Payment) Provider() string { return p.provider }

// ProviderRef returns the provider's reference for the attempt, if any.
func (p *Payment) ProviderRef() string { return p.providerRef }

// Status returns the current payment status.
func (p *Payment) Status() Status { return p.status }

// CreatedAt returns when the record was first created.
func (p *Payment) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt returns when the record was last touched.
func (p *Payment) UpdatedAt() time.Time { return p.updatedAt }

// ChangeStatus applies a status transition. Reapplying the current status is
// an idempotent no-op that leaves the record untouched, including updatedAt.
func (p *Payment) ChangeStatus(next Status, now time.Time) error {
	applied, err := p.status.TransitionTo(next)
	if err != nil {
		return err
	}
	if applied == p.status {
		return nil
	}
	p.status = applied
	p.updatedAt = now
	return nil
}

// RecordAttempt refreshes the mutable attempt fields on an upsert: amount,
// method, provider, provider reference, and status. createdAt is preserved;
// updatedAt is always refreshed. The Paid-terminal rule still applies.
func (p *Payment) RecordAttempt(
	amount kernel.Money, method, provider, providerRef string, status Status, now time.Time,
) error {
	if _, err := p.status.TransitionTo(status); err != nil {
		return err
	}
	p.amount = amount
	p.method = method
	p.provider = provider
	p.providerRef = providerRef
	p.status = status
	p.updatedAt = now
	return nil
}
