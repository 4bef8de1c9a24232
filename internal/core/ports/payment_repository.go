package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment records.
// There is at most one payment per order; the settlement flows look it up by
// order id and upsert.
type PaymentRepository interface {
	// Add persists a new payment record.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update persists changes to an existing payment record.
	Update(ctx context.Context, aggregate *payment.Payment) error

	// Get retrieves a payment by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	// GetByOrderID retrieves the payment record for an order.
	// Returns an object-not-found error when the order has no payment yet.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error)
}
