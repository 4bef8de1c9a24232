package ports

import (
	"context"

	"laundry/internal/core/domain/model/invoice"
	"laundry/internal/core/domain/model/kernel"
)

// InvoiceRepository defines the persistence contract for invoices.
type InvoiceRepository interface {
	// Add persists a new invoice. Each order may carry at most one invoice;
	// adding a second one for the same order fails with an
	// object-already-exists error.
	Add(ctx context.Context, aggregate *invoice.Invoice) error

	// GetByOrderID retrieves the invoice issued for an order.
	// Returns an object-not-found error when no invoice exists.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*invoice.Invoice, error)
}
