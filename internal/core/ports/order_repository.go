// Package ports defines the persistence and messaging contracts between the
// core and its infrastructure adapters, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, replacing its
	// line items.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an object-not-found error when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
