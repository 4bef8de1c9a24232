package ports

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/delivery"
	"laundry/internal/core/domain/model/kernel"
)

// DeliveryJobRepository defines the persistence contract for delivery jobs.
type DeliveryJobRepository interface {
	// Add persists a new delivery job.
	Add(ctx context.Context, aggregate *delivery.Job) error

	// Update persists changes to an existing delivery job.
	Update(ctx context.Context, aggregate *delivery.Job) error

	// Get retrieves a delivery job by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Job, error)

	// GetByOrderID retrieves the delivery job for an order.
	// Returns an object-not-found error when the order has no job.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Job, error)

	// GetAllOverdue retrieves jobs still in an active status whose scheduled
	// delivery time is before now and which are not yet flagged late. The
	// lateness sweep runs over this set.
	GetAllOverdue(ctx context.Context, now time.Time) ([]*delivery.Job, error)
}
