package ports

import (
	"context"

	"laundry/internal/core/domain/model/pricing"
)

// PriceListRepository defines the persistence contract for the pressing price
// catalog maintained by administrators.
type PriceListRepository interface {
	// Add persists a new category price entry.
	Add(ctx context.Context, entry *pricing.CategoryPrice) error

	// Update persists changes to an existing entry.
	Update(ctx context.Context, entry *pricing.CategoryPrice) error

	// GetByCategory retrieves the entry for a category.
	// Returns an object-not-found error when the category has no entry.
	GetByCategory(ctx context.Context, category pricing.PressingCategory) (*pricing.CategoryPrice, error)

	// GetAll retrieves every entry, active and inactive.
	GetAll(ctx context.Context) ([]*pricing.CategoryPrice, error)
}
