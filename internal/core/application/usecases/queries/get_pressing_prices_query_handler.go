package queries

import (
	"context"

	"laundry/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetPressingPricesQueryHandler retrieves the pressing price catalog.
type GetPressingPricesQueryHandler struct {
	db *gorm.DB
}

// NewGetPressingPricesQueryHandler creates a handler for the catalog view.
func NewGetPressingPricesQueryHandler(db *gorm.DB) GetPressingPricesQueryHandler {
	return GetPressingPricesQueryHandler{db: db}
}

// Handle executes the query, entries sorted by category.
func (h GetPressingPricesQueryHandler) Handle(
	ctx context.Context,
	query GetPressingPricesQuery,
) ([]PressingPriceResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			category,
			price_per_item,
			active
		FROM category_prices
		ORDER BY category
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prices := make([]PressingPriceResponse, 0)
	for rows.Next() {
		var resp PressingPriceResponse
		var price string

		if err = rows.Scan(&resp.Category, &price, &resp.Active); err != nil {
			return nil, err
		}

		perItem, priceErr := kernel.NewMoneyFromString(price)
		if priceErr != nil {
			return nil, priceErr
		}
		resp.PricePerItem = perItem

		prices = append(prices, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return prices, nil
}
