// Package services contains stateless domain services that coordinate logic
// across aggregates without belonging to any single one of them.
package services

import (
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Base rates in currency units. The wash-and-iron line total is the per-kg
// wash rate times the weight plus the per-item addition times the item count;
// the per-kg rate is what gets stored as the line's unit price.
var (
	// WashOnlyRatePerKg prices machine washing per kilogram.
	WashOnlyRatePerKg = kernel.NewMoneyFromInt(250)

	// DryCleaningRatePerKg prices dry cleaning per kilogram.
	DryCleaningRatePerKg = kernel.NewMoneyFromInt(400)

	// WashAndIronRatePerItem is the per-item pressing addition on top of the
	// per-kg wash rate for the combined service.
	WashAndIronRatePerItem = kernel.NewMoneyFromInt(25)

	// PremiumCareRatePerItem is the premium-care add-on per item.
	PremiumCareRatePerItem = kernel.NewMoneyFromInt(400)

	// ExpressMultiplier is the express add-on markup (+25%).
	ExpressMultiplier = decimal.RequireFromString("1.25")
)

// PricedOrder is the result of pricing one order: the line items with their
// snapshot unit prices and the add-on-adjusted total.
type PricedOrder struct {
	Total kernel.Money
	Items []order.Item
}

// PricingEngine deterministically prices a heterogeneous order from its
// requested services and add-on flags. It is a pure computation over the
// inputs and a pressing price table snapshot: no side effects, no storage,
// and identical results for identical inputs.
//
// Totals are never accepted from clients; every order total in the system
// comes out of this engine. Each computed line amount and the running
// subtotal are rounded to two decimals half-up as they are produced.
type PricingEngine struct {
	table pricing.PriceTable
}

// NewPricingEngine creates an engine over a price table snapshot.
func NewPricingEngine(table pricing.PriceTable) PricingEngine {
	return PricingEngine{table: table}
}

// Price computes the order total and line items for the requested services.
//
// Add-ons apply to the subtotal of priced items in fixed order: express
// first (×1.25), then premium care (+400 per item across all item-counted
// services, including pressing category counts). Applying the engine twice
// would compound the express markup, so it must be invoked exactly once per
// order.
func (e PricingEngine) Price(selections []order.Selection, express, premium bool) (PricedOrder, error) {
	if len(selections) == 0 {
		return PricedOrder{}, errs.NewValueIsRequiredError("items")
	}

	subtotal := kernel.Money{}
	items := make([]order.Item, 0, len(selections))
	totalItemCount := 0

	for _, selection := range selections {
		switch sel := selection.(type) {
		case order.WashOnlySelection:
			item, err := e.priceWeighted(order.ServiceWashOnly, WashOnlyRatePerKg, sel.WeightKg)
			if err != nil {
				return PricedOrder{}, err
			}
			items = append(items, item)
			subtotal = subtotal.Add(item.LineTotal())

		case order.DryCleaningSelection:
			item, err := e.priceWeighted(order.ServiceDryCleaning, DryCleaningRatePerKg, sel.WeightKg)
			if err != nil {
				return PricedOrder{}, err
			}
			items = append(items, item)
			subtotal = subtotal.Add(item.LineTotal())

		case order.PressingSelection:
			pressed, count, err := e.pricePressing(sel)
			if err != nil {
				return PricedOrder{}, err
			}
			for _, item := range pressed {
				items = append(items, item)
				subtotal = subtotal.Add(item.LineTotal())
			}
			totalItemCount += count

		case order.WashAndIronSelection:
			item, err := e.priceWashAndIron(sel)
			if err != nil {
				return PricedOrder{}, err
			}
			items = append(items, item)
			subtotal = subtotal.Add(item.LineTotal())
			totalItemCount += sel.ItemCount

		default:
			return PricedOrder{}, errs.NewValueIsInvalidError("service kind")
		}
	}

	if express {
		subtotal = subtotal.Mul(ExpressMultiplier)
	}

	if premium {
		if totalItemCount <= 0 {
			return PricedOrder{}, errs.NewValueIsInvalidError("premium care requires at least one item")
		}
		subtotal = subtotal.Add(PremiumCareRatePerItem.MulInt(totalItemCount))
	}

	return PricedOrder{Total: subtotal, Items: items}, nil
}

func (e PricingEngine) priceWeighted(kind order.ServiceKind, ratePerKg kernel.Money, weightKg float64) (order.Item, error) {
	if weightKg <= 0 {
		return order.Item{}, errs.NewValueIsInvalidError("weightKg must be greater than 0")
	}

	lineTotal := ratePerKg.MulFloat(weightKg)
	return order.NewItem(kind, order.UnitKg, weightKg, 0, "", ratePerKg, lineTotal)
}

// pricePressing prices one line per category in deterministic order.
// Categories without an active price entry fall back to the table default;
// non-positive counts are skipped. Only an empty category map fails.
func (e PricingEngine) pricePressing(sel order.PressingSelection) ([]order.Item, int, error) {
	if len(sel.Items) == 0 {
		return nil, 0, errs.NewValueIsRequiredError("at least one item category")
	}

	items := make([]order.Item, 0, len(sel.Items))
	totalCount := 0
	for _, category := range pricing.SortCategories(sel.Items) {
		if err := category.Validate(); err != nil {
			return nil, 0, err
		}
		count := sel.Items[category]
		if count <= 0 {
			continue
		}

		unitPrice := e.table.PriceFor(category)
		item, err := order.NewItem(
			order.ServicePressing, order.UnitCategoryItem, 0, count, category,
			unitPrice, unitPrice.MulInt(count),
		)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, item)
		totalCount += count
	}

	return items, totalCount, nil
}

func (e PricingEngine) priceWashAndIron(sel order.WashAndIronSelection) (order.Item, error) {
	if sel.WeightKg <= 0 {
		return order.Item{}, errs.NewValueIsInvalidError("weightKg must be greater than 0")
	}
	if sel.ItemCount <= 0 {
		return order.Item{}, errs.NewValueIsInvalidError("itemCount must be greater than 0")
	}

	washTotal := WashOnlyRatePerKg.MulFloat(sel.WeightKg)
	ironTotal := WashAndIronRatePerItem.MulInt(sel.ItemCount)
	lineTotal := washTotal.Add(ironTotal)

	return order.NewItem(
		order.ServiceWashAndIron, order.UnitKg, sel.WeightKg, sel.ItemCount, "",
		WashOnlyRatePerKg, lineTotal,
	)
}
