package pricing

import (
	"errors"
	"sort"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// ErrCategoryPriceIsNotConstructed is returned when a CategoryPrice instance
// was not created through NewCategoryPrice or RestoreCategoryPrice.
var ErrCategoryPriceIsNotConstructed = errors.New("CategoryPrice must be created via NewCategoryPrice constructor")

// CategoryPrice maps one pressing category to a per-item price and an active
// flag. Entries are mutated only by administrators; the pricing rules read
// them through a PriceTable snapshot taken at order-creation time, so later
// price changes never alter historical orders.
type CategoryPrice struct {
	id           kernel.UUID
	category     PressingCategory
	pricePerItem kernel.Money
	active       bool

	isConstructed bool
}

// NewCategoryPrice creates an active price entry for a category.
func NewCategoryPrice(id kernel.UUID, category PressingCategory, pricePerItem kernel.Money) (*CategoryPrice, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := category.Validate(); err != nil {
		return nil, err
	}
	if pricePerItem.IsNegative() {
		return nil, errs.NewValueIsInvalidError("pricePerItem")
	}

	return &CategoryPrice{
		id:            id,
		category:      category,
		pricePerItem:  pricePerItem,
		active:        true,
		isConstructed: true,
	}, nil
}

// RestoreCategoryPrice rehydrates an entry from persistence.
func RestoreCategoryPrice(
	id kernel.UUID, category PressingCategory, pricePerItem kernel.Money, active bool,
) (*CategoryPrice, error) {
	entry, err := NewCategoryPrice(id, category, pricePerItem)
	if err != nil {
		return nil, err
	}
	entry.active = active
	return entry, nil
}

// Validate ensures the entry was built through a constructor.
func (p *CategoryPrice) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrCategoryPriceIsNotConstructed
	}
	return nil
}

// ID returns the entry identifier.
func (p *CategoryPrice) ID() kernel.UUID { return p.id }

// Category returns the pressing category this entry prices.
func (p *CategoryPrice) Category() PressingCategory { return p.category }

// PricePerItem returns the per-item price.
func (p *CategoryPrice) PricePerItem() kernel.Money { return p.pricePerItem }

// Active reports whether the entry participates in pricing.
func (p *CategoryPrice) Active() bool { return p.active }

// Reprice updates the per-item price and active flag.
func (p *CategoryPrice) Reprice(pricePerItem kernel.Money, active bool) error {
	if pricePerItem.IsNegative() {
		return errs.NewValueIsInvalidError("pricePerItem")
	}
	p.pricePerItem = pricePerItem
	p.active = active
	return nil
}

// DefaultPressingPrice is the per-item fallback applied when a category has
// no active price entry. A missing or inactive category never fails an order.
var DefaultPressingPrice = kernel.NewMoneyFromInt(50)

// PriceTable is an immutable snapshot of the active category prices plus the
// fallback default. The pricing rules are a pure function over a PriceTable,
// so two calls against the same snapshot always price identically.
type PriceTable struct {
	prices       map[PressingCategory]kernel.Money
	defaultPrice kernel.Money
}

// NewPriceTable builds a snapshot from the given entries. Inactive entries
// are skipped; lookups for them fall back to defaultPrice.
func NewPriceTable(entries []*CategoryPrice, defaultPrice kernel.Money) PriceTable {
	prices := make(map[PressingCategory]kernel.Money, len(entries))
	for _, entry := range entries {
		if entry != nil && entry.Active() {
			prices[entry.Category()] = entry.PricePerItem()
		}
	}
	return PriceTable{prices: prices, defaultPrice: defaultPrice}
}

// PriceFor returns the per-item price for a category, falling back to the
// table default when the category has no active entry.
func (t PriceTable) PriceFor(category PressingCategory) kernel.Money {
	if price, ok := t.prices[category]; ok {
		return price
	}
	return t.defaultPrice
}

// SortCategories returns the given categories in deterministic order.
// Pricing iterates category maps through this so line items and rounding are
// reproducible run to run.
func SortCategories(items map[PressingCategory]int) []PressingCategory {
	categories := make([]PressingCategory, 0, len(items))
	for category := range items {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })
	return categories
}
