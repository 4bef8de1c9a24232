package order

import (
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/pkg/errs"
)

// ServiceKind identifies one of the laundry services an order line can carry.
type ServiceKind int

const (
	// ServiceUnknown catches uninitialized values.
	ServiceUnknown ServiceKind = iota

	// ServiceWashOnly is machine washing billed per kilogram.
	ServiceWashOnly

	// ServiceDryCleaning is dry cleaning billed per kilogram.
	ServiceDryCleaning

	// ServicePressing is iron-only service billed per item by garment category.
	ServicePressing

	// ServiceWashAndIron combines per-kilogram washing with a per-item
	// pressing addition.
	ServiceWashAndIron
)

func serviceKindStrings() map[ServiceKind]string {
	return map[ServiceKind]string{
		ServiceUnknown:     "UNKNOWN",
		ServiceWashOnly:    "WASH_ONLY",
		ServiceDryCleaning: "DRY_CLEANING",
		ServicePressing:    "PRESSING",
		ServiceWashAndIron: "WASH_AND_IRON",
	}
}

// ServiceKindFromString parses a wire/storage service kind name.
func ServiceKindFromString(s string) (ServiceKind, error) {
	for kind, name := range serviceKindStrings() {
		if name == s && kind != ServiceUnknown {
			return kind, nil
		}
	}
	return ServiceUnknown, errs.NewValueIsInvalidError("service kind " + s)
}

// String returns the storage/display name of the kind.
func (k ServiceKind) String() string {
	if name, ok := serviceKindStrings()[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// Validate checks that the kind is one of the defined services.
func (k ServiceKind) Validate() error {
	if k < ServiceWashOnly || k > ServiceWashAndIron {
		return errs.NewValueIsInvalidError("service kind")
	}
	return nil
}

// Unit is the billing unit of an order line.
type Unit int

const (
	// UnitUnknown catches uninitialized values.
	UnitUnknown Unit = iota

	// UnitKg bills per kilogram.
	UnitKg

	// UnitItem bills per item.
	UnitItem

	// UnitCategoryItem bills per item at a category-specific price.
	UnitCategoryItem
)

func unitStrings() map[Unit]string {
	return map[Unit]string{
		UnitUnknown:      "UNKNOWN",
		UnitKg:           "KG",
		UnitItem:         "ITEM",
		UnitCategoryItem: "CATEGORY_ITEM",
	}
}

// UnitFromString parses a wire/storage unit name.
func UnitFromString(s string) (Unit, error) {
	for unit, name := range unitStrings() {
		if name == s && unit != UnitUnknown {
			return unit, nil
		}
	}
	return UnitUnknown, errs.NewValueIsInvalidError("unit " + s)
}

// String returns the storage/display name of the unit.
func (u Unit) String() string {
	if name, ok := unitStrings()[u]; ok {
		return name
	}
	return "UNKNOWN"
}

// Selection is a sealed sum type describing one requested service. Each
// variant carries only the fields its pricing rule needs, so pricing can
// switch exhaustively over the variants instead of branching on an enum with
// optional fields.
type Selection interface {
	Kind() ServiceKind
	isSelection()
}

// WashOnlySelection requests machine washing of weightKg kilograms.
type WashOnlySelection struct {
	WeightKg float64
}

// Kind implements Selection.
func (WashOnlySelection) Kind() ServiceKind { return ServiceWashOnly }
func (WashOnlySelection) isSelection()      {}

// DryCleaningSelection requests dry cleaning of weightKg kilograms.
type DryCleaningSelection struct {
	WeightKg float64
}

// Kind implements Selection.
func (DryCleaningSelection) Kind() ServiceKind { return ServiceDryCleaning }
func (DryCleaningSelection) isSelection()      {}

// PressingSelection requests iron-only service for a count of items per
// garment category.
type PressingSelection struct {
	Items map[pricing.PressingCategory]int
}

// Kind implements Selection.
func (PressingSelection) Kind() ServiceKind { return ServicePressing }
func (PressingSelection) isSelection()      {}

// WashAndIronSelection requests washing of weightKg kilograms plus pressing
// of itemCount items.
type WashAndIronSelection struct {
	WeightKg  float64
	ItemCount int
}

// Kind implements Selection.
func (WashAndIronSelection) Kind() ServiceKind { return ServiceWashAndIron }
func (WashAndIronSelection) isSelection()      {}

// Item is one priced line within an order. The unit price is a snapshot taken
// at pricing time and is immutable thereafter: later catalog changes never
// alter historical orders. Pressing selections produce one Item per category
// so each line carries its own snapshot price.
type Item struct {
	serviceKind ServiceKind
	unit        Unit
	weightKg    float64
	itemCount   int
	category    pricing.PressingCategory
	unitPrice   kernel.Money
	lineTotal   kernel.Money
}

// NewItem creates a priced line. The pricing rules are the only producer of
// items for new orders; repositories use it for rehydration as well.
func NewItem(
	kind ServiceKind, unit Unit, weightKg float64, itemCount int,
	category pricing.PressingCategory, unitPrice, lineTotal kernel.Money,
) (Item, error) {
	if err := kind.Validate(); err != nil {
		return Item{}, err
	}
	if unit == UnitUnknown {
		return Item{}, errs.NewValueIsInvalidError("unit")
	}

	return Item{
		serviceKind: kind,
		unit:        unit,
		weightKg:    weightKg,
		itemCount:   itemCount,
		category:    category,
		unitPrice:   unitPrice,
		lineTotal:   lineTotal,
	}, nil
}

// ServiceKind returns the service this line bills.
func (i Item) ServiceKind() ServiceKind { return i.serviceKind }

// Unit returns the billing unit.
func (i Item) Unit() Unit { return i.unit }

// WeightKg returns the weight for kilogram-billed lines, zero otherwise.
func (i Item) WeightKg() float64 { return i.weightKg }

// ItemCount returns the item count for item-billed lines, zero otherwise.
func (i Item) ItemCount() int { return i.itemCount }

// Category returns the pressing category for category-billed lines,
// empty otherwise.
func (i Item) Category() pricing.PressingCategory { return i.category }

// UnitPrice returns the snapshot unit price.
func (i Item) UnitPrice() kernel.Money { return i.unitPrice }

// LineTotal returns the computed line total.
func (i Item) LineTotal() kernel.Money { return i.lineTotal }
