// Package pricing holds the pressing price catalog: the closed set of
// garment categories, the per-category price entries administrators maintain,
// and the immutable price table snapshot the pricing rules read from.
package pricing

import "laundry/internal/pkg/errs"

// PressingCategory is a garment-type classification used only for
// pressing-service pricing. The set is closed; unknown values fail Validate.
type PressingCategory string

const (
	Shirt    PressingCategory = "SHIRT"
	Trouser  PressingCategory = "TROUSER"
	Jacket   PressingCategory = "JACKET"
	Saree    PressingCategory = "SAREE"
	Suit     PressingCategory = "SUIT"
	Dress    PressingCategory = "DRESS"
	Blouse   PressingCategory = "BLOUSE"
	Skirt    PressingCategory = "SKIRT"
	Coat     PressingCategory = "COAT"
	Curtain  PressingCategory = "CURTAIN"
	Bedsheet PressingCategory = "BEDSHEET"
	Other    PressingCategory = "OTHER"
)

// AllPressingCategories lists every valid category in display order.
func AllPressingCategories() []PressingCategory {
	return []PressingCategory{
		Shirt, Trouser, Jacket, Saree, Suit, Dress,
		Blouse, Skirt, Coat, Curtain, Bedsheet, Other,
	}
}

// Validate checks membership in the closed category set.
func (c PressingCategory) Validate() error {
	for _, known := range AllPressingCategories() {
		if c == known {
			return nil
		}
	}
	return errs.NewValueIsInvalidError("pressing category " + string(c))
}

// String returns the wire/storage name of the category.
func (c PressingCategory) String() string {
	return string(c)
}
