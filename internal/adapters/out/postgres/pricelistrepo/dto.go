// Package pricelistrepo persists the pressing price catalog.
package pricelistrepo

import (
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/pricing"

	"github.com/google/uuid"
)

// CategoryPriceDTO is the database row for one catalog entry.
type CategoryPriceDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Category     string    `gorm:"type:varchar(32);uniqueIndex"`
	PricePerItem string    `gorm:"type:numeric(12,2)"`
	Active       bool
}

// TableName overrides GORM's default naming to use "category_prices".
func (CategoryPriceDTO) TableName() string {
	return "category_prices"
}

func fromDomain(entry *pricing.CategoryPrice) CategoryPriceDTO {
	return CategoryPriceDTO{
		ID:           entry.ID().Bytes(),
		Category:     string(entry.Category()),
		PricePerItem: entry.PricePerItem().String(),
		Active:       entry.Active(),
	}
}

func toDomain(dto CategoryPriceDTO) (*pricing.CategoryPrice, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoneyFromString(dto.PricePerItem)
	if err != nil {
		return nil, err
	}

	return pricing.RestoreCategoryPrice(id, pricing.PressingCategory(dto.Category), price, dto.Active)
}
