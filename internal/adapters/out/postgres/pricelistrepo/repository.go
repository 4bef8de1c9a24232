package pricelistrepo

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPriceListRepository implements ports.PriceListRepository using GORM.
type GormPriceListRepository struct {
	db *gorm.DB
}

// NewGormPriceListRepository creates a new GORM price list repository.
func NewGormPriceListRepository(db *gorm.DB) *GormPriceListRepository {
	return &GormPriceListRepository{db: db}
}

// Add saves a new catalog entry.
func (r *GormPriceListRepository) Add(ctx context.Context, entry *pricing.CategoryPrice) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsError("category price", string(entry.Category()))
		}
		return err
	}
	return nil
}

// Update saves an existing catalog entry. All columns are written so an
// entry can be deactivated.
func (r *GormPriceListRepository) Update(ctx context.Context, entry *pricing.CategoryPrice) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	result := r.db.WithContext(ctx).
		Model(&CategoryPriceDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("category price", string(entry.Category()))
	}
	return nil
}

// GetByCategory retrieves the entry for a category.
func (r *GormPriceListRepository) GetByCategory(
	ctx context.Context,
	category pricing.PressingCategory,
) (*pricing.CategoryPrice, error) {
	if err := category.Validate(); err != nil {
		return nil, err
	}

	var dto CategoryPriceDTO
	if err := r.db.WithContext(ctx).First(&dto, "category = ?", string(category)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("category price", string(category))
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every entry, active and inactive, ordered by category.
func (r *GormPriceListRepository) GetAll(ctx context.Context) ([]*pricing.CategoryPrice, error) {
	var dtos []CategoryPriceDTO
	if err := r.db.WithContext(ctx).Order("category").Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]*pricing.CategoryPrice, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
