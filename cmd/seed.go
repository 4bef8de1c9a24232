package cmd

import (
	"context"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/core/ports"
)

// defaultCatalog is the initial pressing price catalog. Categories not listed
// here fall back to the default pressing price at order time.
func defaultCatalog() map[pricing.PressingCategory]int64 {
	return map[pricing.PressingCategory]int64{
		pricing.Shirt:   50,
		pricing.Trouser: 60,
		pricing.Jacket:  100,
		pricing.Saree:   150,
		pricing.Suit:    200,
		pricing.Dress:   80,
		pricing.Blouse:  50,
		pricing.Skirt:   60,
		pricing.Coat:    120,
		pricing.Curtain: 150,
	}
}

// SeedPriceCatalog inserts the default catalog when the table is empty.
// A non-empty catalog is left untouched so administrator changes survive
// restarts.
func SeedPriceCatalog(ctx context.Context, factory ports.UnitOfWorkFactory) error {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	existing, err := uow.PriceListRepository().GetAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, category := range pricing.AllPressingCategories() {
		units, ok := defaultCatalog()[category]
		if !ok {
			continue
		}

		entry, entryErr := pricing.NewCategoryPrice(
			kernel.NewUUID(), category, kernel.NewMoneyFromInt(units),
		)
		if entryErr != nil {
			return fmt.Errorf("seed %s: %w", category, entryErr)
		}
		if addErr := uow.PriceListRepository().Add(ctx, entry); addErr != nil {
			return fmt.Errorf("seed %s: %w", category, addErr)
		}
	}

	return uow.Commit(ctx)
}
