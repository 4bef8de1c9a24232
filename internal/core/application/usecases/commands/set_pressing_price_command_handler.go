package commands

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/pkg/clock"
	"laundry/internal/pkg/errs"
)

// SetPressingPriceCommandHandler maintains the pressing price catalog.
// Existing orders keep their snapshot prices.
type SetPressingPriceCommandHandler struct {
	uowFactory PriceListUoWFactory
	clock      clock.Clock
}

// NewSetPressingPriceCommandHandler creates a handler for catalog updates.
func NewSetPressingPriceCommandHandler(uowFactory PriceListUoWFactory, clk clock.Clock) SetPressingPriceCommandHandler {
	return SetPressingPriceCommandHandler{uowFactory: uowFactory, clock: clk}
}

// Handle processes the catalog update command, creating the category entry
// when it does not exist yet.
func (h *SetPressingPriceCommandHandler) Handle(ctx context.Context, cmd SetPressingPriceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	act, err := resolveActor(ctx, uow, cmd.ActorID())
	if err != nil {
		return err
	}
	repo := uow.PriceListRepository()
	before := ""

	entry, err := repo.GetByCategory(ctx, cmd.Category())
	switch {
	case err == nil:
		before = entry.PricePerItem().String()
		if err = entry.Reprice(cmd.PricePerItem(), cmd.Active()); err != nil {
			return err
		}
		if err = repo.Update(ctx, entry); err != nil {
			return err
		}

	case errors.Is(err, errs.ErrObjectNotFound):
		entry, err = pricing.NewCategoryPrice(kernel.NewUUID(), cmd.Category(), cmd.PricePerItem())
		if err != nil {
			return err
		}
		if err = entry.Reprice(cmd.PricePerItem(), cmd.Active()); err != nil {
			return err
		}
		if err = repo.Add(ctx, entry); err != nil {
			return err
		}

	default:
		return err
	}

	if err = appendAudit(
		ctx, uow.AuditLogRepository(), act,
		"SET_PRESSING_PRICE", "CATEGORY_PRICE", cmd.Category().String(),
		before, cmd.PricePerItem().String(), h.clock.Now(),
	); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
