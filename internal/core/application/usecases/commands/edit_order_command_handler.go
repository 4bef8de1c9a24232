package commands

import (
	"context"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/pkg/clock"
	"laundry/internal/pkg/errs"
)

// EditOrderCommandHandler handles edits to Pending orders. The replacement
// selections are re-priced against the current catalog; the stored total is
// never patched directly.
type EditOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      clock.Clock
}

// NewEditOrderCommandHandler creates a handler for order edits.
func NewEditOrderCommandHandler(uowFactory OrderUoWFactory, clk clock.Clock) EditOrderCommandHandler {
	return EditOrderCommandHandler{uowFactory: uowFactory, clock: clk}
}

// Handle processes the edit command. Customers may edit only their own
// orders; the aggregate itself rejects edits once the order leaves Pending.
func (h *EditOrderCommandHandler) Handle(ctx context.Context, cmd EditOrderCommand) error {
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

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if act.Role() == actor.RoleCustomer && !act.ID().IsEqual(ord.CustomerID()) {
		return errs.NewAccessForbiddenError("order " + ord.ID().String())
	}

	priced, err := priceSelections(ctx, uow, cmd.Selections(), cmd.Express(), cmd.Premium())
	if err != nil {
		return err
	}

	before := ord.Total().String()
	if err = ord.Edit(
		priced.Items, priced.Total, cmd.PickupDate(), cmd.DeliveryDate(), cmd.Notes(),
	); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	if err = appendAudit(
		ctx, uow.AuditLogRepository(), act,
		"EDIT_ORDER", "ORDER", ord.ID().String(),
		before, ord.Total().String(), h.clock.Now(),
	); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
