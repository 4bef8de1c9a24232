package commands

import (
	"context"

	"laundry/internal/pkg/clock"
)

// UpdateOrderStatusCommandHandler moves orders through the fulfillment
// workflow on behalf of staff. Role checks belong to the caller; customers
// cancel through the dedicated cancellation flow.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      clock.Clock
}

// NewUpdateOrderStatusCommandHandler creates a handler for workflow updates.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory, clk clock.Clock) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{uowFactory: uowFactory, clock: clk}
}

// Handle processes the workflow update command. The status table governs the
// transition; reapplying the current status is a permitted no-op that is
// still audited.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	before := ord.Status().String()
	if err = ord.TransitionTo(cmd.Next()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	if err = appendAudit(
		ctx, uow.AuditLogRepository(), act,
		"UPDATE_ORDER_STATUS", "ORDER", ord.ID().String(),
		before, ord.Status().String(), h.clock.Now(),
	); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
