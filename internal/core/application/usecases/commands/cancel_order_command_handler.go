package commands

import (
	"context"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/pkg/clock"
)

// CancelOrderCommandHandler handles order cancellation. Customers may cancel
// only their own Pending orders; staff cancellation follows the workflow
// table, so any non-terminal order may be cancelled.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      clock.Clock
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, clk clock.Clock) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{uowFactory: uowFactory, clock: clk}
}

// Handle processes the cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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
	if act.Role() == actor.RoleCustomer {
		err = ord.CancelByCustomer(act.ID(), cmd.Reason())
	} else {
		err = ord.Cancel(cmd.Reason())
	}
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	if err = appendAudit(
		ctx, uow.AuditLogRepository(), act,
		"CANCEL_ORDER", "ORDER", ord.ID().String(),
		before, ord.Status().String(), h.clock.Now(),
	); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
