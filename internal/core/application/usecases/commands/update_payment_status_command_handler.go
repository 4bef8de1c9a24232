package commands

import (
	"context"
	"errors"

	"laundry/internal/pkg/clock"
	"laundry/internal/pkg/errs"
)

// UpdatePaymentStatusCommandHandler sets an order's payment status on behalf
// of staff. The Paid-terminal rule applies: once Paid, the only accepted
// update is the idempotent re-application of Paid.
type UpdatePaymentStatusCommandHandler struct {
	uowFactory PaymentUoWFactory
	clock      clock.Clock
}

// NewUpdatePaymentStatusCommandHandler creates a handler for payment status updates.
func NewUpdatePaymentStatusCommandHandler(uowFactory PaymentUoWFactory, clk clock.Clock) UpdatePaymentStatusCommandHandler {
	return UpdatePaymentStatusCommandHandler{uowFactory: uowFactory, clock: clk}
}

// Handle processes the payment status update command.
func (h *UpdatePaymentStatusCommandHandler) Handle(ctx context.Context, cmd UpdatePaymentStatusCommand) error {
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

	now := h.clock.Now()
	before := ord.PaymentStatus().String()
	if err = applyPaymentToOrder(ord, cmd.Next(), "", now); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	// keep the payment record aligned when one exists
	pay, err := uow.PaymentRepository().GetByOrderID(ctx, ord.ID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if pay != nil {
		if err = pay.ChangeStatus(cmd.Next(), now); err != nil {
			return err
		}
		if err = uow.PaymentRepository().Update(ctx, pay); err != nil {
			return err
		}
	}

	if err = appendAudit(
		ctx, uow.AuditLogRepository(), act,
		"UPDATE_PAYMENT_STATUS", "ORDER", ord.ID().String(),
		before, ord.PaymentStatus().String(), now,
	); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
