package commands

import (
	"context"

	"laundry/internal/core/domain/model/payment"
	"laundry/internal/pkg/clock"
)

// ConfirmCODPaymentCommandHandler records the customer's choice of cash on
// delivery. No money has moved yet, so both the order and the upserted
// payment record stay Pending; the order is settled later through the
// payment status update when the cash is collected, and nothing is announced
// on the payment stream until then.
type ConfirmCODPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	clock      clock.Clock
}

// NewConfirmCODPaymentCommandHandler creates a handler for cash-on-delivery
// confirmations.
func NewConfirmCODPaymentCommandHandler(uowFactory PaymentUoWFactory, clk clock.Clock) ConfirmCODPaymentCommandHandler {
	return ConfirmCODPaymentCommandHandler{uowFactory: uowFactory, clock: clk}
}

// Handle processes the cash confirmation command.
func (h *ConfirmCODPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmCODPaymentCommand) error {
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
	before := ord.PaymentMethod()

	if err = applyPaymentToOrder(ord, payment.Pending, payment.MethodCashOnDelivery, now); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	if _, err = upsertPayment(
		ctx, uow, ord.ID(), ord.Total(),
		payment.MethodCashOnDelivery, payment.ProviderCash, "", payment.Pending, now,
	); err != nil {
		return err
	}

	if err = appendAudit(
		ctx, uow.AuditLogRepository(), act,
		"CONFIRM_COD_PAYMENT", "ORDER", ord.ID().String(),
		before, payment.MethodCashOnDelivery, now,
	); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
