package commands

import (
	"context"
	"log/slog"

	"laundry/internal/core/domain/model/payment"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/clock"
)

// MarkPaymentFailedCommandHandler records a failed card attempt. A paid order
// refuses the failure through the Paid-terminal rule; otherwise both the
// order and the payment record move to Failed and the failure is announced
// after commit. Failed is not terminal, so the attempt can be retried.
type MarkPaymentFailedCommandHandler struct {
	uowFactory PaymentUoWFactory
	publisher  ports.PaymentEventPublisher
	clock      clock.Clock
	logger     *slog.Logger
}

// NewMarkPaymentFailedCommandHandler creates a handler for failed attempts.
func NewMarkPaymentFailedCommandHandler(
	uowFactory PaymentUoWFactory, publisher ports.PaymentEventPublisher,
	clk clock.Clock, logger *slog.Logger,
) MarkPaymentFailedCommandHandler {
	return MarkPaymentFailedCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clk,
		logger:     logger,
	}
}

// Handle processes the failed attempt command.
func (h *MarkPaymentFailedCommandHandler) Handle(ctx context.Context, cmd MarkPaymentFailedCommand) error {
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

	if err = applyPaymentToOrder(ord, payment.Failed, "", now); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	pay, err := upsertPayment(
		ctx, uow, ord.ID(), ord.Total(),
		payment.MethodCard, payment.ProviderDemo, "", payment.Failed, now,
	)
	if err != nil {
		return err
	}

	if err = appendAudit(
		ctx, uow.AuditLogRepository(), act,
		"MARK_PAYMENT_FAILED", "ORDER", ord.ID().String(),
		before, ord.PaymentStatus().String(), now,
	); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	event := payment.FailedEvent{
		PaymentID: pay.ID(),
		OrderID:   pay.OrderID(),
		Reason:    cmd.Reason(),
	}
	if pubErr := h.publisher.PublishFailed(ctx, event); pubErr != nil {
		h.logger.Error("publish payment failed event",
			"order_id", pay.OrderID().String(), "error", pubErr)
	}
	return nil
}
