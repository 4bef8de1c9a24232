package commands

import (
	"context"
	"log/slog"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/payment"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/clock"
	"laundry/internal/pkg/errs"
)

// MarkCardPaidCommandHandler settles an order through the demo card provider.
// Customers may settle their own orders; staff may settle any order. The
// completion is announced on the payment stream after commit.
type MarkCardPaidCommandHandler struct {
	uowFactory PaymentUoWFactory
	publisher  ports.PaymentEventPublisher
	clock      clock.Clock
	logger     *slog.Logger
}

// NewMarkCardPaidCommandHandler creates a handler for card settlements.
func NewMarkCardPaidCommandHandler(
	uowFactory PaymentUoWFactory, publisher ports.PaymentEventPublisher,
	clk clock.Clock, logger *slog.Logger,
) MarkCardPaidCommandHandler {
	return MarkCardPaidCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clk,
		logger:     logger,
	}
}

// Handle processes the card settlement command.
func (h *MarkCardPaidCommandHandler) Handle(ctx context.Context, cmd MarkCardPaidCommand) error {
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

	alreadyPaid := ord.PaymentStatus() == payment.Paid
	now := h.clock.Now()
	before := ord.PaymentStatus().String()

	pay, err := upsertPayment(
		ctx, uow, ord.ID(), ord.Total(),
		payment.MethodCard, payment.ProviderDemo, cmd.ProviderRef(), payment.Paid, now,
	)
	if err != nil {
		return err
	}

	if err = applyPaymentToOrder(ord, payment.Paid, payment.MethodCard, now); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	if err = appendAudit(
		ctx, uow.AuditLogRepository(), act,
		"MARK_CARD_PAID", "ORDER", ord.ID().String(),
		before, ord.PaymentStatus().String(), now,
	); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if !alreadyPaid {
		event := payment.CompletedEvent{
			PaymentID: pay.ID(),
			OrderID:   pay.OrderID(),
			Amount:    pay.Amount(),
			Method:    pay.Method(),
			Provider:  pay.Provider(),
		}
		if pubErr := h.publisher.PublishCompleted(ctx, event); pubErr != nil {
			h.logger.Error("publish payment completed event",
				"order_id", pay.OrderID().String(), "error", pubErr)
		}
	}
	return nil
}
