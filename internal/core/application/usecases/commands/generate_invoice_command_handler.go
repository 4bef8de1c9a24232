package commands

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/invoice"
	"laundry/internal/pkg/clock"
	"laundry/internal/pkg/errs"
)

// GenerateInvoiceCommandHandler issues the invoice for an order. The billed
// amount is copied from the order's server-computed total; a second invoice
// for the same order is a conflict.
type GenerateInvoiceCommandHandler struct {
	uowFactory FinanceUoWFactory
	clock      clock.Clock
}

// NewGenerateInvoiceCommandHandler creates a handler for invoice generation.
func NewGenerateInvoiceCommandHandler(uowFactory FinanceUoWFactory, clk clock.Clock) GenerateInvoiceCommandHandler {
	return GenerateInvoiceCommandHandler{uowFactory: uowFactory, clock: clk}
}

// Handle processes the invoice generation command.
func (h *GenerateInvoiceCommandHandler) Handle(ctx context.Context, cmd GenerateInvoiceCommand) error {
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

	if _, err = uow.InvoiceRepository().GetByOrderID(ctx, ord.ID()); err == nil {
		return errs.NewObjectAlreadyExistsError("invoice", "order "+ord.ID().String())
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	now := h.clock.Now()
	inv, err := invoice.NewInvoice(cmd.InvoiceID(), ord.ID(), ord.Total(), now)
	if err != nil {
		return err
	}

	if err = uow.InvoiceRepository().Add(ctx, inv); err != nil {
		return err
	}

	if err = appendAudit(
		ctx, uow.AuditLogRepository(), act,
		"GENERATE_INVOICE", "INVOICE", inv.ID().String(),
		"", inv.InvoiceNo(), now,
	); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
