package commands

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/delivery"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/clock"
	"laundry/internal/pkg/errs"
)

// GenerateDeliveryJobCommandHandler creates the delivery job for a Ready
// order: pickup at 09:00 on the order's pickup date, delivery at 17:00 on
// its delivery date. Exactly one job may exist per order.
type GenerateDeliveryJobCommandHandler struct {
	uowFactory DeliveryUoWFactory
	clock      clock.Clock
}

// NewGenerateDeliveryJobCommandHandler creates a handler for job generation.
func NewGenerateDeliveryJobCommandHandler(uowFactory DeliveryUoWFactory, clk clock.Clock) GenerateDeliveryJobCommandHandler {
	return GenerateDeliveryJobCommandHandler{uowFactory: uowFactory, clock: clk}
}

// Handle processes the dispatch command.
func (h *GenerateDeliveryJobCommandHandler) Handle(ctx context.Context, cmd GenerateDeliveryJobCommand) error {
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
	if ord.Status() != order.Ready {
		return errs.NewInvalidStateError("delivery job generation", ord.Status().String())
	}

	if _, err = uow.DeliveryJobRepository().GetByOrderID(ctx, cmd.OrderID()); err == nil {
		return errs.NewObjectAlreadyExistsError("delivery job", "order "+cmd.OrderID().String())
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if cmd.AssigneeID() != nil {
		if _, err = uow.ActorRepository().Get(ctx, *cmd.AssigneeID()); err != nil {
			return err
		}
	}

	pickupAt, deliveryAt := delivery.ScheduleFor(ord.PickupDate(), ord.DeliveryDate())
	job, err := delivery.NewJob(cmd.JobID(), cmd.OrderID(), cmd.AssigneeID(), pickupAt, deliveryAt)
	if err != nil {
		return err
	}

	if err = uow.DeliveryJobRepository().Add(ctx, job); err != nil {
		return err
	}

	if err = appendAudit(
		ctx, uow.AuditLogRepository(), act,
		"GENERATE_DELIVERY_JOB", "DELIVERY_JOB", job.ID().String(),
		"", job.Status().String(), h.clock.Now(),
	); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
