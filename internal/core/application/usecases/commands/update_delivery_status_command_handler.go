package commands

import (
	"context"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/delivery"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/clock"
)

// UpdateDeliveryStatusCommandHandler updates a delivery job's status. An
// overdue update to a non-terminal status flags the job late; a Delivered
// update propagates onto the order, completing its workflow.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
	clock      clock.Clock
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for delivery status updates.
func NewUpdateDeliveryStatusCommandHandler(uowFactory DeliveryUoWFactory, clk clock.Clock) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{uowFactory: uowFactory, clock: clk}
}

// Handle processes the delivery status update command.
func (h *UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
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
	job, err := uow.DeliveryJobRepository().Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	now := h.clock.Now()
	before := job.Status().String()
	if err = job.UpdateStatus(cmd.Next(), now); err != nil {
		return err
	}

	if err = uow.DeliveryJobRepository().Update(ctx, job); err != nil {
		return err
	}

	if cmd.Next() == delivery.Delivered {
		if err = h.completeOrder(ctx, uow, job, act); err != nil {
			return err
		}
	}

	if err = appendAudit(
		ctx, uow.AuditLogRepository(), act,
		"UPDATE_DELIVERY_STATUS", "DELIVERY_JOB", job.ID().String(),
		before, job.Status().String(), now,
	); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// completeOrder moves the delivered job's order to Delivered inside the same
// transaction.
func (h *UpdateDeliveryStatusCommandHandler) completeOrder(
	ctx context.Context, uow DeliveryUoW, job *delivery.Job, act *actor.Actor,
) error {
	ord, err := uow.OrderRepository().Get(ctx, job.OrderID())
	if err != nil {
		return err
	}

	before := ord.Status().String()
	if err = ord.TransitionTo(order.Delivered); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	return appendAudit(
		ctx, uow.AuditLogRepository(), act,
		"UPDATE_ORDER_STATUS", "ORDER", ord.ID().String(),
		before, ord.Status().String(), h.clock.Now(),
	)
}
