package commands

import (
	"context"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/pkg/clock"
	"laundry/internal/pkg/errs"
)

// ReassignDeliveryCommandHandler hands a delivery job to another member of
// the delivery staff. The new assignee must exist and hold the delivery role.
type ReassignDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	clock      clock.Clock
}

// NewReassignDeliveryCommandHandler creates a handler for job reassignment.
func NewReassignDeliveryCommandHandler(uowFactory DeliveryUoWFactory, clk clock.Clock) ReassignDeliveryCommandHandler {
	return ReassignDeliveryCommandHandler{uowFactory: uowFactory, clock: clk}
}

// Handle processes the reassignment command.
func (h *ReassignDeliveryCommandHandler) Handle(ctx context.Context, cmd ReassignDeliveryCommand) error {
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
	assignee, err := uow.ActorRepository().Get(ctx, cmd.AssigneeID())
	if err != nil {
		return err
	}
	if assignee.Role() != actor.RoleDeliveryStaff {
		return errs.NewValueIsInvalidError("assignee must be delivery staff")
	}

	job, err := uow.DeliveryJobRepository().Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	before := ""
	if job.AssigneeID() != nil {
		before = job.AssigneeID().String()
	}
	if err = job.Reassign(cmd.AssigneeID()); err != nil {
		return err
	}

	if err = uow.DeliveryJobRepository().Update(ctx, job); err != nil {
		return err
	}

	if err = appendAudit(
		ctx, uow.AuditLogRepository(), act,
		"REASSIGN_DELIVERY", "DELIVERY_JOB", job.ID().String(),
		before, cmd.AssigneeID().String(), h.clock.Now(),
	); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
