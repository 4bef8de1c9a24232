package commands

import (
	"context"

	"laundry/internal/pkg/clock"
)

// SweepLateDeliveriesCommandHandler flags overdue active delivery jobs late.
// The flag is monotonic, so a job flagged on one pass is skipped on the next;
// each pass returns how many jobs it flagged.
type SweepLateDeliveriesCommandHandler struct {
	uowFactory SweepUoWFactory
	clock      clock.Clock
}

// NewSweepLateDeliveriesCommandHandler creates a handler for the lateness sweep.
func NewSweepLateDeliveriesCommandHandler(uowFactory SweepUoWFactory, clk clock.Clock) SweepLateDeliveriesCommandHandler {
	return SweepLateDeliveriesCommandHandler{uowFactory: uowFactory, clock: clk}
}

// Handle runs one sweep pass and returns the number of jobs flagged.
func (h *SweepLateDeliveriesCommandHandler) Handle(ctx context.Context, cmd SweepLateDeliveriesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := h.clock.Now()
	jobs, err := uow.DeliveryJobRepository().GetAllOverdue(ctx, now)
	if err != nil {
		return 0, err
	}

	flagged := 0
	for _, job := range jobs {
		if !job.MarkLateIfOverdue(now) {
			continue
		}
		if err = uow.DeliveryJobRepository().Update(ctx, job); err != nil {
			return 0, err
		}
		flagged++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return flagged, nil
}
