package jobs

import (
	"context"
	"log/slog"

	"laundry/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// LateDeliveryJob runs the lateness sweep every minute, flagging active
// delivery jobs whose scheduled delivery time has passed.
type LateDeliveryJob struct {
	handler commands.SweepLateDeliveriesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewLateDeliveryJob creates the sweep job.
func NewLateDeliveryJob(handler commands.SweepLateDeliveriesCommandHandler, logger *slog.Logger) *LateDeliveryJob {
	return &LateDeliveryJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "late_delivery_job"),
	}
}

// Start schedules the sweep to run every minute.
func (j *LateDeliveryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewSweepLateDeliveriesCommand()

		flagged, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Late delivery sweep failed", "error", err)
			return
		}
		if flagged > 0 {
			j.logger.InfoContext(ctx, "Late delivery sweep flagged jobs", "flagged", flagged)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Late delivery sweep started (running every minute)")
	return nil
}

// Stop stops the sweep job.
func (j *LateDeliveryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Late delivery sweep stopped")
}
