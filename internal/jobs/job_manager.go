package jobs

import (
	"fmt"
	"log/slog"

	"laundry/internal/core/application/usecases/commands"
)

// JobManager coordinates the scheduled jobs in the application.
type JobManager struct {
	lateDeliveryJob *LateDeliveryJob
}

// NewJobManager creates a job manager wired to the sweep handler.
func NewJobManager(
	sweepHandler commands.SweepLateDeliveriesCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		lateDeliveryJob: NewLateDeliveryJob(sweepHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.lateDeliveryJob.Start(); err != nil {
		return fmt.Errorf("failed to start late delivery sweep: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.lateDeliveryJob.Stop()
}
