// Package jobs provides scheduled background tasks.
//
// A single job runs today: LateDeliveryJob, which sweeps active delivery
// jobs every minute and flags the ones past their scheduled delivery time.
// The flag is monotonic; a flagged job stays late even if it is delivered
// afterwards.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(sweepHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
