package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// Config controls the background jobs.
type Config struct {
	ReconcileSchedule  string
	ReconcileBatchSize int
	ReconcileTimeout   time.Duration
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	reconciliationJob *ReconciliationJob
}

func NewJobManager(reconcileHandler ReconcileHandler, cfg Config, logger *slog.Logger) *JobManager {
	return &JobManager{
		reconciliationJob: NewReconciliationJob(
			reconcileHandler,
			cfg.ReconcileSchedule,
			cfg.ReconcileBatchSize,
			cfg.ReconcileTimeout,
			logger,
		),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.reconciliationJob.Start(); err != nil {
		return fmt.Errorf("failed to start reconciliation job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs and waits for running ones to return.
func (jm *JobManager) StopAll() {
	jm.reconciliationJob.Stop()
}
