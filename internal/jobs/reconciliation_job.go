package jobs

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ReconcileHandler runs one batch of back-reference repairs.
type ReconcileHandler interface {
	Handle(ctx context.Context, cmd commands.ReconcileReferencesCommand) error
}

// ReconciliationJob periodically re-applies shipment list updates that failed
// during create or delete.
type ReconciliationJob struct {
	handler    ReconcileHandler
	schedule   string
	batchSize  int
	runTimeout time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewReconciliationJob creates the job. schedule accepts six-field cron
// expressions (with seconds) and descriptors such as "@every 30s". A run
// still in progress when the next one is due makes that next run skip.
func NewReconciliationJob(
	handler ReconcileHandler,
	schedule string,
	batchSize int,
	runTimeout time.Duration,
	logger *slog.Logger,
) *ReconciliationJob {
	return &ReconciliationJob{
		handler:    handler,
		schedule:   schedule,
		batchSize:  batchSize,
		runTimeout: runTimeout,
		cron:       cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:     logger.With("component", "reconciliation_job"),
	}
}

// Start validates the schedule and batch size and starts the scheduler.
func (j *ReconciliationJob) Start() error {
	cmd, err := commands.NewReconcileReferencesCommand(j.batchSize)
	if err != nil {
		return err
	}

	if _, err = j.cron.AddFunc(j.schedule, func() { j.run(cmd) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reconciliation job started",
		"schedule", j.schedule, "batch_size", j.batchSize)
	return nil
}

func (j *ReconciliationJob) run(cmd commands.ReconcileReferencesCommand) {
	ctx, cancel := context.WithTimeout(context.Background(), j.runTimeout)
	defer cancel()

	if err := j.handler.Handle(ctx, cmd); err != nil {
		j.logger.ErrorContext(ctx, "Reconciliation job failed", "error", err)
	}
}

// Stop stops scheduling and waits for a running batch to finish.
func (j *ReconciliationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Reconciliation job stopped")
}
