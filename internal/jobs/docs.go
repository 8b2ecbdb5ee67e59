// Package jobs provides scheduled background tasks.
//
// Jobs are built on github.com/robfig/cron/v3 and call application command
// handlers, the same way HTTP handlers do.
//
// # Available Jobs
//
// ReconciliationJob loads pending back-reference repairs recorded by the
// integrity coordinator and re-applies them in batches. Repairs are idempotent,
// so a batch interrupted by shutdown or a timeout is simply retried on the next
// run.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(reconcileHandler, jobs.Config{
//		ReconcileSchedule:  "@every 30s",
//		ReconcileBatchSize: 100,
//		ReconcileTimeout:   20 * time.Second,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed batch is logged and left for the next run. Repairs that fail again
// stay pending with their attempt counter increased.
package jobs
