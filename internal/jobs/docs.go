// Package jobs provides scheduled background tasks for the order engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the marketplace.
//
// # Available Jobs
//
// 1. PaymentReconciliationJob - Runs every minute to settle orders whose
// gateway charge was started but never confirmed, usually because a webhook
// callback was lost in transit.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(db, gateway, reconcileHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Gateway unavailability is not logged per order; the next tick retries
// - Races with concurrently arriving webhooks are swallowed (the order is settled either way)
// - Failed job starts surface as errors from StartAll
package jobs
