// Package jobs provides scheduled background tasks for the parcel service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the request path cannot guarantee.
//
// # Available Jobs
//
// 1. ListReconciliationJob - Runs every minute to re-derive the per-user
// parcel lists from the parcels table, repairing registrations lost between
// the creation transaction and the post-commit list writes.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(db, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The reconciliation job logs failures and retries on the next tick; a
// single failed run never stops the schedule.
package jobs
