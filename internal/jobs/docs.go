// Package jobs provides scheduled background tasks for the courier console.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order working set.
//
// # Available Jobs
//
// 1. OrderSyncJob - Pulls orders from the configured source on a schedule,
// adding only orders the working set has not seen yet
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(syncOrdersHandler, syncSchedule, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sync job takes a six-field cron expression with a seconds column,
// for example "0 */5 * * * *" for every five minutes. An empty schedule
// disables the job entirely; the one-off load at startup is not affected.
//
// # Error Handling
//
// - Sync failures are logged and retried on the next scheduled run
// - A failed sync never discards orders already in the working set
package jobs
