// Package jobs provides scheduled background tasks for the pigeon post service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required around letter delivery.
//
// # Available Jobs
//
// 1. OverdueReportJob - Runs hourly to log the delivery statistics report and
// flag dispatched letters that have been in flight past the overdue threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(statisticsHandler, logger)
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
// The report job uses the cron expression "0 0 * * * *", firing at the top of
// every hour. Overdue detection itself is computed on demand by the statistics
// query; the job only surfaces the numbers in the logs.
//
// # Error Handling
//
// Query failures are logged and the job waits for the next tick. A failed job
// start aborts application startup.
package jobs
