// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the platform.
//
// # Available Jobs
//
// 1. ServiceTimeRefreshJob - Recomputes the average service time of every
// restaurant with delivered orders. The deliver command keeps the metric
// fresh per delivery; this job reconciles drift, for example after manual
// data fixes.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(refreshServiceTimesHandler, schedule, logger)
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
// The refresh job takes a six-field cron expression (seconds included), so
// "0 0 * * * *" runs it at the top of every hour.
package jobs
