// Package jobs provides scheduled background tasks for the office order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping the service needs.
//
// # Available Jobs
//
// 1. SessionSweeperJob - Runs every minute to expire editing sessions whose clients went away
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireSessionsHandler, sessionTTL, logger)
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
// The sweeper uses the cron expression "* * * * *" which means it runs every
// minute. A once-a-minute sweep is plenty for a TTL measured in hours; an
// abandoned session sticks around for at most one extra minute past its TTL.
//
// # Error Handling
//
// The sweeper logs failures and waits for the next tick; a transient database
// error never stops the schedule.
package jobs
