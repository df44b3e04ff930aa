// Package jobs provides scheduled background tasks for the driver board.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic work the session needs without driver input.
//
// # Available Jobs
//
// 1. WorklistRefreshJob - Re-queries every provider on a configurable
// schedule and merges the results into the worklist.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(orchestrator, "*/30 * * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The refresh job takes a six-field cron expression with a seconds column,
// so sub-minute refresh intervals are expressible.
//
// # Error Handling
//
// A failed refresh is logged and otherwise ignored; the orchestrator
// keeps its last good worklist and the next tick retries.
package jobs
