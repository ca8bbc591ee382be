// Package jobs provides scheduled background tasks for the work order system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping.
//
// # Available Jobs
//
// 1. SessionEvictionJob - Runs every minute to evict wizard sessions that
// have gone idle, discarding any abandoned drafts they hold.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(sessions, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Eviction is idempotent and cannot conflict with live sessions: the sweep
// and all session access share the manager's lock, so a request that arrives
// during the sweep either refreshes its session first or finds it gone and
// re-authenticates.
package jobs
