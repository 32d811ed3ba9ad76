// Package jobs provides scheduled background tasks.
//
// Jobs are cron based (github.com/robfig/cron/v3, six field expressions with
// seconds) and are started and stopped together through JobManager:
//
//	cleanup := jobs.NewSessionCleanupJob(purgeHandler, cfg.SessionCleanupSchedule, logger)
//	jobManager := jobs.NewJobManager(cleanup)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// SessionCleanupJob deletes expired operator sessions, every ten minutes by
// default. Failures are logged and retried on the next tick.
package jobs
