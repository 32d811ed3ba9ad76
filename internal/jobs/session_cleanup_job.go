package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// DefaultSessionCleanupSchedule runs the cleanup at the start of every ten minutes.
const DefaultSessionCleanupSchedule = "0 */10 * * * *"

// SessionPurger deletes sessions that expired before now and reports how many.
type SessionPurger interface {
	Handle(ctx context.Context) (int64, error)
}

// SessionCleanupJob periodically removes expired sessions from the session
// store. Sessions are already rejected once expired; the job only reclaims space.
type SessionCleanupJob struct {
	purger   SessionPurger
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionCleanupJob accepts a six field cron expression (with seconds).
func NewSessionCleanupJob(purger SessionPurger, schedule string, logger *slog.Logger) *SessionCleanupJob {
	if schedule == "" {
		schedule = DefaultSessionCleanupSchedule
	}
	return &SessionCleanupJob{
		purger:   purger,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "session_cleanup_job"),
	}
}

func (j *SessionCleanupJob) Name() string {
	return "session cleanup"
}

func (j *SessionCleanupJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session cleanup job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running cleanup to finish.
func (j *SessionCleanupJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Session cleanup job stopped")
}

func (j *SessionCleanupJob) run() {
	ctx := context.Background()

	purged, err := j.purger.Handle(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Session cleanup job failed", "error", err)
		return
	}
	if purged > 0 {
		j.logger.InfoContext(ctx, "Expired sessions purged", "count", purged)
	}
}
