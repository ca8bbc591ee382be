package jobs

import (
	"context"
	"log/slog"
	"time"

	"workorder/internal/core/application/wizard"

	"github.com/robfig/cron/v3"
)

// SessionEvictionJob sweeps the wizard session manager for drafts whose
// sessions have gone idle. Runs every minute; an abandoned wizard flow never
// reaches the store, so eviction only releases memory and session tokens.
type SessionEvictionJob struct {
	sessions *wizard.Manager
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionEvictionJob creates a job that evicts stale wizard sessions.
func NewSessionEvictionJob(sessions *wizard.Manager, logger *slog.Logger) *SessionEvictionJob {
	return &SessionEvictionJob{
		sessions: sessions,
		cron:     cron.New(),
		logger:   logger.With("component", "session_eviction_job"),
	}
}

// Start begins the eviction sweep, running once a minute.
func (j *SessionEvictionJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		if evicted := j.sessions.EvictStale(time.Now()); evicted > 0 {
			j.logger.InfoContext(ctx, "Evicted stale wizard sessions", "count", evicted)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session eviction job started (running every minute)")
	return nil
}

// Stop stops the eviction job.
func (j *SessionEvictionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session eviction job stopped")
}
