package jobs

import (
	"context"
	"log/slog"
	"time"

	"officeorder/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SessionSweeperJob removes editing sessions abandoned by their clients.
// Runs every minute and expires open sessions idle longer than the TTL.
type SessionSweeperJob struct {
	handler commands.ExpireSessionsCommandHandler
	ttl     time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSessionSweeperJob creates a new job for sweeping idle sessions.
// Sessions untouched for longer than ttl are removed on each tick.
func NewSessionSweeperJob(
	handler commands.ExpireSessionsCommandHandler,
	ttl time.Duration,
	logger *slog.Logger,
) *SessionSweeperJob {
	return &SessionSweeperJob{
		handler: handler,
		ttl:     ttl,
		cron:    cron.New(),
		logger:  logger.With("component", "session_sweeper_job"),
	}
}

// Start begins the session sweeper job to run every minute.
func (j *SessionSweeperJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewExpireSessionsCommand(time.Now().Add(-j.ttl))
		if err != nil {
			j.logger.ErrorContext(ctx, "Session sweeper job failed to build command", "error", err)
			return
		}

		expired, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Session sweeper job failed", "error", err)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired idle editing sessions", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session sweeper job started (running every minute)", "ttl", j.ttl)
	return nil
}

// Stop stops the session sweeper job.
func (j *SessionSweeperJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session sweeper job stopped")
}
