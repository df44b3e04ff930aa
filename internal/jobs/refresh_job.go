package jobs

import (
	"context"
	"log/slog"

	"gigboard/internal/core/application/orchestrator"

	"github.com/robfig/cron/v3"
)

// WorklistRefreshJob re-queries every provider on a schedule so the
// worklist keeps tracking the live offers without the driver asking.
type WorklistRefreshJob struct {
	orchestrator *orchestrator.Orchestrator
	spec         string
	cron         *cron.Cron
	logger       *slog.Logger
}

// NewWorklistRefreshJob creates the scheduled refresh job. The spec is a
// six-field cron expression with a seconds column, e.g. "*/30 * * * * *".
func NewWorklistRefreshJob(o *orchestrator.Orchestrator, spec string, logger *slog.Logger) *WorklistRefreshJob {
	return &WorklistRefreshJob{
		orchestrator: o,
		spec:         spec,
		cron:         cron.New(cron.WithSeconds()),
		logger:       logger.With("component", "worklist_refresh_job"),
	}
}

// Start begins the scheduled refresh.
func (j *WorklistRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()

		// A refresh failure is not fatal; the orchestrator keeps the
		// last good worklist and the next tick tries again.
		if err := j.orchestrator.RefreshAll(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Worklist refresh job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Worklist refresh job started", "spec", j.spec)
	return nil
}

// Stop stops the scheduled refresh.
func (j *WorklistRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Worklist refresh job stopped")
}
