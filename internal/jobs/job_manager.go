package jobs

import (
	"fmt"
	"log/slog"

	"gigboard/internal/core/application/orchestrator"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	worklistRefreshJob *WorklistRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(o *orchestrator.Orchestrator, refreshSpec string, logger *slog.Logger) *JobManager {
	return &JobManager{
		worklistRefreshJob: NewWorklistRefreshJob(o, refreshSpec, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.worklistRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start worklist refresh job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.worklistRefreshJob.Stop()
}
