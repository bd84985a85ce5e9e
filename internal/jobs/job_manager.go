package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	menuResetJob *MenuResetJob
}

// NewJobManager wires the jobs. An empty menuResetSpec disables the menu
// reset job.
func NewJobManager(resetHandler MenuResetter, menuResetSpec string, logger *slog.Logger) *JobManager {
	jm := &JobManager{}
	if menuResetSpec != "" {
		jm.menuResetJob = NewMenuResetJob(resetHandler, menuResetSpec, logger)
	}
	return jm
}

// StartAll starts all enabled jobs.
func (jm *JobManager) StartAll() error {
	if jm.menuResetJob != nil {
		if err := jm.menuResetJob.Start(); err != nil {
			return fmt.Errorf("failed to start menu reset job: %w", err)
		}
	}
	return nil
}

// StopAll stops all enabled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.menuResetJob != nil {
		jm.menuResetJob.Stop()
	}
}
