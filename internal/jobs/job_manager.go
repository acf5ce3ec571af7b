package jobs

import (
	"fmt"
	"log/slog"

	"courier/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderSyncJob *OrderSyncJob
}

// NewJobManager creates a new job manager with all required jobs.
// An empty sync schedule disables periodic synchronization; the initial
// load at startup still happens outside the job manager.
func NewJobManager(
	syncOrdersHandler commands.SyncOrdersCommandHandler,
	syncSchedule string,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}
	if syncSchedule != "" {
		jm.orderSyncJob = NewOrderSyncJob(syncOrdersHandler, syncSchedule, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.orderSyncJob == nil {
		return nil
	}

	if err := jm.orderSyncJob.Start(); err != nil {
		return fmt.Errorf("failed to start order sync job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.orderSyncJob != nil {
		jm.orderSyncJob.Stop()
	}
}
