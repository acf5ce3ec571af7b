package jobs

import (
	"context"
	"log/slog"

	"courier/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderSyncJob periodically pulls orders from the configured source into the
// working set. The sync only ever adds orders with unseen identifiers, so
// lifecycle changes made by the courier between runs are preserved.
type OrderSyncJob struct {
	handler  commands.SyncOrdersCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderSyncJob creates a new job for order synchronization.
// The schedule is a six-field cron expression with a seconds column.
func NewOrderSyncJob(
	handler commands.SyncOrdersCommandHandler,
	schedule string,
	logger *slog.Logger,
) *OrderSyncJob {
	return &OrderSyncJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_sync_job"),
	}
}

// Start begins the order sync job on its configured schedule.
func (j *OrderSyncJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewSyncOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Order sync job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order sync job started", "schedule", j.schedule)
	return nil
}

// Stop stops the order sync job.
func (j *OrderSyncJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order sync job stopped")
}
