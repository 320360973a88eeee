package jobs

import (
	"context"
	"log/slog"

	"deliverus/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ServiceTimeRefreshJob periodically recomputes the average service time of
// every restaurant with delivered orders. One transaction covers the whole
// pass: a failed run changes nothing and the next run retries.
type ServiceTimeRefreshJob struct {
	handler  commands.RefreshServiceTimesCommandHandler
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewServiceTimeRefreshJob creates the reconciliation job. schedule is a
// six-field cron expression with a seconds field.
func NewServiceTimeRefreshJob(
	handler commands.RefreshServiceTimesCommandHandler,
	schedule string,
	logger *slog.Logger,
) *ServiceTimeRefreshJob {
	return &ServiceTimeRefreshJob{
		handler:  handler,
		cron:     cron.New(cron.WithSeconds()),
		schedule: schedule,
		logger:   logger.With("component", "service_time_refresh_job"),
	}
}

// Start schedules the reconciliation run.
func (j *ServiceTimeRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewRefreshServiceTimesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Service time refresh job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Service time refresh job started", "schedule", j.schedule)
	return nil
}

// Stop stops the reconciliation job.
func (j *ServiceTimeRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Service time refresh job stopped")
}
