package jobs

import (
	"context"
	"log/slog"

	"pigeonpost/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueReportJob periodically logs the delivery statistics report so
// operators see overdue letters without polling the API. Overdue detection
// itself stays on-demand; this job only observes.
type OverdueReportJob struct {
	handler queries.GetStatisticsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueReportJob creates the hourly overdue report job.
func NewOverdueReportJob(handler queries.GetStatisticsQueryHandler, logger *slog.Logger) *OverdueReportJob {
	return &OverdueReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "overdue_report_job"),
	}
}

// Start schedules the report at the top of every hour.
func (j *OverdueReportJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		stats, err := j.handler.Handle(ctx, queries.NewGetStatisticsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue report job failed", "error", err)
			return
		}

		if stats.OverdueLetters > 0 {
			j.logger.WarnContext(ctx, "Overdue letters detected",
				"overdue", stats.OverdueLetters,
				"dispatched", stats.DispatchedLetters,
			)
			return
		}

		j.logger.InfoContext(ctx, "Delivery report",
			"total", stats.TotalLetters,
			"queued", stats.QueuedLetters,
			"dispatched", stats.DispatchedLetters,
			"delivered", stats.DeliveredLetters,
			"averageDeliveryHours", stats.AverageDeliveryHours,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue report job started (running hourly)")
	return nil
}

// Stop stops the overdue report job.
func (j *OverdueReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue report job stopped")
}
