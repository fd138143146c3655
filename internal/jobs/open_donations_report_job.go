package jobs

import (
	"context"
	"log/slog"

	"fooddonation/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OpenDonationsReportJob periodically logs donation counts per workflow status.
// Read-only: it observes the workflow through the query layer and never
// mutates state.
type OpenDonationsReportJob struct {
	handler queries.GetDonationStatsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOpenDonationsReportJob creates a job that reports donation stats every minute.
func NewOpenDonationsReportJob(handler queries.GetDonationStatsQueryHandler, logger *slog.Logger) *OpenDonationsReportJob {
	return &OpenDonationsReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "open_donations_report_job"),
	}
}

// Start begins the report job to run every minute.
func (j *OpenDonationsReportJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetDonationStatsQuery()

		stats, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Donation stats report failed", "error", err)
			return
		}

		attrs := make([]any, 0, len(stats)*2)
		for _, s := range stats {
			attrs = append(attrs, s.Status, s.Count)
		}
		j.logger.InfoContext(ctx, "Donation workflow stats", attrs...)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Open donations report job started (running every minute)")
	return nil
}

// Stop stops the report job.
func (j *OpenDonationsReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Open donations report job stopped")
}
