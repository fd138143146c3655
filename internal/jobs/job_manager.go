package jobs

import (
	"fmt"
	"log/slog"

	"fooddonation/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	openDonationsReportJob *OpenDonationsReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	statsHandler queries.GetDonationStatsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		openDonationsReportJob: NewOpenDonationsReportJob(statsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.openDonationsReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start open donations report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.openDonationsReportJob.Stop()
}
