// Package jobs provides scheduled background tasks for the donation service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OpenDonationsReportJob - Runs every minute to log donation counts per
// workflow status for operational visibility.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(statsHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Constraints
//
// All jobs are read-only. Workflow state changes only through command
// handlers; in particular, OTP expiry is evaluated lazily at verification
// time rather than swept by a timer.
package jobs
