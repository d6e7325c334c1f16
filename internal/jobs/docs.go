// Package jobs provides scheduled background tasks for the cake shop.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. SalesReportJob - Runs every minute to log the current sales summary and
// persist the sales dashboard snapshot
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(salesSummaryHandler, salesDashboard, snapshotPath, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The sales report job logs query and snapshot failures and keeps running;
// a failed run never stops the schedule.
package jobs
