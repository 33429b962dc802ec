// Package jobs provides scheduled background tasks for the ride booking service.
//
// Jobs are built on github.com/robfig/cron/v3 and managed through JobManager:
//
//	jobManager := jobs.NewJobManager(countHandler, m.Orders, cfg.BacklogReportSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatalf("failed to start jobs: %v", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// OrderBacklogJob counts orders per status on BACKLOG_REPORT_SCHEDULE
// (default "@every 1m"), logs the counts and publishes them on the
// ridehail_orders gauge. It never changes an order.
package jobs
