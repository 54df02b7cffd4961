// Package jobs provides scheduled background tasks built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// StatusReportJob counts parcels per status on the STATUS_REPORT_SCHEDULE cron
// schedule (default "@every 1m"), logs the counts and sets the
// smartlogi_parcels_by_status gauge.
//
// # Usage
//
//	report := jobs.NewStatusReportJob(summaryHandler, metrics, "@every 1m", logger)
//	jobManager := jobs.NewJobManager(report)
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed report is logged and retried on the next tick. A job that cannot be
// scheduled fails StartAll, which stops the jobs already started.
package jobs
