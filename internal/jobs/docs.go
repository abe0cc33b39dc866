// Package jobs provides scheduled background tasks for the trading service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OpenOrdersReportJob - counts OPEN and PARTIAL_FILLED orders, publishes the
// count to the trading_open_orders gauge and logs it per symbol
//
// # Usage
//
//	reportJob := jobs.NewOpenOrdersReportJob(countHandler, orderMetrics, config.OpenOrdersReportSchedule, logger)
//	jobManager := jobs.NewJobManager(reportJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions with a leading seconds field.
// The report defaults to "0 * * * * *", once a minute.
//
// # Error Handling
//
// A failed report is logged and the gauge keeps its previous value.
// Failed job starts will stop any already running jobs.
package jobs
