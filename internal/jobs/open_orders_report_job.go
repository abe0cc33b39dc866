package jobs

import (
	"context"
	"log/slog"

	"trading/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultOpenOrdersReportSchedule runs the report at the start of every minute.
const DefaultOpenOrdersReportSchedule = "0 * * * * *"

// OpenOrdersGauge receives the latest open order count.
type OpenOrdersGauge interface {
	SetOpenOrders(count int)
}

// OpenOrdersReportJob periodically counts open orders, publishes the count
// to a gauge and logs it.
type OpenOrdersReportJob struct {
	handler  queries.CountOpenOrdersQueryHandler
	gauge    OpenOrdersGauge
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOpenOrdersReportJob creates the report job. schedule is a six-field cron
// expression with seconds; an empty schedule means DefaultOpenOrdersReportSchedule.
func NewOpenOrdersReportJob(
	handler queries.CountOpenOrdersQueryHandler,
	gauge OpenOrdersGauge,
	schedule string,
	logger *slog.Logger,
) *OpenOrdersReportJob {
	if schedule == "" {
		schedule = DefaultOpenOrdersReportSchedule
	}

	return &OpenOrdersReportJob{
		handler:  handler,
		gauge:    gauge,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "open_orders_report_job"),
	}
}

// Start schedules the report. It fails on an invalid cron expression.
func (j *OpenOrdersReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Open orders report job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Open orders report job started", "schedule", j.schedule)
	return nil
}

// Run produces one report.
func (j *OpenOrdersReportJob) Run(ctx context.Context) error {
	report, err := j.handler.Handle(ctx, queries.NewCountOpenOrdersQuery())
	if err != nil {
		return err
	}

	j.gauge.SetOpenOrders(report.Total)
	j.logger.InfoContext(ctx, "Open orders report",
		"total", report.Total,
		"by_symbol", report.BySymbol,
	)
	return nil
}

// Stop stops the job and waits for a running report to finish.
func (j *OpenOrdersReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Open orders report job stopped")
}
