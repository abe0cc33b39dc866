package cmd

import (
	"log/slog"

	"trading/internal/adapters/out/metrics"
	"trading/internal/adapters/out/postgres"
	"trading/internal/core/application/usecases/commands"
	"trading/internal/core/application/usecases/queries"
	"trading/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	metrics    *metrics.OrderMetrics
	logger     *slog.Logger
	uowFactory *postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, orderMetrics *metrics.OrderMetrics, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		metrics:    orderMetrics,
		logger:     logger,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, orderMetrics),
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderReaderFactory())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orderReaderFactory())
}

func (c *CompositionRoot) CreateCountOpenOrdersQueryHandler() queries.CountOpenOrdersQueryHandler {
	return queries.NewCountOpenOrdersQueryHandler(c.orderReaderFactory())
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	reportJob := jobs.NewOpenOrdersReportJob(
		c.CreateCountOpenOrdersQueryHandler(),
		c.metrics,
		c.config.OpenOrdersReportSchedule,
		c.logger,
	)
	return jobs.NewJobManager(reportJob)
}

func (c *CompositionRoot) Metrics() *metrics.OrderMetrics {
	return c.metrics
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderReaderFactory() queries.OrderReaderFactory {
	return FuncOrderReaderFactory(func() queries.OrderReader {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderReaderFactory func() queries.OrderReader

func (f FuncOrderReaderFactory) Create() queries.OrderReader {
	return f()
}
