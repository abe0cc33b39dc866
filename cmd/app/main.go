package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"trading/cmd"
	httpadapter "trading/internal/adapters/in/http"
	"trading/internal/adapters/out/metrics"
	"trading/internal/adapters/out/postgres/orderrepo"
	"trading/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	loadDotEnv()
	configs := getConfigs()

	logger := newLogger(configs.LogLevel)
	slog.SetDefault(logger)

	db, err := openDatabase(configs)
	if err != nil {
		logger.Error("failed to connect database", "error", err)
		os.Exit(1)
	}

	app := cmd.NewCompositionRoot(
		configs,
		db,
		metrics.NewOrderMetrics(prometheus.DefaultRegisterer),
		logger,
	)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		logger.Error("failed to start jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	if err = startWebServer(app, configs); err != nil {
		logger.Error("web server stopped", "error", err)
	}
}

func loadDotEnv() {
	if err := godotenv.Load(".env"); err != nil {
		slog.Warn("no .env file loaded, using process environment", "error", err)
	}
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                 envOrDefault("HTTP_PORT", "8080"),
		DBHost:                   envOrDefault("DB_HOST", "localhost"),
		DBPort:                   envOrDefault("DB_PORT", "5432"),
		DBUser:                   os.Getenv("DB_USER"),
		DBPassword:               os.Getenv("DB_PASSWORD"),
		DBName:                   os.Getenv("DB_NAME"),
		DBSslMode:                envOrDefault("DB_SSLMODE", "disable"),
		LogLevel:                 envOrDefault("LOG_LEVEL", "info"),
		OpenOrdersReportSchedule: envOrDefault("OPEN_ORDERS_REPORT_SCHEDULE", jobs.DefaultOpenOrdersReportSchedule),
	}
	return config
}

func envOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err = db.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}

func startWebServer(app cmd.CompositionRoot, configs cmd.Config) error {
	server := httpadapter.NewServer(
		app.CreatePlaceOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateListOrdersQueryHandler(),
		app.Logger(),
	)

	e, err := httpadapter.NewRouter(server, httpadapter.RouterConfig{
		Logger:          app.Logger(),
		LogLevel:        configs.LogLevel,
		RequestObserver: app.Metrics(),
		MetricsHandler:  promhttp.Handler(),
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		app.Logger().Info("http server listening", "port", configs.HTTPPort)
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); startErr != nil &&
			!errors.Is(startErr, http.ErrServerClosed) {
			app.Logger().Error("http server failed", "error", startErr)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
