package http

import (
	"log/slog"
	"net/http"
	"strings"

	"trading/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig holds the optional collaborators of the HTTP router.
type RouterConfig struct {
	Logger *slog.Logger

	// LogLevel sets echo's own logger: debug, info, warn, error or off.
	LogLevel string

	// RequestObserver, when set, receives request latency observations.
	RequestObserver RequestObserver

	// MetricsHandler, when set, is served at GET /metrics.
	MetricsHandler http.Handler
}

// NewRouter builds the echo instance serving the order API, the health check,
// the metrics endpoint and the Swagger UI.
func NewRouter(server *Server, cfg RouterConfig) (*echo.Echo, error) {
	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}

	if err = registerSwagger(doc); err != nil {
		return nil, err
	}

	validator, err := OpenAPIValidationMiddleware(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(echoLogLevel(cfg.LogLevel))

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	if cfg.Logger != nil {
		e.Use(RequestLoggerMiddleware(cfg.Logger))
	}
	if cfg.RequestObserver != nil {
		e.Use(MetricsMiddleware(cfg.RequestObserver))
	}
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if cfg.MetricsHandler != nil {
		e.GET("/metrics", echo.WrapHandler(cfg.MetricsHandler))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)

	return e, nil
}

func echoLogLevel(level string) log.Lvl {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}
