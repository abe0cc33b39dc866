// Package metrics exposes the Prometheus collectors of the order service.
package metrics

import (
	"strconv"
	"time"

	"trading/internal/core/domain/model/order"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OrderMetrics groups the service collectors registered on one registry.
type OrderMetrics struct {
	requestDuration *prometheus.HistogramVec
	ordersTotal     *prometheus.CounterVec
	openOrders      prometheus.Gauge
}

// NewOrderMetrics registers the collectors on reg.
// Pass prometheus.DefaultRegisterer to expose them through promhttp.Handler.
func NewOrderMetrics(reg prometheus.Registerer) *OrderMetrics {
	factory := promauto.With(reg)

	return &OrderMetrics{
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "trading_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
			[]string{"method", "path", "status"},
		),
		ordersTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trading_orders_total",
				Help: "Total number of committed order changes by resulting status",
			},
			[]string{"status", "symbol"},
		),
		openOrders: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "trading_open_orders",
				Help: "Number of orders in OPEN or PARTIAL_FILLED status at the last report",
			},
		),
	}
}

// ObserveRequest records one served HTTP request.
func (m *OrderMetrics) ObserveRequest(method, path string, status int, duration time.Duration) {
	m.requestDuration.WithLabelValues(method, path, strconv.Itoa(status)).Observe(duration.Seconds())
}

// OrdersCommitted counts orders whose changes were committed.
func (m *OrderMetrics) OrdersCommitted(orders []*order.Order) {
	for _, o := range orders {
		m.ordersTotal.WithLabelValues(o.Status().String(), o.TradingPair().Symbol()).Inc()
	}
}

// SetOpenOrders publishes the latest open order count.
func (m *OrderMetrics) SetOpenOrders(count int) {
	m.openOrders.Set(float64(count))
}
