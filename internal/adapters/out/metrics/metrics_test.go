package metrics_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"trading/internal/adapters/out/metrics"
	"trading/internal/core/domain/model/order"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderMetrics_OrdersCommitted(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewOrderMetrics(reg)

	open, err := order.PlaceMarketOrder("alice", "BTC/USDT", order.Sell, decimal.NewFromInt(1))
	require.NoError(t, err)
	require.NoError(t, open.Open())
	cancelled, err := order.PlaceMarketOrder("bob", "BTC/USDT", order.Buy, decimal.NewFromInt(2))
	require.NoError(t, err)
	require.NoError(t, cancelled.Open())
	require.NoError(t, cancelled.Cancel())

	m.OrdersCommitted([]*order.Order{open, cancelled, open})

	expected := `
# HELP trading_orders_total Total number of committed order changes by resulting status
# TYPE trading_orders_total counter
trading_orders_total{status="CANCELLED",symbol="BTC/USDT"} 1
trading_orders_total{status="OPEN",symbol="BTC/USDT"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "trading_orders_total"))
}

func TestOrderMetrics_SetOpenOrders(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewOrderMetrics(reg)

	m.SetOpenOrders(7)
	m.SetOpenOrders(3)

	count, err := testutil.GatherAndCount(reg, "trading_open_orders")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	expected := `
# HELP trading_open_orders Number of orders in OPEN or PARTIAL_FILLED status at the last report
# TYPE trading_open_orders gauge
trading_open_orders 3
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "trading_open_orders"))
}

func TestOrderMetrics_ObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewOrderMetrics(reg)

	m.ObserveRequest(http.MethodPost, "/api/orders", http.StatusCreated, 20*time.Millisecond)
	m.ObserveRequest(http.MethodPost, "/api/orders", http.StatusCreated, 40*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/api/orders/:order_id", http.StatusNotFound, time.Millisecond)

	count, err := testutil.GatherAndCount(reg, "trading_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNewOrderMetrics_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewOrderMetrics(reg)

	assert.Panics(t, func() { metrics.NewOrderMetrics(reg) })
}
