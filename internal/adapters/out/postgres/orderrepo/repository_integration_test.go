package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"trading/internal/adapters/out/postgres/orderrepo"
	"trading/internal/core/domain/domainerr"
	"trading/internal/core/domain/model/kernel"
	"trading/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.OrderID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
	baseTime   time.Time
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
	suite.baseTime = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSave_NewOrder_Success() {
	ctx := context.Background()
	o := suite.placeLimit("alice", "BTC/USDT", "65000", "0.5")

	suite.tracker.On("TrackAggregate", o.ID(), o).Once()

	suite.Require().NoError(suite.repository.Save(ctx, o))

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSave_RoundTrip_PreservesEveryField() {
	ctx := context.Background()
	o := suite.placeLimit("alice", "BTC/USDT", "65000.12345678", "1.5")
	suite.Require().NoError(o.Fill(decimal.RequireFromString("0.25"), nil))

	suite.tracker.On("TrackAggregate", o.ID(), o).Once()
	suite.Require().NoError(suite.repository.Save(ctx, o))

	loaded, err := suite.repository.FindByID(ctx, o.ID())
	suite.Require().NoError(err)

	suite.Equal(o.ID(), loaded.ID())
	suite.Equal("alice", loaded.UserID())
	suite.True(o.TradingPair().IsEqual(loaded.TradingPair()))
	suite.Equal(order.Buy, loaded.Side())
	suite.Equal(order.Limit, loaded.Type())
	suite.True(o.Price().Amount().Equal(loaded.Price().Amount()))
	suite.Equal("USDT", loaded.Price().Currency())
	suite.True(o.Quantity().Equal(loaded.Quantity()))
	suite.True(o.FilledQuantity().Equal(loaded.FilledQuantity()))
	suite.Equal(order.PartialFilled, loaded.Status())
	suite.WithinDuration(o.CreatedAt(), loaded.CreatedAt(), time.Millisecond)
	suite.WithinDuration(o.UpdatedAt(), loaded.UpdatedAt(), time.Millisecond)

	precise := suite.placeLimit("alice", "BTC/USDT", "65000.123456789012", "0.123456789")
	suite.Require().NoError(precise.Fill(decimal.RequireFromString("0.000000001"), nil))
	suite.tracker.On("TrackAggregate", precise.ID(), precise).Once()
	suite.Require().NoError(suite.repository.Save(ctx, precise))

	loadedPrecise, err := suite.repository.FindByID(ctx, precise.ID())
	suite.Require().NoError(err)
	suite.Equal("65000.123456789012", loadedPrecise.Price().Amount().String())
	suite.Equal("0.123456789", loadedPrecise.Quantity().String())
	suite.Equal("0.000000001", loadedPrecise.FilledQuantity().String())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSave_ExistingOrder_Overwrites() {
	ctx := context.Background()
	o := suite.placeLimit("alice", "ETH/USDT", "3000", "2")

	suite.tracker.On("TrackAggregate", o.ID(), o).Twice()
	suite.Require().NoError(suite.repository.Save(ctx, o))

	suite.Require().NoError(o.Cancel())
	suite.Require().NoError(suite.repository.Save(ctx, o))

	suite.assertOrderCount(1)
	loaded, err := suite.repository.FindByID(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, loaded.Status())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSave_RejectedOrder_KeepsReason() {
	ctx := context.Background()
	o, err := order.PlaceMarketOrder("bob", "BTC/USDT", order.Sell, decimal.RequireFromString("0.1"))
	suite.Require().NoError(err)
	suite.Require().NoError(o.Reject("insufficient liquidity"))

	suite.tracker.On("TrackAggregate", o.ID(), o).Once()
	suite.Require().NoError(suite.repository.Save(ctx, o))

	loaded, err := suite.repository.FindByID(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Rejected, loaded.Status())
	suite.Equal("insufficient liquidity", loaded.RejectReason())
	suite.Equal(order.Market, loaded.Type())
	suite.True(loaded.Price().IsZero())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSave_NotConstructedOrder_ReturnsError() {
	err := suite.repository.Save(context.Background(), &order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.assertOrderCount(0)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFindByID_NonExistentOrder_ReturnsNotFoundError() {
	id := kernel.NewOrderID()

	loaded, err := suite.repository.FindByID(context.Background(), id)

	suite.Nil(loaded)
	var notFound *domainerr.OrderNotFoundError
	suite.Require().ErrorAs(err, &notFound)
	suite.Equal(id.String(), notFound.OrderID)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFindByUserID_NewestFirst() {
	ctx := context.Background()
	oldest := suite.seed("alice", "BTC/USDT", order.Open, 0)
	newest := suite.seed("alice", "ETH/USDT", order.Filled, 2)
	middle := suite.seed("alice", "BTC/USDT", order.Cancelled, 1)
	suite.seed("bob", "BTC/USDT", order.Open, 3)

	orders, err := suite.repository.FindByUserID(ctx, "alice")
	suite.Require().NoError(err)

	suite.Equal([]kernel.OrderID{newest.ID(), middle.ID(), oldest.ID()}, ids(orders))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFindBySymbol() {
	ctx := context.Background()
	first := suite.seed("alice", "BTC/USDT", order.Open, 0)
	second := suite.seed("bob", "BTC/USDT", order.Filled, 1)
	suite.seed("alice", "ETH/USDT", order.Open, 2)

	orders, err := suite.repository.FindBySymbol(ctx, "BTC/USDT")
	suite.Require().NoError(err)

	suite.Equal([]kernel.OrderID{second.ID(), first.ID()}, ids(orders))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFindOpenOrders() {
	ctx := context.Background()
	aliceOpen := suite.seed("alice", "BTC/USDT", order.Open, 0)
	alicePartial := suite.seed("alice", "ETH/USDT", order.PartialFilled, 1)
	suite.seed("alice", "BTC/USDT", order.Cancelled, 2)
	suite.seed("alice", "BTC/USDT", order.Pending, 3)
	bobOpen := suite.seed("bob", "BTC/USDT", order.Open, 4)

	suite.Run("single user", func() {
		orders, err := suite.repository.FindOpenOrders(ctx, "alice")
		suite.Require().NoError(err)
		suite.Equal([]kernel.OrderID{alicePartial.ID(), aliceOpen.ID()}, ids(orders))
	})

	suite.Run("all users", func() {
		orders, err := suite.repository.FindOpenOrders(ctx, "")
		suite.Require().NoError(err)
		suite.Equal([]kernel.OrderID{bobOpen.ID(), alicePartial.ID(), aliceOpen.ID()}, ids(orders))
	})
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCountOpenOrdersBySymbol() {
	ctx := context.Background()
	suite.seed("alice", "BTC/USDT", order.Open, 0)
	suite.seed("alice", "ETH/USDT", order.PartialFilled, 1)
	suite.seed("alice", "BTC/USDT", order.Cancelled, 2)
	suite.seed("alice", "SOL/USDT", order.Pending, 3)
	suite.seed("bob", "BTC/USDT", order.Open, 4)

	counts, err := suite.repository.CountOpenOrdersBySymbol(ctx)

	suite.Require().NoError(err)
	suite.Equal(map[string]int{"BTC/USDT": 2, "ETH/USDT": 1}, counts)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCountOpenOrdersBySymbol_Empty() {
	counts, err := suite.repository.CountOpenOrdersBySymbol(context.Background())

	suite.Require().NoError(err)
	suite.Empty(counts)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFindByStatus() {
	ctx := context.Background()
	aliceFilled := suite.seed("alice", "BTC/USDT", order.Filled, 0)
	bobFilled := suite.seed("bob", "BTC/USDT", order.Filled, 1)
	suite.seed("alice", "BTC/USDT", order.Open, 2)

	orders, err := suite.repository.FindByStatus(ctx, order.Filled, "")
	suite.Require().NoError(err)
	suite.Equal([]kernel.OrderID{bobFilled.ID(), aliceFilled.ID()}, ids(orders))

	orders, err = suite.repository.FindByStatus(ctx, order.Filled, "alice")
	suite.Require().NoError(err)
	suite.Equal([]kernel.OrderID{aliceFilled.ID()}, ids(orders))

	orders, err = suite.repository.FindByStatus(ctx, order.Rejected, "")
	suite.Require().NoError(err)
	suite.Empty(orders)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	o := suite.seed("alice", "BTC/USDT", order.Open, 0)

	suite.Require().NoError(suite.repository.Delete(ctx, o.ID()))
	suite.assertOrderCount(0)

	suite.Require().NoError(suite.repository.Delete(ctx, o.ID()), "deleting a missing order is not an error")
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFindByID_CorruptedRow_ReturnsError() {
	ctx := context.Background()
	o := suite.seed("alice", "BTC/USDT", order.Open, 0)

	err := suite.db.Exec("UPDATE orders SET status = 'ARCHIVED' WHERE order_id = ?", o.ID().String()).Error
	suite.Require().NoError(err)

	_, err = suite.repository.FindByID(ctx, o.ID())
	suite.Require().Error(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) placeLimit(userID, symbol, price, quantity string) *order.Order {
	o, err := order.PlaceLimitOrder(
		userID,
		symbol,
		order.Buy,
		decimal.RequireFromString(price),
		decimal.RequireFromString(quantity),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(o.Open())
	return o
}

// seed stores an order created minutesAfter the suite base time.
func (suite *OrderRepositoryIntegrationTestSuite) seed(
	userID, symbol string,
	status order.Status,
	minutesAfter int,
) *order.Order {
	pair, err := kernel.TradingPairFromSymbol(symbol)
	suite.Require().NoError(err)
	price, err := kernel.NewMoney(decimal.NewFromInt(100), pair.Quote())
	suite.Require().NoError(err)

	quantity := decimal.NewFromInt(2)
	filled := decimal.Zero
	switch status {
	case order.PartialFilled:
		filled = decimal.NewFromInt(1)
	case order.Filled:
		filled = quantity
	}

	created := suite.baseTime.Add(time.Duration(minutesAfter) * time.Minute)
	o, err := order.RestoreOrder(
		kernel.NewOrderID(),
		userID,
		pair,
		order.Buy,
		order.Limit,
		price,
		quantity,
		filled,
		status,
		"",
		created,
		created,
	)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", o.ID(), o).Once()
	suite.Require().NoError(suite.repository.Save(context.Background(), o))
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func ids(orders []*order.Order) []kernel.OrderID {
	result := make([]kernel.OrderID, 0, len(orders))
	for _, o := range orders {
		result = append(result, o.ID())
	}
	return result
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
