package queries_test

import (
	"context"

	"trading/internal/core/application/usecases/queries"
	"trading/internal/core/domain/model/kernel"
	"trading/internal/core/domain/model/order"
	"trading/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) FindByUserID(ctx context.Context, userID string) ([]*order.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) FindBySymbol(ctx context.Context, symbol string) ([]*order.Order, error) {
	args := m.Called(ctx, symbol)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) FindOpenOrders(ctx context.Context, userID string) ([]*order.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) CountOpenOrdersBySymbol(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).(map[string]int)
	return counts, args.Error(1)
}

func (m *MockOrderRepository) FindByStatus(
	ctx context.Context,
	status order.Status,
	userID string,
) ([]*order.Order, error) {
	args := m.Called(ctx, status, userID)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.OrderID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type readerFunc func() ports.OrderRepository

func (f readerFunc) OrderRepository() ports.OrderRepository {
	return f()
}

type MockOrderReaderFactory struct{ mock.Mock }

func (m *MockOrderReaderFactory) Create() queries.OrderReader {
	args := m.Called()
	return args.Get(0).(queries.OrderReader)
}

func newReaderFactory(repo ports.OrderRepository) *MockOrderReaderFactory {
	factory := new(MockOrderReaderFactory)
	factory.On("Create").Return(readerFunc(func() ports.OrderRepository { return repo }))
	return factory
}
