package queries_test

import (
	"errors"
	"testing"

	"trading/internal/core/application/usecases/queries"
	"trading/internal/core/domain/domainerr"
	"trading/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placeOpen(t *testing.T, userID, symbol string, quantity string) *order.Order {
	t.Helper()
	o, err := order.PlaceLimitOrder(userID, symbol, order.Buy, decimal.NewFromInt(100), decimal.RequireFromString(quantity))
	require.NoError(t, err)
	require.NoError(t, o.Open())
	return o
}

func TestGetOrderQueryHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := placeOpen(t, "alice", "BTC/USDT", "2")
	require.NoError(t, o.Fill(decimal.RequireFromString("0.5"), nil))

	repo := new(MockOrderRepository)
	repo.On("FindByID", ctx, o.ID()).Return(o, nil).Once()

	query, err := queries.NewGetOrderQuery(o.ID().String(), "alice")
	require.NoError(t, err)

	h := queries.NewGetOrderQueryHandler(newReaderFactory(repo))
	detail, err := h.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, o.ID().String(), detail.OrderID)
	assert.Equal(t, "PARTIAL_FILLED", detail.Status)
	assert.True(t, detail.RemainingQuantity.Equal(decimal.RequireFromString("1.5")))
	assert.True(t, detail.FilledPercentage.Equal(decimal.NewFromInt(25)))
	assert.True(t, detail.TotalValue.Equal(decimal.NewFromInt(200)))
	assert.True(t, detail.IsOpen)
	assert.False(t, detail.IsClosed)
	repo.AssertExpectations(t)
}

func TestGetOrderQueryHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()
	o := placeOpen(t, "alice", "BTC/USDT", "1")

	repo := new(MockOrderRepository)
	repo.On("FindByID", ctx, o.ID()).Return(o, nil).Once()

	query, _ := queries.NewGetOrderQuery(o.ID().String(), "bob")
	h := queries.NewGetOrderQueryHandler(newReaderFactory(repo))
	_, err := h.Handle(ctx, query)

	require.ErrorIs(t, err, domainerr.ErrUnauthorizedOrderAccess)
	assert.Equal(t, domainerr.KindUnauthorizedOrderAccess, domainerr.KindOf(err))
}

func TestGetOrderQueryHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	query, _ := queries.NewGetOrderQuery("ORD-0123456789AB", "alice")

	repo := new(MockOrderRepository)
	repo.On("FindByID", ctx, query.OrderID()).
		Return(nil, domainerr.NewOrderNotFoundError("ORD-0123456789AB")).Once()

	h := queries.NewGetOrderQueryHandler(newReaderFactory(repo))
	_, err := h.Handle(ctx, query)

	var notFound *domainerr.OrderNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "ORD-0123456789AB", notFound.OrderID)
}

func TestGetOrderQueryHandler_Handle_RepositoryError(t *testing.T) {
	ctx := t.Context()
	query, _ := queries.NewGetOrderQuery("ORD-0123456789AB", "alice")

	repo := new(MockOrderRepository)
	repo.On("FindByID", ctx, query.OrderID()).Return(nil, errors.New("connection reset")).Once()

	h := queries.NewGetOrderQueryHandler(newReaderFactory(repo))
	_, err := h.Handle(ctx, query)

	require.EqualError(t, err, "connection reset")
}

func TestGetOrderQueryHandler_Handle_InvalidQuery(t *testing.T) {
	factory := new(MockOrderReaderFactory)
	h := queries.NewGetOrderQueryHandler(factory)

	_, err := h.Handle(t.Context(), queries.GetOrderQuery{})

	require.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
