package queries

import (
	"context"

	"trading/internal/core/application/usecases/projections"
	"trading/internal/core/domain/services"
)

// ListOrdersQueryHandler lists a user's orders.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(readerFactory)
//	query, _ := NewListOrdersQuery("user-1", "BTC/USDT")
//
//	list, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Found %d orders\n", list.Total)
type ListOrdersQueryHandler struct {
	readerFactory OrderReaderFactory
	access        services.OrderAccess
}

// NewListOrdersQueryHandler creates a handler for order list queries.
func NewListOrdersQueryHandler(readerFactory OrderReaderFactory) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{
		readerFactory: readerFactory,
		access:        services.NewOrderAccess(),
	}
}

// Handle returns the user's orders newest first, filtered by symbol when one was given.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (projections.OrderListProjection, error) {
	if err := query.Validate(); err != nil {
		return projections.OrderListProjection{}, err
	}

	orders, err := h.readerFactory.Create().OrderRepository().FindByUserID(ctx, query.UserID())
	if err != nil {
		return projections.OrderListProjection{}, err
	}

	return projections.ListFromOrders(h.access.FilterBySymbol(orders, query.Symbol())), nil
}
