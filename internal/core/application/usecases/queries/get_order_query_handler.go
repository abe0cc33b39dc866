package queries

import (
	"context"

	"trading/internal/core/application/usecases/projections"
	"trading/internal/core/domain/services"
)

// GetOrderQueryHandler loads an order and returns its detail projection.
type GetOrderQueryHandler struct {
	readerFactory OrderReaderFactory
	access        services.OrderAccess
}

// NewGetOrderQueryHandler creates a handler for single order retrieval.
func NewGetOrderQueryHandler(readerFactory OrderReaderFactory) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		readerFactory: readerFactory,
		access:        services.NewOrderAccess(),
	}
}

// Handle returns the detail projection of the requested order.
// Fails with *domainerr.OrderNotFoundError when the order does not exist
// and with *domainerr.UnauthorizedOrderAccessError when it belongs to another user.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (projections.OrderDetailProjection, error) {
	if err := query.Validate(); err != nil {
		return projections.OrderDetailProjection{}, err
	}

	o, err := h.readerFactory.Create().OrderRepository().FindByID(ctx, query.OrderID())
	if err != nil {
		return projections.OrderDetailProjection{}, err
	}

	if err = h.access.Authorize(o, query.UserID()); err != nil {
		return projections.OrderDetailProjection{}, err
	}

	return projections.DetailFromOrder(o)
}
