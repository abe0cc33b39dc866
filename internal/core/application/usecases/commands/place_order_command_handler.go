package commands

import (
	"context"

	"trading/internal/core/application/usecases/projections"
	"trading/internal/core/domain/model/order"
)

// PlaceOrderCommandHandler creates an order, opens it and persists it in one transaction.
// An order is never left Pending once placement succeeds.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence.
func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds the order through the limit or market factory, opens it, saves
// it and commits. Domain validation errors are returned before any transaction is started.
func (h *PlaceOrderCommandHandler) Handle(
	ctx context.Context,
	cmd PlaceOrderCommand,
) (projections.OrderProjection, error) {
	if err := cmd.Validate(); err != nil {
		return projections.OrderProjection{}, err
	}

	placed, err := h.place(cmd)
	if err != nil {
		return projections.OrderProjection{}, err
	}

	if err = placed.Open(); err != nil {
		return projections.OrderProjection{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return projections.OrderProjection{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Save(ctx, placed); err != nil {
		return projections.OrderProjection{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return projections.OrderProjection{}, err
	}

	return projections.FromOrder(placed), nil
}

func (h *PlaceOrderCommandHandler) place(cmd PlaceOrderCommand) (*order.Order, error) {
	if cmd.OrderType() == order.Limit {
		return order.PlaceLimitOrder(cmd.UserID(), cmd.Symbol(), cmd.Side(), cmd.Price().Decimal, cmd.Quantity())
	}
	return order.PlaceMarketOrder(cmd.UserID(), cmd.Symbol(), cmd.Side(), cmd.Quantity())
}
