package commands

import (
	"context"

	"trading/internal/core/application/usecases/projections"
	"trading/internal/core/domain/services"
)

// CancelOrderCommandHandler cancels an order on behalf of its owner.
//
// Example:
//
//	handler := NewCancelOrderCommandHandler(uowFactory)
//	cmd, _ := NewCancelOrderCommand("ORD-1A2B3C4D5E6F", "user-1")
//
//	cancelled, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, domainerr.ErrAuthorization) {
//	    // the order belongs to another user
//	}
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	access     services.OrderAccess
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		access:     services.NewOrderAccess(),
	}
}

// Handle loads the order, checks ownership, cancels it and commits.
// Nothing is written when any step fails.
func (h *CancelOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CancelOrderCommand,
) (projections.OrderProjection, error) {
	if err := cmd.Validate(); err != nil {
		return projections.OrderProjection{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return projections.OrderProjection{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.FindByID(ctx, cmd.OrderID())
	if err != nil {
		return projections.OrderProjection{}, err
	}

	if err = h.access.Authorize(o, cmd.UserID()); err != nil {
		return projections.OrderProjection{}, err
	}

	if err = o.Cancel(); err != nil {
		return projections.OrderProjection{}, err
	}

	if err = orderRepo.Save(ctx, o); err != nil {
		return projections.OrderProjection{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return projections.OrderProjection{}, err
	}

	return projections.FromOrder(o), nil
}
