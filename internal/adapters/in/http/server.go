package http

import (
	"log/slog"
	"net/http"

	"trading/internal/core/application/usecases/commands"
	"trading/internal/core/application/usecases/projections"
	"trading/internal/core/application/usecases/queries"
	"trading/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler  commands.PlaceOrderCommandHandler
	cancelOrderHandler commands.CancelOrderCommandHandler

	// Query handlers
	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		placeOrderHandler:  placeOrderHandler,
		cancelOrderHandler: cancelOrderHandler,
		getOrderHandler:    getOrderHandler,
		listOrdersHandler:  listOrdersHandler,
		logger:             logger.With("component", "http"),
	}
}

// PlaceOrder handles POST /api/orders - places a new order and opens it.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req servers.PlaceOrderJSONRequestBody
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Error:   validationErrorTag,
			Message: "Invalid request body",
		})
	}

	var price decimal.NullDecimal
	if req.Price != nil {
		price = decimal.NewNullDecimal(*req.Price)
	}

	cmd, err := commands.NewPlaceOrderCommand(
		req.UserId,
		req.Symbol,
		string(req.Side),
		string(req.OrderType),
		price,
		req.Quantity,
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	s.logger.InfoContext(ctx.Request().Context(), "order placed",
		"order_id", placed.OrderID,
		"user_id", placed.UserID,
		"symbol", placed.Symbol,
	)

	return ctx.JSON(http.StatusCreated, toOrder(placed))
}

// ListOrders handles GET /api/orders - lists the orders of a user.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	symbol := ""
	if params.Symbol != nil {
		symbol = *params.Symbol
	}

	query, err := queries.NewListOrdersQuery(params.UserId, symbol)
	if err != nil {
		return s.writeError(ctx, err)
	}

	list, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := servers.OrderList{
		Total:  list.Total,
		Orders: make([]servers.Order, len(list.Orders)),
	}
	for i, o := range list.Orders {
		response.Orders[i] = toOrder(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/orders/{order_id} - returns one order with derived values.
func (s *Server) GetOrder(ctx echo.Context, orderID string, params servers.GetOrderParams) error {
	query, err := queries.NewGetOrderQuery(orderID, params.UserId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderDetail(detail))
}

// CancelOrder handles DELETE /api/orders/{order_id} - cancels an order.
func (s *Server) CancelOrder(ctx echo.Context, orderID string, params servers.CancelOrderParams) error {
	cmd, err := commands.NewCancelOrderCommand(orderID, params.UserId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	s.logger.InfoContext(ctx.Request().Context(), "order cancelled",
		"order_id", cancelled.OrderID,
		"user_id", cancelled.UserID,
	)

	return ctx.JSON(http.StatusOK, toOrder(cancelled))
}

func toOrder(p projections.OrderProjection) servers.Order {
	return servers.Order{
		OrderId:        p.OrderID,
		UserId:         p.UserID,
		Symbol:         p.Symbol,
		Side:           p.Side,
		OrderType:      p.OrderType,
		Price:          p.Price,
		Quantity:       p.Quantity,
		FilledQuantity: p.FilledQuantity,
		Status:         p.Status,
		RejectReason:   optionalString(p.RejectReason),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toOrderDetail(p projections.OrderDetailProjection) servers.OrderDetail {
	return servers.OrderDetail{
		OrderId:           p.OrderID,
		UserId:            p.UserID,
		Symbol:            p.Symbol,
		Side:              p.Side,
		OrderType:         p.OrderType,
		Price:             p.Price,
		Quantity:          p.Quantity,
		FilledQuantity:    p.FilledQuantity,
		Status:            p.Status,
		RejectReason:      optionalString(p.RejectReason),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
		RemainingQuantity: p.RemainingQuantity,
		FilledPercentage:  p.FilledPercentage,
		TotalValue:        p.TotalValue,
		IsOpen:            p.IsOpen,
		IsClosed:          p.IsClosed,
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
