// Package servers holds the HTTP contract of the order API described by
// openapi.yaml: wire types, the ServerInterface and its echo wrapper.
//
// The code follows the layout oapi-codegen emits for echo servers and is
// maintained by hand; TestRegisterHandlers_MatchesDocument fails when a route
// in openapi.yaml has no registered handler.
package servers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	decimal "github.com/shopspring/decimal"
)

// Defines values for OrderSide.
const (
	OrderSideBUY  OrderSide = "BUY"
	OrderSideSELL OrderSide = "SELL"
)

// Defines values for PlaceOrderType.
const (
	PlaceOrderTypeLIMIT  PlaceOrderType = "LIMIT"
	PlaceOrderTypeMARKET PlaceOrderType = "MARKET"
)

// Decimal Decimal number, accepted as a JSON number or string and returned as a string.
type Decimal = decimal.Decimal

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Order defines model for Order.
type Order struct {
	CreatedAt      time.Time `json:"created_at"`
	FilledQuantity Decimal   `json:"filled_quantity"`
	OrderId        string    `json:"order_id"`
	OrderType      string    `json:"order_type"`
	Price          Decimal   `json:"price"`
	Quantity       Decimal   `json:"quantity"`
	RejectReason   *string   `json:"reject_reason,omitempty"`
	Side           string    `json:"side"`
	Status         string    `json:"status"`
	Symbol         string    `json:"symbol"`
	UpdatedAt      time.Time `json:"updated_at"`
	UserId         string    `json:"user_id"`
}

// OrderDetail defines model for OrderDetail.
type OrderDetail struct {
	CreatedAt         time.Time `json:"created_at"`
	FilledPercentage  Decimal   `json:"filled_percentage"`
	FilledQuantity    Decimal   `json:"filled_quantity"`
	IsClosed          bool      `json:"is_closed"`
	IsOpen            bool      `json:"is_open"`
	OrderId           string    `json:"order_id"`
	OrderType         string    `json:"order_type"`
	Price             Decimal   `json:"price"`
	Quantity          Decimal   `json:"quantity"`
	RejectReason      *string   `json:"reject_reason,omitempty"`
	RemainingQuantity Decimal   `json:"remaining_quantity"`
	Side              string    `json:"side"`
	Status            string    `json:"status"`
	Symbol            string    `json:"symbol"`
	TotalValue        Decimal   `json:"total_value"`
	UpdatedAt         time.Time `json:"updated_at"`
	UserId            string    `json:"user_id"`
}

// OrderList defines model for OrderList.
type OrderList struct {
	Orders []Order `json:"orders"`
	Total  int     `json:"total"`
}

// OrderSide defines model for OrderSide.
type OrderSide string

// PlaceOrderRequest defines model for PlaceOrderRequest.
type PlaceOrderRequest struct {
	OrderType PlaceOrderType `json:"order_type"`
	Price     *Decimal       `json:"price,omitempty"`
	Quantity  Decimal        `json:"quantity"`
	Side      OrderSide      `json:"side"`
	Symbol    string         `json:"symbol"`
	UserId    string         `json:"user_id"`
}

// PlaceOrderType defines model for PlaceOrderType.
type PlaceOrderType string

// BadRequest defines model for BadRequest.
type BadRequest = Error

// Forbidden defines model for Forbidden.
type Forbidden = Error

// NotFound defines model for NotFound.
type NotFound = Error

// Unexpected defines model for Unexpected.
type Unexpected = Error

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	UserId string `form:"user_id" json:"user_id"`

	// Symbol Trading pair filter, e.g. BTC/USDT or BTC-USDT
	Symbol *string `form:"symbol,omitempty" json:"symbol,omitempty"`
}

// CancelOrderParams defines parameters for CancelOrder.
type CancelOrderParams struct {
	UserId string `form:"user_id" json:"user_id"`
}

// GetOrderParams defines parameters for GetOrder.
type GetOrderParams struct {
	UserId string `form:"user_id" json:"user_id"`
}

// PlaceOrderJSONRequestBody defines body for PlaceOrder for application/json ContentType.
type PlaceOrderJSONRequestBody = PlaceOrderRequest

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List the orders of a user, newest first
	// (GET /api/orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// Place a new order
	// (POST /api/orders)
	PlaceOrder(ctx echo.Context) error
	// Cancel an open or partially filled order
	// (DELETE /api/orders/{order_id})
	CancelOrder(ctx echo.Context, orderId string, params CancelOrderParams) error
	// Get one order with its derived values
	// (GET /api/orders/{order_id})
	GetOrder(ctx echo.Context, orderId string, params GetOrderParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params ListOrdersParams
	// ------------- Required query parameter "user_id" -------------

	err = runtime.BindQueryParameter("form", true, true, "user_id", ctx.QueryParams(), &params.UserId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter user_id: %s", err))
	}

	// ------------- Optional query parameter "symbol" -------------

	err = runtime.BindQueryParameter("form", true, false, "symbol", ctx.QueryParams(), &params.Symbol)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter symbol: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListOrders(ctx, params)
	return err
}

// PlaceOrder converts echo context to params.
func (w *ServerInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PlaceOrder(ctx)
	return err
}

// CancelOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "order_id" -------------
	var orderId string

	err = runtime.BindStyledParameterWithOptions("simple", "order_id", ctx.Param("order_id"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter order_id: %s", err))
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params CancelOrderParams
	// ------------- Required query parameter "user_id" -------------

	err = runtime.BindQueryParameter("form", true, true, "user_id", ctx.QueryParams(), &params.UserId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter user_id: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CancelOrder(ctx, orderId, params)
	return err
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "order_id" -------------
	var orderId string

	err = runtime.BindStyledParameterWithOptions("simple", "order_id", ctx.Param("order_id"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter order_id: %s", err))
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params GetOrderParams
	// ------------- Required query parameter "user_id" -------------

	err = runtime.BindQueryParameter("form", true, true, "user_id", ctx.QueryParams(), &params.UserId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter user_id: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrder(ctx, orderId, params)
	return err
}

// This is a simple interface which specifies echo.Route addition functions which
// are present on both echo.Echo and echo.Group, since we want to allow using
// either of them for path registration
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// Registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {

	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/orders", wrapper.ListOrders)
	router.POST(baseURL+"/api/orders", wrapper.PlaceOrder)
	router.DELETE(baseURL+"/api/orders/:order_id", wrapper.CancelOrder)
	router.GET(baseURL+"/api/orders/:order_id", wrapper.GetOrder)

}
