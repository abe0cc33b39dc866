// Package projections contains the read models returned by the order use cases.
// Enum-valued fields hold their string tags ("BUY", "LIMIT", "PARTIAL_FILLED").
package projections

import (
	"time"

	"trading/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderProjection is the flat view of an order.
type OrderProjection struct {
	OrderID        string
	UserID         string
	Symbol         string
	Side           string
	OrderType      string
	Price          decimal.Decimal
	Quantity       decimal.Decimal
	FilledQuantity decimal.Decimal
	Status         string
	RejectReason   string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// OrderDetailProjection extends OrderProjection with the derived values of the order.
type OrderDetailProjection struct {
	OrderProjection

	RemainingQuantity decimal.Decimal
	FilledPercentage  decimal.Decimal
	TotalValue        decimal.Decimal
	IsOpen            bool
	IsClosed          bool
}

// OrderListProjection is a list of flat projections with its size.
type OrderListProjection struct {
	Total  int
	Orders []OrderProjection
}

// FromOrder builds the flat projection of o.
func FromOrder(o *order.Order) OrderProjection {
	return OrderProjection{
		OrderID:        o.ID().String(),
		UserID:         o.UserID(),
		Symbol:         o.TradingPair().Symbol(),
		Side:           o.Side().String(),
		OrderType:      o.Type().String(),
		Price:          o.Price().Amount(),
		Quantity:       o.Quantity(),
		FilledQuantity: o.FilledQuantity(),
		Status:         o.Status().String(),
		RejectReason:   o.RejectReason(),
		CreatedAt:      o.CreatedAt(),
		UpdatedAt:      o.UpdatedAt(),
	}
}

// DetailFromOrder builds the detail projection of o.
func DetailFromOrder(o *order.Order) (OrderDetailProjection, error) {
	total, err := o.TotalValue()
	if err != nil {
		return OrderDetailProjection{}, err
	}

	return OrderDetailProjection{
		OrderProjection:   FromOrder(o),
		RemainingQuantity: o.RemainingQuantity(),
		FilledPercentage:  o.FilledPercentage(),
		TotalValue:        total.Amount(),
		IsOpen:            o.IsOpen(),
		IsClosed:          o.IsClosed(),
	}, nil
}

// ListFromOrders builds a list projection preserving the order of orders.
func ListFromOrders(orders []*order.Order) OrderListProjection {
	items := make([]OrderProjection, 0, len(orders))
	for _, o := range orders {
		items = append(items, FromOrder(o))
	}
	return OrderListProjection{Total: len(items), Orders: items}
}
