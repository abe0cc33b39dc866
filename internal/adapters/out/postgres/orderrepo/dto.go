// Package orderrepo provides the GORM persistence of the order aggregate:
// the table model and the mapping between it and order.Order.
package orderrepo

import (
	"time"

	"trading/internal/core/domain/model/kernel"
	"trading/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO is the row layout of the "orders" table.
// Enums are stored as their string tags; amounts as unscaled numeric so no accepted digit is rounded away.
type OrderDTO struct {
	OrderID        string          `gorm:"column:order_id;type:varchar(16);primaryKey"`
	UserID         string          `gorm:"type:varchar(255);not null;index"`
	Symbol         string          `gorm:"type:varchar(32);not null;index"`
	BaseCurrency   string          `gorm:"type:varchar(16);not null"`
	QuoteCurrency  string          `gorm:"type:varchar(16);not null"`
	Side           string          `gorm:"type:varchar(8);not null"`
	OrderType      string          `gorm:"type:varchar(16);not null"`
	Price          decimal.Decimal `gorm:"type:numeric;not null"`
	PriceCurrency  string          `gorm:"type:varchar(16);not null"`
	Quantity       decimal.Decimal `gorm:"type:numeric;not null"`
	FilledQuantity decimal.Decimal `gorm:"type:numeric;not null"`
	Status         string          `gorm:"type:varchar(16);not null;index"`
	RejectReason   string          `gorm:"type:text"`
	CreatedAt      time.Time       `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt      time.Time       `gorm:"not null;autoUpdateTime:false"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	pair := o.TradingPair()
	return OrderDTO{
		OrderID:        o.ID().String(),
		UserID:         o.UserID(),
		Symbol:         pair.Symbol(),
		BaseCurrency:   pair.Base(),
		QuoteCurrency:  pair.Quote(),
		Side:           o.Side().String(),
		OrderType:      o.Type().String(),
		Price:          o.Price().Amount(),
		PriceCurrency:  o.Price().Currency(),
		Quantity:       o.Quantity(),
		FilledQuantity: o.FilledQuantity(),
		Status:         o.Status().String(),
		RejectReason:   o.RejectReason(),
		CreatedAt:      o.CreatedAt(),
		UpdatedAt:      o.UpdatedAt(),
	}
}

// toDomain rebuilds the aggregate with order.RestoreOrder, so a corrupted row
// surfaces as an error instead of an invalid order.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(dto.OrderID)
	if err != nil {
		return nil, err
	}

	pair, err := kernel.NewTradingPair(dto.BaseCurrency, dto.QuoteCurrency)
	if err != nil {
		return nil, err
	}

	side, err := order.ParseSide(dto.Side)
	if err != nil {
		return nil, err
	}

	orderType, err := order.ParseType(dto.OrderType)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price, dto.PriceCurrency)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.UserID,
		pair,
		side,
		orderType,
		price,
		dto.Quantity,
		dto.FilledQuantity,
		status,
		dto.RejectReason,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
