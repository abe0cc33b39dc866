package commands

import (
	"errors"
	"fmt"
	"strings"

	"trading/internal/core/domain/model/order"
	"trading/internal/pkg/errs"
	"trading/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderCommand represents a request to place a new limit or market order.
// Side and order type arrive as wire strings and are parsed here; price and
// quantity bounds are enforced later by the Order aggregate.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand("user-1", "BTC/USDT", "BUY", "LIMIT",
//	    decimal.NewNullDecimal(decimal.NewFromInt(65000)), decimal.RequireFromString("0.5"))
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	placed, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	userID    string
	symbol    string
	side      order.Side
	orderType order.Type
	price     decimal.NullDecimal
	quantity  decimal.Decimal

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates and creates a PlaceOrderCommand.
// A LIMIT order requires a price; the price of a MARKET order is ignored.
// STOP_LOSS orders cannot be placed.
func NewPlaceOrderCommand(
	userID, symbol, side, orderType string,
	price decimal.NullDecimal,
	quantity decimal.Decimal,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setSymbol(symbol),
		cmd.setSide(side),
		cmd.setOrderType(orderType),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	if err := cmd.setPrice(price); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) UserID() string { return c.userID }

func (c PlaceOrderCommand) Symbol() string { return c.symbol }

func (c PlaceOrderCommand) Side() order.Side { return c.side }

func (c PlaceOrderCommand) OrderType() order.Type { return c.orderType }

// Price is valid only for LIMIT orders.
func (c PlaceOrderCommand) Price() decimal.NullDecimal { return c.price }

func (c PlaceOrderCommand) Quantity() decimal.Decimal { return c.quantity }

func (c *PlaceOrderCommand) setUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return errs.NewValueIsRequiredError("user id")
	}
	c.userID = userID
	return nil
}

func (c *PlaceOrderCommand) setSymbol(symbol string) error {
	if strings.TrimSpace(symbol) == "" {
		return errs.NewValueIsRequiredError("symbol")
	}
	c.symbol = symbol
	return nil
}

func (c *PlaceOrderCommand) setSide(side string) error {
	parsed, err := order.ParseSide(side)
	if err != nil {
		return err
	}
	c.side = parsed
	return nil
}

func (c *PlaceOrderCommand) setOrderType(orderType string) error {
	parsed, err := order.ParseType(orderType)
	if err != nil {
		return err
	}
	if parsed == order.StopLoss {
		return errs.NewValueIsInvalidErrorWithCause(
			"order type",
			fmt.Errorf("%s orders cannot be placed", parsed),
		)
	}
	c.orderType = parsed
	return nil
}

func (c *PlaceOrderCommand) setPrice(price decimal.NullDecimal) error {
	if c.orderType == order.Limit && !price.Valid {
		return errs.NewValueIsRequiredError("price")
	}
	if c.orderType == order.Market {
		price = decimal.NullDecimal{}
	}
	c.price = price
	return nil
}
