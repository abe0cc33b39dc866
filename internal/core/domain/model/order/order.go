package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"trading/internal/core/domain/domainerr"
	"trading/internal/core/domain/model/kernel"
	"trading/internal/pkg/errs"
	"trading/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// MinQuantity is the smallest quantity an order may be placed for.
	MinQuantity = decimal.New(1, -8)
	// MaxQuantity is the largest quantity an order may be placed for.
	MaxQuantity = decimal.NewFromInt(1_000_000)
	// MinPrice is the smallest limit price.
	MinPrice = decimal.New(1, -2)
	// MaxPrice is the largest limit price.
	MaxPrice = decimal.NewFromInt(1_000_000_000)
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// one of the factories or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("order must be created via NewOrder, PlaceLimitOrder, PlaceMarketOrder or RestoreOrder")
)

// Order is the aggregate root of the trading domain. It owns the order's
// lifecycle and guards the following invariants:
//   - 0 <= filled quantity <= quantity at all times
//   - the price of a priced order is denominated in the pair's quote currency
//   - status transitions follow the rules of Status
//   - every failing operation leaves the order unchanged
//
// Fields are private; state changes only through Open, Fill, Cancel and Reject.
type Order struct {
	// id is the unique identifier for the order
	id kernel.OrderID

	// userID identifies the owner of the order
	userID string

	// pair is the market the order trades on
	pair kernel.TradingPair

	side      Side
	orderType Type

	// price is denominated in the quote currency; zero for market orders until filled
	price kernel.Money

	quantity       decimal.Decimal
	filledQuantity decimal.Decimal

	status Status

	// rejectReason is set by Reject and empty otherwise
	rejectReason string

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a Pending order with a freshly generated id.
//
// Validation happens in two stages. First every structural field is checked and
// all failures are joined. Then the price (Limit orders only) and the
// quantity are checked against the order bounds, in this order, and the first
// violated rule is returned:
//
//	price    > 0                     else *domainerr.InvalidPriceError
//	price    >= MinPrice             else *domainerr.InvalidPriceError
//	price    <= MaxPrice             else *domainerr.InvalidPriceError
//	currency == pair quote currency  else *domainerr.OrderValidationError
//	quantity > 0                     else *domainerr.InvalidQuantityError
//	quantity >= MinQuantity          else *domainerr.QuantityBelowMinimumError
//	quantity <= MaxQuantity          else *domainerr.QuantityAboveMaximumError
func NewOrder(
	userID string,
	pair kernel.TradingPair,
	side Side,
	orderType Type,
	price kernel.Money,
	quantity decimal.Decimal,
) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		id:             kernel.NewOrderID(),
		status:         Pending,
		filledQuantity: decimal.Zero,
		createdAt:      now,
		updatedAt:      now,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setUserID(userID),
		o.setTradingPair(pair),
		o.setSide(side),
		o.setType(orderType),
		o.setPrice(price),
	); err != nil {
		return nil, err
	}

	if orderType == Limit {
		if err := validatePrice(price, pair); err != nil {
			return nil, err
		}
	}
	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}
	o.quantity = quantity

	return o, nil
}

// PlaceLimitOrder parses symbol, denominates price in the pair's quote currency
// and creates a Pending limit order.
//
// Example:
//
//	o, err := order.PlaceLimitOrder("user-1", "BTC/USDT", order.Buy,
//	    decimal.NewFromInt(65000), decimal.RequireFromString("0.5"))
func PlaceLimitOrder(userID, symbol string, side Side, price, quantity decimal.Decimal) (*Order, error) {
	pair, err := kernel.TradingPairFromSymbol(symbol)
	if err != nil {
		return nil, err
	}

	if !price.IsPositive() {
		return nil, domainerr.NewInvalidPriceError(price, "must be greater than 0")
	}
	money, err := kernel.NewMoney(price, pair.Quote())
	if err != nil {
		return nil, err
	}

	return NewOrder(userID, pair, side, Limit, money, quantity)
}

// PlaceMarketOrder parses symbol and creates a Pending market order priced at
// zero in the pair's quote currency. Only the quantity is checked against the bounds.
func PlaceMarketOrder(userID, symbol string, side Side, quantity decimal.Decimal) (*Order, error) {
	pair, err := kernel.TradingPairFromSymbol(symbol)
	if err != nil {
		return nil, err
	}

	zero, err := kernel.NewMoney(decimal.Zero, pair.Quote())
	if err != nil {
		return nil, err
	}

	return NewOrder(userID, pair, side, Market, zero, quantity)
}

// RestoreOrder rebuilds an Order from persisted state.
//
// Placement bounds are not re-applied, so orders accepted under earlier limits
// still load. The structural invariants are checked and all failures are joined:
//   - every value object and enum must be valid
//   - quantity must be positive
//   - filled quantity must lie in [0, quantity]
//   - a priced order's currency must match the pair's quote currency
func RestoreOrder(
	id kernel.OrderID,
	userID string,
	pair kernel.TradingPair,
	side Side,
	orderType Type,
	price kernel.Money,
	quantity decimal.Decimal,
	filledQuantity decimal.Decimal,
	status Status,
	rejectReason string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		rejectReason: rejectReason,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setTradingPair(pair),
		o.setSide(side),
		o.setType(orderType),
		o.setPrice(price),
		o.setStatus(status),
		o.setQuantities(quantity, filledQuantity),
	); err != nil {
		return nil, err
	}

	if orderType == Limit && price.Currency() != pair.Quote() {
		return nil, currencyMismatch(price, pair)
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.OrderID { return o.id }

// UserID returns the id of the user who placed the order.
func (o *Order) UserID() string { return o.userID }

// TradingPair returns the traded base/quote pair.
func (o *Order) TradingPair() kernel.TradingPair { return o.pair }

// Side returns whether the order buys or sells the base currency.
func (o *Order) Side() Side { return o.side }

// Type returns the pricing behaviour of the order.
func (o *Order) Type() Type { return o.orderType }

// Price returns the limit price; it is zero in the quote currency for market orders.
func (o *Order) Price() kernel.Money { return o.price }

// Quantity returns the ordered amount of the base currency.
func (o *Order) Quantity() decimal.Decimal { return o.quantity }

// FilledQuantity returns the amount executed so far.
func (o *Order) FilledQuantity() decimal.Decimal { return o.filledQuantity }

// Status returns the current lifecycle state.
func (o *Order) Status() Status { return o.status }

// CreatedAt returns when the order was placed, in UTC.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the time of the last successful mutation, in UTC.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// RejectReason returns the reason passed to Reject, or "" for orders that were not rejected.
func (o *Order) RejectReason() string { return o.rejectReason }

// IsOwnedBy reports whether userID placed the order.
func (o *Order) IsOwnedBy(userID string) bool {
	return o.userID == userID
}

// Open accepts a Pending order.
func (o *Order) Open() error {
	newStatus, err := o.status.Open()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Fill records an execution of quantity units.
//
// The order must be Open or PartialFilled, quantity must be positive and must
// not exceed RemainingQuantity. When executionPrice is not nil it replaces the
// order price and must be denominated in the pair's quote currency.
// On success the status becomes Filled once nothing remains, PartialFilled otherwise.
// On failure the order is left untouched.
func (o *Order) Fill(quantity decimal.Decimal, executionPrice *kernel.Money) error {
	if err := o.status.ValidateFill(); err != nil {
		return err
	}

	if !quantity.IsPositive() {
		return domainerr.NewInvalidQuantityError(quantity, "filled quantity must be greater than 0")
	}

	newFilled := o.filledQuantity.Add(quantity)
	if newFilled.GreaterThan(o.quantity) {
		return domainerr.NewInvalidQuantityError(
			quantity,
			fmt.Sprintf("cannot fill %s, remaining quantity: %s", quantity, o.RemainingQuantity()),
		)
	}

	if executionPrice != nil {
		if err := executionPrice.Validate(); err != nil {
			return err
		}
		if executionPrice.Currency() != o.pair.Quote() {
			return currencyMismatch(*executionPrice, o.pair)
		}
	}

	newStatus, err := o.status.Fill(newFilled.GreaterThanOrEqual(o.quantity))
	if err != nil {
		return err
	}

	o.filledQuantity = newFilled
	if executionPrice != nil {
		o.price = *executionPrice
	}
	o.status = newStatus
	o.touch()
	return nil
}

// Cancel withdraws an Open or PartialFilled order.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Reject refuses a Pending order and records reason.
func (o *Order) Reject(reason string) error {
	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.rejectReason = strings.TrimSpace(reason)
	o.touch()
	return nil
}

// RemainingQuantity is quantity minus filled quantity.
func (o *Order) RemainingQuantity() decimal.Decimal {
	return o.quantity.Sub(o.filledQuantity)
}

// FilledPercentage is filled/quantity*100, or 0 for a zero quantity.
func (o *Order) FilledPercentage() decimal.Decimal {
	if o.quantity.IsZero() {
		return decimal.Zero
	}
	return o.filledQuantity.Div(o.quantity).Mul(decimal.NewFromInt(100))
}

// TotalValue is price times quantity in the price currency.
func (o *Order) TotalValue() (kernel.Money, error) {
	return o.price.Multiply(o.quantity)
}

// FilledValue is price times filled quantity in the price currency.
func (o *Order) FilledValue() (kernel.Money, error) {
	return o.price.Multiply(o.filledQuantity)
}

// IsOpen reports whether the order can still be filled or cancelled.
func (o *Order) IsOpen() bool {
	return o.status.IsOpen()
}

// IsClosed reports whether the order reached a terminal state.
func (o *Order) IsClosed() bool {
	return o.status.IsClosed()
}

// String renders a one-line summary, e.g.
// "Order(ORD-1A2B3C4D5E6F, BUY 0.5 BTC/USDT @ 65000 USDT, status=OPEN)".
func (o *Order) String() string {
	return fmt.Sprintf("Order(%s, %s %s %s @ %s, status=%s)",
		o.id, o.side, o.quantity, o.pair.Symbol(), o.price, o.status)
}

func (o *Order) touch() {
	now := time.Now().UTC()
	if now.Before(o.updatedAt) {
		now = o.updatedAt
	}
	o.updatedAt = now
}

func validatePrice(price kernel.Money, pair kernel.TradingPair) error {
	amount := price.Amount()
	switch {
	case !amount.IsPositive():
		return domainerr.NewInvalidPriceError(amount, "must be greater than 0")
	case amount.LessThan(MinPrice):
		return domainerr.NewInvalidPriceError(amount, fmt.Sprintf("must be at least %s", MinPrice))
	case amount.GreaterThan(MaxPrice):
		return domainerr.NewInvalidPriceError(amount, fmt.Sprintf("must not exceed %s", MaxPrice))
	case price.Currency() != pair.Quote():
		return currencyMismatch(price, pair)
	}
	return nil
}

func validateQuantity(quantity decimal.Decimal) error {
	switch {
	case !quantity.IsPositive():
		return domainerr.NewInvalidQuantityError(quantity, "must be greater than 0")
	case quantity.LessThan(MinQuantity):
		return domainerr.NewQuantityBelowMinimumError(quantity, MinQuantity)
	case quantity.GreaterThan(MaxQuantity):
		return domainerr.NewQuantityAboveMaximumError(quantity, MaxQuantity)
	}
	return nil
}

func currencyMismatch(price kernel.Money, pair kernel.TradingPair) error {
	return domainerr.NewOrderValidationError(fmt.Sprintf(
		"price currency %s does not match quote currency %s", price.Currency(), pair.Quote()))
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return errs.NewValueIsRequiredError("user id")
	}
	o.userID = userID
	return nil
}

func (o *Order) setTradingPair(pair kernel.TradingPair) error {
	if err := pair.Validate(); err != nil {
		return err
	}
	o.pair = pair
	return nil
}

func (o *Order) setSide(side Side) error {
	if err := side.Validate(); err != nil {
		return err
	}
	o.side = side
	return nil
}

func (o *Order) setType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	o.price = price
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setQuantities is used by RestoreOrder only.
func (o *Order) setQuantities(quantity, filled decimal.Decimal) error {
	if !quantity.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%s is not greater than 0", quantity),
		)
	}
	if filled.IsNegative() || filled.GreaterThan(quantity) {
		return errs.NewValueIsOutOfRangeError("filled quantity", filled, decimal.Zero, quantity)
	}
	o.quantity = quantity
	o.filledQuantity = filled
	return nil
}
