package domainerr

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// sentinel is a category marker that unwraps to its parent category.
type sentinel struct {
	msg    string
	parent error
}

func (s *sentinel) Error() string { return s.msg }

func (s *sentinel) Unwrap() error { return s.parent }

func newSentinel(msg string, parent error) error {
	return &sentinel{msg: msg, parent: parent}
}

// ErrTradingDomain is the root of every trading domain failure.
var ErrTradingDomain error = &sentinel{msg: "trading domain error"}

// Categories.
var (
	ErrOrder          = newSentinel("order error", ErrTradingDomain)
	ErrBalance        = newSentinel("balance error", ErrTradingDomain)
	ErrTradingPair    = newSentinel("trading pair error", ErrTradingDomain)
	ErrPrice          = newSentinel("price error", ErrTradingDomain)
	ErrQuantity       = newSentinel("quantity error", ErrTradingDomain)
	ErrAuthorization  = newSentinel("authorization error", ErrTradingDomain)
	ErrTrade          = newSentinel("trade error", ErrTradingDomain)
	ErrMatchingEngine = newSentinel("matching engine error", ErrTradingDomain)
)

// Per-kind sentinels.
var (
	ErrOrderNotFound           = newSentinel("order not found", ErrOrder)
	ErrInvalidOrderOperation   = newSentinel("invalid order operation", ErrOrder)
	ErrOrderValidation         = newSentinel("order validation failed", ErrOrder)
	ErrInsufficientBalance     = newSentinel("insufficient balance", ErrBalance)
	ErrBalanceLock             = newSentinel("balance lock failed", ErrBalance)
	ErrInvalidTradingPair      = newSentinel("invalid trading pair", ErrTradingPair)
	ErrTradingPairNotActive    = newSentinel("trading pair not active", ErrTradingPair)
	ErrInvalidPrice            = newSentinel("invalid price", ErrPrice)
	ErrPriceOutOfRange         = newSentinel("price out of range", ErrPrice)
	ErrInvalidQuantity         = newSentinel("invalid quantity", ErrQuantity)
	ErrQuantityBelowMinimum    = newSentinel("quantity below minimum", ErrInvalidQuantity)
	ErrQuantityAboveMaximum    = newSentinel("quantity above maximum", ErrInvalidQuantity)
	ErrUnauthorizedOrderAccess = newSentinel("unauthorized order access", ErrAuthorization)
	ErrKYCRequired             = newSentinel("kyc required", ErrAuthorization)
	ErrTradeNotFound           = newSentinel("trade not found", ErrTrade)
	ErrInvalidTrade            = newSentinel("invalid trade", ErrTrade)
	ErrOrderMatchingFailed     = newSentinel("order matching failed", ErrMatchingEngine)
	ErrOrderBookFull           = newSentinel("order book full", ErrMatchingEngine)
)

// OrderNotFoundError is returned when no order exists for the given id.
type OrderNotFoundError struct {
	OrderID string
}

func NewOrderNotFoundError(orderID string) *OrderNotFoundError {
	return &OrderNotFoundError{OrderID: orderID}
}

func (e *OrderNotFoundError) Kind() Kind { return KindOrderNotFound }

func (e *OrderNotFoundError) Error() string {
	return fmt.Sprintf("order not found: %s", e.OrderID)
}

func (e *OrderNotFoundError) Unwrap() error { return ErrOrderNotFound }

// InvalidOrderOperationError is returned when a lifecycle operation is not
// legal from the order's current status.
type InvalidOrderOperationError struct {
	Message string
	Current string
	Allowed []string
}

func NewInvalidOrderOperationError(current string, allowed []string, message string) *InvalidOrderOperationError {
	return &InvalidOrderOperationError{Message: message, Current: current, Allowed: allowed}
}

func (e *InvalidOrderOperationError) Kind() Kind { return KindInvalidOrderOperation }

func (e *InvalidOrderOperationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("operation not allowed in status %s, allowed: %s", e.Current, strings.Join(e.Allowed, ", "))
}

func (e *InvalidOrderOperationError) Unwrap() error { return ErrInvalidOrderOperation }

// OrderValidationError reports an order that violates a cross-field rule.
type OrderValidationError struct {
	Message string
}

func NewOrderValidationError(message string) *OrderValidationError {
	return &OrderValidationError{Message: message}
}

func (e *OrderValidationError) Kind() Kind { return KindOrderValidation }

func (e *OrderValidationError) Error() string { return e.Message }

func (e *OrderValidationError) Unwrap() error { return ErrOrderValidation }

// InsufficientBalanceError reports that a user cannot cover the required amount.
type InsufficientBalanceError struct {
	UserID    string
	Currency  string
	Required  decimal.Decimal
	Available decimal.Decimal
}

func NewInsufficientBalanceError(
	userID, currency string,
	required, available decimal.Decimal,
) *InsufficientBalanceError {
	return &InsufficientBalanceError{
		UserID:    userID,
		Currency:  currency,
		Required:  required,
		Available: available,
	}
}

func (e *InsufficientBalanceError) Kind() Kind { return KindInsufficientBalance }

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient %s balance for user %s: required %s, available %s",
		e.Currency, e.UserID, e.Required, e.Available)
}

func (e *InsufficientBalanceError) Unwrap() error { return ErrInsufficientBalance }

// BalanceLockError reports a failure to reserve funds.
type BalanceLockError struct {
	Message string
}

func NewBalanceLockError(message string) *BalanceLockError {
	return &BalanceLockError{Message: message}
}

func (e *BalanceLockError) Kind() Kind { return KindBalanceLock }

func (e *BalanceLockError) Error() string { return e.Message }

func (e *BalanceLockError) Unwrap() error { return ErrBalanceLock }

// InvalidTradingPairError reports a symbol that cannot be parsed into a pair.
// Reason is optional.
type InvalidTradingPairError struct {
	Symbol string
	Reason string
}

func NewInvalidTradingPairError(symbol, reason string) *InvalidTradingPairError {
	return &InvalidTradingPairError{Symbol: symbol, Reason: reason}
}

func (e *InvalidTradingPairError) Kind() Kind { return KindInvalidTradingPair }

func (e *InvalidTradingPairError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid trading pair: %s", e.Symbol)
	}
	return fmt.Sprintf("invalid trading pair: %s. reason: %s", e.Symbol, e.Reason)
}

func (e *InvalidTradingPairError) Unwrap() error { return ErrInvalidTradingPair }

// TradingPairNotActiveError reports a pair that exists but is not tradable.
type TradingPairNotActiveError struct {
	Symbol string
}

func NewTradingPairNotActiveError(symbol string) *TradingPairNotActiveError {
	return &TradingPairNotActiveError{Symbol: symbol}
}

func (e *TradingPairNotActiveError) Kind() Kind { return KindTradingPairNotActive }

func (e *TradingPairNotActiveError) Error() string {
	return fmt.Sprintf("trading pair %s is not active", e.Symbol)
}

func (e *TradingPairNotActiveError) Unwrap() error { return ErrTradingPairNotActive }

// InvalidPriceError reports a price that breaks a pricing rule.
type InvalidPriceError struct {
	Price  decimal.Decimal
	Reason string
}

func NewInvalidPriceError(price decimal.Decimal, reason string) *InvalidPriceError {
	return &InvalidPriceError{Price: price, Reason: reason}
}

func (e *InvalidPriceError) Kind() Kind { return KindInvalidPrice }

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("invalid price %s: %s", e.Price, e.Reason)
}

func (e *InvalidPriceError) Unwrap() error { return ErrInvalidPrice }

// PriceOutOfRangeError reports a price outside of [Min, Max].
type PriceOutOfRangeError struct {
	Price decimal.Decimal
	Min   decimal.Decimal
	Max   decimal.Decimal
}

func NewPriceOutOfRangeError(price, minPrice, maxPrice decimal.Decimal) *PriceOutOfRangeError {
	return &PriceOutOfRangeError{Price: price, Min: minPrice, Max: maxPrice}
}

func (e *PriceOutOfRangeError) Kind() Kind { return KindPriceOutOfRange }

func (e *PriceOutOfRangeError) Error() string {
	return fmt.Sprintf("price %s out of range, allowed range: %s - %s", e.Price, e.Min, e.Max)
}

func (e *PriceOutOfRangeError) Unwrap() error { return ErrPriceOutOfRange }

// InvalidQuantityError reports a quantity that breaks a quantity rule.
type InvalidQuantityError struct {
	Quantity decimal.Decimal
	Reason   string
}

func NewInvalidQuantityError(quantity decimal.Decimal, reason string) *InvalidQuantityError {
	return &InvalidQuantityError{Quantity: quantity, Reason: reason}
}

func (e *InvalidQuantityError) Kind() Kind { return KindInvalidQuantity }

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("invalid quantity %s: %s", e.Quantity, e.Reason)
}

func (e *InvalidQuantityError) Unwrap() error { return ErrInvalidQuantity }

// QuantityBelowMinimumError is an invalid quantity smaller than Minimum.
type QuantityBelowMinimumError struct {
	Quantity decimal.Decimal
	Minimum  decimal.Decimal
}

func NewQuantityBelowMinimumError(quantity, minimum decimal.Decimal) *QuantityBelowMinimumError {
	return &QuantityBelowMinimumError{Quantity: quantity, Minimum: minimum}
}

func (e *QuantityBelowMinimumError) Kind() Kind { return KindQuantityBelowMinimum }

func (e *QuantityBelowMinimumError) Error() string {
	return fmt.Sprintf("invalid quantity %s: must be at least %s", e.Quantity, e.Minimum)
}

func (e *QuantityBelowMinimumError) Unwrap() error { return ErrQuantityBelowMinimum }

// QuantityAboveMaximumError is an invalid quantity larger than Maximum.
type QuantityAboveMaximumError struct {
	Quantity decimal.Decimal
	Maximum  decimal.Decimal
}

func NewQuantityAboveMaximumError(quantity, maximum decimal.Decimal) *QuantityAboveMaximumError {
	return &QuantityAboveMaximumError{Quantity: quantity, Maximum: maximum}
}

func (e *QuantityAboveMaximumError) Kind() Kind { return KindQuantityAboveMaximum }

func (e *QuantityAboveMaximumError) Error() string {
	return fmt.Sprintf("invalid quantity %s: must not exceed %s", e.Quantity, e.Maximum)
}

func (e *QuantityAboveMaximumError) Unwrap() error { return ErrQuantityAboveMaximum }

// UnauthorizedOrderAccessError is returned when a user touches an order they do not own.
type UnauthorizedOrderAccessError struct {
	UserID  string
	OrderID string
}

func NewUnauthorizedOrderAccessError(userID, orderID string) *UnauthorizedOrderAccessError {
	return &UnauthorizedOrderAccessError{UserID: userID, OrderID: orderID}
}

func (e *UnauthorizedOrderAccessError) Kind() Kind { return KindUnauthorizedOrderAccess }

func (e *UnauthorizedOrderAccessError) Error() string {
	return fmt.Sprintf("user %s not authorized to access order %s", e.UserID, e.OrderID)
}

func (e *UnauthorizedOrderAccessError) Unwrap() error { return ErrUnauthorizedOrderAccess }

// KYCRequiredError is returned when a user has not passed the required verification tier.
type KYCRequiredError struct {
	UserID       string
	RequiredTier int
}

func NewKYCRequiredError(userID string, requiredTier int) *KYCRequiredError {
	return &KYCRequiredError{UserID: userID, RequiredTier: requiredTier}
}

func (e *KYCRequiredError) Kind() Kind { return KindKYCRequired }

func (e *KYCRequiredError) Error() string {
	return fmt.Sprintf("user %s requires KYC tier %d", e.UserID, e.RequiredTier)
}

func (e *KYCRequiredError) Unwrap() error { return ErrKYCRequired }

// TradeNotFoundError is returned when no trade exists for the given id.
type TradeNotFoundError struct {
	TradeID string
}

func NewTradeNotFoundError(tradeID string) *TradeNotFoundError {
	return &TradeNotFoundError{TradeID: tradeID}
}

func (e *TradeNotFoundError) Kind() Kind { return KindTradeNotFound }

func (e *TradeNotFoundError) Error() string {
	return fmt.Sprintf("trade not found: %s", e.TradeID)
}

func (e *TradeNotFoundError) Unwrap() error { return ErrTradeNotFound }

type InvalidTradeError struct {
	Message string
}

func NewInvalidTradeError(message string) *InvalidTradeError {
	return &InvalidTradeError{Message: message}
}

func (e *InvalidTradeError) Kind() Kind { return KindInvalidTrade }

func (e *InvalidTradeError) Error() string { return e.Message }

func (e *InvalidTradeError) Unwrap() error { return ErrInvalidTrade }

type OrderMatchingFailedError struct {
	Message string
}

func NewOrderMatchingFailedError(message string) *OrderMatchingFailedError {
	return &OrderMatchingFailedError{Message: message}
}

func (e *OrderMatchingFailedError) Kind() Kind { return KindOrderMatchingFailed }

func (e *OrderMatchingFailedError) Error() string { return e.Message }

func (e *OrderMatchingFailedError) Unwrap() error { return ErrOrderMatchingFailed }

type OrderBookFullError struct {
	Symbol string
}

func NewOrderBookFullError(symbol string) *OrderBookFullError {
	return &OrderBookFullError{Symbol: symbol}
}

func (e *OrderBookFullError) Kind() Kind { return KindOrderBookFull }

func (e *OrderBookFullError) Error() string {
	return fmt.Sprintf("order book for %s is full", e.Symbol)
}

func (e *OrderBookFullError) Unwrap() error { return ErrOrderBookFull }
