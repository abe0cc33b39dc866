// Package domainerr defines the failure taxonomy of the trading domain.
//
// Every failure is a concrete struct type carrying the structured context a
// caller needs to react programmatically (ids, offending values, thresholds,
// reasons). Each type reports its Kind and unwraps to a sentinel that belongs
// to a category, and every category unwraps to ErrTradingDomain:
//
//	ErrTradingDomain
//	├── ErrOrder          (OrderNotFound, InvalidOrderOperation, OrderValidation)
//	├── ErrBalance        (InsufficientBalance, BalanceLock)
//	├── ErrTradingPair    (InvalidTradingPair, TradingPairNotActive)
//	├── ErrPrice          (InvalidPrice, PriceOutOfRange)
//	├── ErrQuantity       (InvalidQuantity ─┬─ QuantityBelowMinimum
//	│                                       └─ QuantityAboveMaximum)
//	├── ErrAuthorization  (UnauthorizedOrderAccess, KYCRequired)
//	├── ErrTrade          (TradeNotFound, InvalidTrade)
//	└── ErrMatchingEngine (OrderMatchingFailed, OrderBookFull)
//
// Callers classify failures with errors.Is against a sentinel, or extract
// the payload with errors.As against the concrete type:
//
//	var notFound *domainerr.OrderNotFoundError
//	if errors.As(err, &notFound) {
//	    log.Printf("missing order %s", notFound.OrderID)
//	}
//	if errors.Is(err, domainerr.ErrQuantity) {
//	    // any quantity failure, including below-minimum
//	}
package domainerr
