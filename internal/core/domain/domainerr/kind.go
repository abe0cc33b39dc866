package domainerr

import "errors"

// Kind identifies the concrete failure variant without a type switch.
type Kind int

const (
	KindUnknown Kind = iota
	KindOrderNotFound
	KindInvalidOrderOperation
	KindOrderValidation
	KindInsufficientBalance
	KindBalanceLock
	KindInvalidTradingPair
	KindTradingPairNotActive
	KindInvalidPrice
	KindPriceOutOfRange
	KindInvalidQuantity
	KindQuantityBelowMinimum
	KindQuantityAboveMaximum
	KindUnauthorizedOrderAccess
	KindKYCRequired
	KindTradeNotFound
	KindInvalidTrade
	KindOrderMatchingFailed
	KindOrderBookFull
)

var kindNames = map[Kind]string{
	KindUnknown:                 "UNKNOWN",
	KindOrderNotFound:           "ORDER_NOT_FOUND",
	KindInvalidOrderOperation:   "INVALID_ORDER_OPERATION",
	KindOrderValidation:         "ORDER_VALIDATION",
	KindInsufficientBalance:     "INSUFFICIENT_BALANCE",
	KindBalanceLock:             "BALANCE_LOCK",
	KindInvalidTradingPair:      "INVALID_TRADING_PAIR",
	KindTradingPairNotActive:    "TRADING_PAIR_NOT_ACTIVE",
	KindInvalidPrice:            "INVALID_PRICE",
	KindPriceOutOfRange:         "PRICE_OUT_OF_RANGE",
	KindInvalidQuantity:         "INVALID_QUANTITY",
	KindQuantityBelowMinimum:    "QUANTITY_BELOW_MINIMUM",
	KindQuantityAboveMaximum:    "QUANTITY_ABOVE_MAXIMUM",
	KindUnauthorizedOrderAccess: "UNAUTHORIZED_ORDER_ACCESS",
	KindKYCRequired:             "KYC_REQUIRED",
	KindTradeNotFound:           "TRADE_NOT_FOUND",
	KindInvalidTrade:            "INVALID_TRADE",
	KindOrderMatchingFailed:     "ORDER_MATCHING_FAILED",
	KindOrderBookFull:           "ORDER_BOOK_FULL",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// Error is implemented by every variant of the taxonomy.
type Error interface {
	error
	Kind() Kind
}

// KindOf returns the Kind of the first domain error in err's chain,
// or KindUnknown if there is none.
func KindOf(err error) Kind {
	var domainErr Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind()
	}
	return KindUnknown
}
