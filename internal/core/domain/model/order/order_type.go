package order

import (
	"fmt"
	"strings"

	"trading/internal/pkg/errs"
)

// Type is the pricing behaviour of an order.
type Type int

const (
	UnknownType Type = iota
	// Limit orders execute at a fixed price.
	Limit
	// Market orders carry no price and execute at the prevailing market price.
	Market
	// StopLoss is accepted by the model but no placement flow produces it.
	StopLoss
)

// ParseType converts "LIMIT", "MARKET" or "STOP_LOSS" (any case) into a Type.
func ParseType(s string) (Type, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LIMIT":
		return Limit, nil
	case "MARKET":
		return Market, nil
	case "STOP_LOSS":
		return StopLoss, nil
	default:
		return UnknownType, errs.NewValueIsInvalidErrorWithCause(
			"order type",
			fmt.Errorf("%q is not one of LIMIT, MARKET, STOP_LOSS", s),
		)
	}
}

// String returns the wire tag of the type, e.g. "STOP_LOSS".
func (t Type) String() string {
	switch t {
	case Limit:
		return "LIMIT"
	case Market:
		return "MARKET"
	case StopLoss:
		return "STOP_LOSS"
	case UnknownType:
		return "UNKNOWN"
	}
	return "UNKNOWN"
}

// Validate rejects UnknownType and values outside the defined constants.
func (t Type) Validate() error {
	if t != Limit && t != Market && t != StopLoss {
		return errs.NewValueIsInvalidErrorWithCause("order type", fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}
