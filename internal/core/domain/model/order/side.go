package order

import (
	"fmt"
	"strings"

	"trading/internal/pkg/errs"
)

// Side is the direction of an order.
type Side int

const (
	UnknownSide Side = iota
	Buy
	Sell
)

// ParseSide converts "BUY" or "SELL" (any case) into a Side.
func ParseSide(s string) (Side, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BUY":
		return Buy, nil
	case "SELL":
		return Sell, nil
	default:
		return UnknownSide, errs.NewValueIsInvalidErrorWithCause(
			"side",
			fmt.Errorf("%q is not one of BUY, SELL", s),
		)
	}
}

// String returns the wire tag of the side, "BUY" or "SELL".
func (s Side) String() string {
	switch s {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	case UnknownSide:
		return "UNKNOWN"
	}
	return "UNKNOWN"
}

// Validate rejects UnknownSide and values outside the defined constants.
func (s Side) Validate() error {
	if s != Buy && s != Sell {
		return errs.NewValueIsInvalidErrorWithCause("side", fmt.Errorf("%d is not a valid side", s))
	}
	return nil
}
