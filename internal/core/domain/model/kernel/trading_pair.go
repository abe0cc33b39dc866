package kernel

import (
	"errors"
	"fmt"
	"strings"

	"trading/internal/core/domain/domainerr"
	"trading/internal/pkg/errs"
	"trading/internal/pkg/guard"
)

const (
	// SymbolSeparator is the separator used by the canonical symbol form.
	SymbolSeparator = "/"
	// AltSymbolSeparator is accepted when parsing symbols such as "BTC-USDT".
	AltSymbolSeparator = "-"
)

// ErrTradingPairIsNotConstructed is returned when a zero-value TradingPair is used.
var ErrTradingPairIsNotConstructed = errs.NewValueIsRequiredError(
	"trading pair must be created via NewTradingPair or TradingPairFromSymbol")

// TradingPair is an immutable base/quote currency pair, e.g. BTC/USDT.
// Both codes are stored upper-cased. The price of an order on the pair is
// denominated in the quote currency.
type TradingPair struct { //nolint:recvcheck //using for validation
	base  string
	quote string
	guard guard.ConstructorGuard
}

// NewTradingPair creates a pair from its base and quote codes.
// Codes are trimmed and upper-cased; a blank code is a ValueIsRequired error.
func NewTradingPair(base, quote string) (TradingPair, error) {
	p := TradingPair{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setBase(base), p.setQuote(quote)); err != nil {
		return TradingPair{}, err
	}

	return p, nil
}

// TradingPairFromSymbol parses a symbol of the form "BASE/QUOTE" or "BASE-QUOTE".
// Whitespace around each segment is ignored. "/" takes precedence over "-".
//
// Any malformed input yields a *domainerr.InvalidTradingPairError:
//
//	kernel.TradingPairFromSymbol("btc-usdt")  // BTC/USDT
//	kernel.TradingPairFromSymbol(" ETH / BTC ") // ETH/BTC
//	kernel.TradingPairFromSymbol("BTCUSDT")   // error
func TradingPairFromSymbol(symbol string) (TradingPair, error) {
	var parts []string
	switch {
	case strings.Contains(symbol, SymbolSeparator):
		parts = strings.Split(symbol, SymbolSeparator)
	case strings.Contains(symbol, AltSymbolSeparator):
		parts = strings.Split(symbol, AltSymbolSeparator)
	default:
		return TradingPair{}, domainerr.NewInvalidTradingPairError(
			symbol, "expected format BTC/USDT or BTC-USDT")
	}

	if len(parts) != 2 {
		return TradingPair{}, domainerr.NewInvalidTradingPairError(
			symbol, fmt.Sprintf("expected exactly 2 segments, got %d", len(parts)))
	}

	pair, err := NewTradingPair(parts[0], parts[1])
	if err != nil {
		return TradingPair{}, domainerr.NewInvalidTradingPairError(symbol, "base and quote currencies are required")
	}
	return pair, nil
}

// Validate checks that the TradingPair was created through a constructor.
func (p TradingPair) Validate() error {
	return p.guard.Validate(ErrTradingPairIsNotConstructed)
}

// Base returns the base currency code.
func (p TradingPair) Base() string {
	return p.base
}

// Quote returns the quote currency code.
func (p TradingPair) Quote() string {
	return p.quote
}

// Symbol returns the canonical "BASE/QUOTE" form.
func (p TradingPair) Symbol() string {
	return p.base + SymbolSeparator + p.quote
}

func (p TradingPair) String() string {
	return p.Symbol()
}

// IsEqual reports whether both pairs have the same base and quote.
func (p TradingPair) IsEqual(other TradingPair) bool {
	return p.base == other.base && p.quote == other.quote
}

func (p *TradingPair) setBase(base string) error {
	base = strings.ToUpper(strings.TrimSpace(base))
	if base == "" {
		return errs.NewValueIsRequiredError("base currency")
	}
	p.base = base
	return nil
}

func (p *TradingPair) setQuote(quote string) error {
	quote = strings.ToUpper(strings.TrimSpace(quote))
	if quote == "" {
		return errs.NewValueIsRequiredError("quote currency")
	}
	p.quote = quote
	return nil
}
