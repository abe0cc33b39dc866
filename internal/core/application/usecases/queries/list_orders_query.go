package queries

import (
	"errors"
	"strings"

	"trading/internal/core/domain/model/kernel"
	"trading/internal/pkg/errs"
	"trading/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves the orders of one user, newest first,
// optionally restricted to a single trading pair.
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	userID string
	symbol string

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a list query. An empty symbol lists every pair.
// A non-empty symbol is normalized to its canonical "BASE/QUOTE" form,
// so "btc-usdt" and "BTC/USDT" select the same orders.
func NewListOrdersQuery(userID, symbol string) (ListOrdersQuery, error) {
	q := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setUserID(userID),
		q.setSymbol(symbol),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) UserID() string {
	return q.userID
}

// Symbol returns the canonical symbol filter or "" when unfiltered.
func (q ListOrdersQuery) Symbol() string {
	return q.symbol
}

func (q *ListOrdersQuery) setUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return errs.NewValueIsRequiredError("user id")
	}
	q.userID = userID
	return nil
}

// setSymbol stores the canonical BASE/QUOTE form, so "btc-usdt" finds orders stored
// as "BTC/USDT" and a filter that can never match any stored symbol fails early.
func (q *ListOrdersQuery) setSymbol(symbol string) error {
	if strings.TrimSpace(symbol) == "" {
		return nil
	}
	pair, err := kernel.TradingPairFromSymbol(symbol)
	if err != nil {
		return err
	}
	q.symbol = pair.Symbol()
	return nil
}
