package queries

import (
	"errors"

	"trading/internal/pkg/guard"
)

var (
	ErrCountOpenOrdersQueryIsNotConstructed = errors.New(
		"CountOpenOrdersQuery must be created via NewCountOpenOrdersQuery constructor",
	)
)

// CountOpenOrdersQuery counts the OPEN and PARTIAL_FILLED orders of every user.
type CountOpenOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewCountOpenOrdersQuery creates a parameterless count query.
func NewCountOpenOrdersQuery() CountOpenOrdersQuery {
	return CountOpenOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q CountOpenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrCountOpenOrdersQueryIsNotConstructed)
}

// CountOpenOrdersQueryResponse holds the open order count overall and per symbol.
type CountOpenOrdersQueryResponse struct {
	Total    int
	BySymbol map[string]int
}
