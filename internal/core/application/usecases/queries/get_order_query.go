package queries

import (
	"errors"
	"strings"

	"trading/internal/core/domain/model/kernel"
	"trading/internal/pkg/errs"
	"trading/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order on behalf of its owner.
//
// Example:
//
//	query, err := NewGetOrderQuery("ORD-1A2B3C4D5E6F", "user-1")
//	if err != nil {
//	    return err
//	}
//
//	detail, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//	fmt.Printf("%s filled %s%%\n", detail.OrderID, detail.FilledPercentage)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	userID  string

	guard guard.ConstructorGuard
}

// NewGetOrderQuery parses orderID and checks that userID is not blank.
func NewGetOrderQuery(orderID, userID string) (GetOrderQuery, error) {
	q := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setOrderID(orderID),
		q.setUserID(userID),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.OrderID {
	return q.orderID
}

func (q GetOrderQuery) UserID() string {
	return q.userID
}

func (q *GetOrderQuery) setOrderID(orderID string) error {
	id, err := kernel.OrderIDFromString(orderID)
	if err != nil {
		return err
	}
	q.orderID = id
	return nil
}

func (q *GetOrderQuery) setUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return errs.NewValueIsRequiredError("user id")
	}
	q.userID = userID
	return nil
}
