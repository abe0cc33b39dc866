package commands

import (
	"errors"
	"strings"

	"trading/internal/core/domain/model/kernel"
	"trading/internal/pkg/errs"
	"trading/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
)

// CancelOrderCommand represents a user's request to cancel one of their orders.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	userID  string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand parses orderID and checks that userID is not blank.
func NewCancelOrderCommand(orderID, userID string) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

func (c CancelOrderCommand) UserID() string {
	return c.userID
}

func (c *CancelOrderCommand) setOrderID(orderID string) error {
	id, err := kernel.OrderIDFromString(orderID)
	if err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CancelOrderCommand) setUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return errs.NewValueIsRequiredError("user id")
	}
	c.userID = userID
	return nil
}
