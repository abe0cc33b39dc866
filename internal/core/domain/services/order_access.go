package services

import (
	"strings"

	"trading/internal/core/domain/domainerr"
	"trading/internal/core/domain/model/order"
	"trading/internal/pkg/errs"
)

// OrderAccess is a domain service deciding whether a user may read or modify an order.
//
// Business rules:
//   - Only the user that placed an order may access it
//   - The requesting user id must not be blank
//
// Example usage:
//
//	access := services.NewOrderAccess()
//	if err := access.Authorize(o, userID); err != nil {
//	    var denied *domainerr.UnauthorizedOrderAccessError
//	    if errors.As(err, &denied) {
//	        // respond with 403
//	    }
//	    return err
//	}
type OrderAccess struct{}

// NewOrderAccess creates a new OrderAccess instance.
func NewOrderAccess() OrderAccess {
	return OrderAccess{}
}

// Authorize returns nil when userID owns o.
//
// Returns:
//   - errs.ValueIsRequiredError if userID is blank
//   - the order's validation error if o was not properly constructed
//   - *domainerr.UnauthorizedOrderAccessError if o belongs to someone else
func (OrderAccess) Authorize(o *order.Order, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return errs.NewValueIsRequiredError("user id")
	}
	if err := o.Validate(); err != nil {
		return err
	}
	if !o.IsOwnedBy(userID) {
		return domainerr.NewUnauthorizedOrderAccessError(userID, o.ID().String())
	}
	return nil
}

// FilterBySymbol keeps the orders whose canonical symbol equals symbol exactly.
// An empty symbol keeps everything. The input order is preserved.
func (OrderAccess) FilterBySymbol(orders []*order.Order, symbol string) []*order.Order {
	if symbol == "" {
		return orders
	}
	filtered := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if o.TradingPair().Symbol() == symbol {
			filtered = append(filtered, o)
		}
	}
	return filtered
}
