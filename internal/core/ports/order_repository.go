package ports

import (
	"context"

	"trading/internal/core/domain/model/kernel"
	"trading/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Every Find query returns orders newest first (by creation time). Implementations
// never commit on their own; the surrounding UnitOfWork does.
type OrderRepository interface {
	// Save inserts the order or overwrites the stored row with the same id.
	Save(ctx context.Context, aggregate *order.Order) error

	// FindByID returns *domainerr.OrderNotFoundError when no order has the id.
	FindByID(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// FindByUserID returns every order placed by userID.
	FindByUserID(ctx context.Context, userID string) ([]*order.Order, error)

	// FindBySymbol returns every order on the canonical symbol, e.g. "BTC/USDT".
	FindBySymbol(ctx context.Context, symbol string) ([]*order.Order, error)

	// FindOpenOrders returns the Open and PartialFilled orders, limited to
	// userID unless it is empty.
	FindOpenOrders(ctx context.Context, userID string) ([]*order.Order, error)

	// CountOpenOrdersBySymbol returns the number of Open and PartialFilled
	// orders per canonical symbol without loading them. Symbols with no open
	// orders are absent from the map.
	CountOpenOrdersBySymbol(ctx context.Context) (map[string]int, error)

	// FindByStatus returns the orders in status, limited to userID unless it is empty.
	FindByStatus(ctx context.Context, status order.Status, userID string) ([]*order.Order, error)

	// Delete removes the order. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id kernel.OrderID) error
}
