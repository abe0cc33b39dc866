package http_test

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"trading/internal/core/application/usecases/commands"
	"trading/internal/core/application/usecases/queries"
	"trading/internal/core/domain/domainerr"
	"trading/internal/core/domain/model/kernel"
	"trading/internal/core/domain/model/order"
	"trading/internal/core/ports"
)

// memoryStore is an in-process order store shared by every unit of work of a test.
type memoryStore struct {
	mu     sync.Mutex
	orders map[string]*order.Order
	failOn string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{orders: make(map[string]*order.Order)}
}

func (s *memoryStore) Create() commands.OrderUoW {
	return memoryUoW{store: s}
}

type memoryUoW struct {
	store *memoryStore
}

func (memoryUoW) Begin(context.Context) error    { return nil }
func (memoryUoW) Commit(context.Context) error   { return nil }
func (memoryUoW) Rollback(context.Context) error { return nil }

func (u memoryUoW) OrderRepository() ports.OrderRepository {
	return memoryRepository(u)
}

type readerFactory struct {
	store *memoryStore
}

func (f readerFactory) Create() queries.OrderReader {
	return memoryUoW(f)
}

type memoryRepository struct {
	store *memoryStore
}

func (r memoryRepository) Save(_ context.Context, o *order.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.failOn == "save" {
		return context.DeadlineExceeded
	}
	r.store.orders[o.ID().String()] = o
	return nil
}

func (r memoryRepository) FindByID(_ context.Context, id kernel.OrderID) (*order.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	o, ok := r.store.orders[id.String()]
	if !ok {
		return nil, domainerr.NewOrderNotFoundError(id.String())
	}
	return o, nil
}

func (r memoryRepository) FindByUserID(_ context.Context, userID string) ([]*order.Order, error) {
	return r.filter(func(o *order.Order) bool { return o.UserID() == userID }), nil
}

func (r memoryRepository) FindBySymbol(_ context.Context, symbol string) ([]*order.Order, error) {
	return r.filter(func(o *order.Order) bool { return o.TradingPair().Symbol() == symbol }), nil
}

func (r memoryRepository) FindOpenOrders(_ context.Context, userID string) ([]*order.Order, error) {
	return r.filter(func(o *order.Order) bool {
		return o.IsOpen() && (userID == "" || o.UserID() == userID)
	}), nil
}

func (r memoryRepository) CountOpenOrdersBySymbol(_ context.Context) (map[string]int, error) {
	counts := make(map[string]int)
	for _, o := range r.filter(func(o *order.Order) bool { return o.IsOpen() }) {
		counts[o.TradingPair().Symbol()]++
	}
	return counts, nil
}

func (r memoryRepository) FindByStatus(_ context.Context, status order.Status, userID string) ([]*order.Order, error) {
	return r.filter(func(o *order.Order) bool {
		return o.Status() == status && (userID == "" || o.UserID() == userID)
	}), nil
}

func (r memoryRepository) Delete(_ context.Context, id kernel.OrderID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.orders, id.String())
	return nil
}

func (r memoryRepository) filter(keep func(*order.Order) bool) []*order.Order {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	result := make([]*order.Order, 0)
	for _, o := range r.store.orders {
		if keep(o) {
			result = append(result, o)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt().After(result[j].CreatedAt())
	})
	return result
}

// requestRecorder captures request observations made by the metrics middleware.
type requestRecorder struct {
	mu    sync.Mutex
	paths []string
}

func (r *requestRecorder) ObserveRequest(method, path string, status int, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, method+" "+path+" "+strconv.Itoa(status))
}

func (r *requestRecorder) Observed() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}
