// Package postgres persists orders in PostgreSQL through gorm.
//
// A GormUnitOfWork wraps one transaction. Orders saved through its
// OrderRepository are remembered and, once Commit succeeds, handed to every
// registered CommitObserver (the metrics adapter counts them there):
//
//	uow := postgres.NewGormUnitOfWorkFactory(db, orderMetrics).Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Save(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// A unit of work is not safe for concurrent use; create one per operation.
package postgres

import (
	"context"

	"trading/internal/adapters/out/postgres/orderrepo"
	"trading/internal/core/domain/model/kernel"
	"trading/internal/core/domain/model/order"
	"trading/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an order saved in the current transaction.
type trackedAggregate struct {
	ID        kernel.OrderID
	Aggregate any
}

// CommitObserver is notified with the orders saved by a unit of work
// once its transaction has been committed.
type CommitObserver interface {
	OrdersCommitted(orders []*order.Order)
}

// GormUnitOfWorkFactory shares one connection pool and observer list
// between the units of work it creates.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	observers []CommitObserver
}

// NewGormUnitOfWorkFactory registers observers that are called after every
// successful commit of a unit of work created by the factory.
func NewGormUnitOfWorkFactory(db *gorm.DB, observers ...CommitObserver) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, observers: observers}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		observers:         f.observers,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork is the gorm implementation of ports.UnitOfWork.
//
// Orders saved through OrderRepository are tracked. Commit hands the tracked
// orders to every CommitObserver and clears the list; Rollback only clears it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	observers         []CommitObserver
	trackedAggregates []trackedAggregate
}

// Begin opens the transaction. A second call reuses it.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit returns gorm.ErrInvalidTransaction outside of a transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return err
	}

	uow.notify()
	return nil
}

// Rollback discards all changes made within the current transaction.
// It is a no-op when no transaction is active, so it can be deferred
// right after Begin and still run after a successful Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	uow.trackedAggregates = uow.trackedAggregates[:0]
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository writes through the open transaction, or straight to the
// pool when there is none.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return orderrepo.NewGormOrderRepository(db, uow)
}

// TrackAggregate is called by the order repository after each successful Save.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.OrderID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// notify passes the latest saved state of each tracked order to the observers.
func (uow *GormUnitOfWork) notify() {
	tracked := uow.trackedAggregates
	uow.trackedAggregates = make([]trackedAggregate, 0)
	if len(uow.observers) == 0 || len(tracked) == 0 {
		return
	}

	seen := make(map[string]struct{}, len(tracked))
	orders := make([]*order.Order, 0, len(tracked))
	for i := len(tracked) - 1; i >= 0; i-- {
		o, ok := tracked[i].Aggregate.(*order.Order)
		if !ok {
			continue
		}
		if _, dup := seen[tracked[i].ID.String()]; dup {
			continue
		}
		seen[tracked[i].ID.String()] = struct{}{}
		orders = append(orders, o)
	}

	for _, observer := range uow.observers {
		observer.OrdersCommitted(orders)
	}
}
