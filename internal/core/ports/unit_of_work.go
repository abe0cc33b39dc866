package ports

import (
	"context"
)

// UnitOfWorkFactory returns a new UnitOfWork per command or query.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork groups order writes into a single transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit fails when Begin was not called.
	Commit(ctx context.Context) error

	// Rollback after Commit, or without Begin, does nothing.
	Rollback(ctx context.Context) error

	// OrderRepository is bound to the open transaction, or to the plain
	// connection outside of one.
	OrderRepository() OrderRepository
}
