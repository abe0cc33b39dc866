// Package commands holds the write side of the order lifecycle: placing and
// cancelling orders. Each command is a guarded value validated before any
// storage is touched; its handler runs the change inside one unit of work.
package commands

import (
	"trading/internal/core/ports"
)

// OrderUoW is the transaction boundary a command handler runs in.
// Orders saved through OrderRepository become visible only after Commit.
type OrderUoW interface {
	ports.UnitOfWork
}

// OrderUoWFactory hands out a fresh OrderUoW per handled command.
type OrderUoWFactory interface {
	Create() OrderUoW
}
