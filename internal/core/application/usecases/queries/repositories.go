// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries load aggregates through the repository contract and return projections.
package queries

import (
	"trading/internal/core/ports"
)

type (
	// OrderReader exposes the order repository for read-only use.
	// Reads run outside a transaction.
	OrderReader interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderReaderFactory creates OrderReader instances.
	OrderReaderFactory interface {
		Create() OrderReader
	}
)
