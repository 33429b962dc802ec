// Package commands contains the operations that change state: order creation
// and the order transitions, plus user registration and login.
// Every command is built by a validating constructor and executed by a handler
// that owns the transaction.
package commands

import (
	"context"

	"ridehail/internal/core/ports"
)

// Unit of Work interfaces, narrowed per handler.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	TripRepoFactory interface {
		TripRepository() ports.TripRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// OrderUoW is used by the order transitions (cancel, accept, finish).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// BookingUoW covers order creation, which writes a trip and an order
	// in one transaction.
	BookingUoW interface {
		TxManager
		OrderRepoFactory
		TripRepoFactory
	}

	BookingUoWFactory interface {
		Create() BookingUoW
	}

	// UserUoW is used by registration and login.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}
)
