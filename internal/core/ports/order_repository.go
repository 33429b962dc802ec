package ports

import (
	"context"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/order"
)

// OrderRepository is the persistence contract of the order aggregate.
type OrderRepository interface {
	// Add persists a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get loads an order. Returns errs.ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate loads an order and locks it until the surrounding unit of
	// work ends, so competing transitions on the same order run one at a time.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateIfStatus writes status and driver only if the stored status still
	// equals expected. Otherwise it returns an errs.ConflictError and writes nothing.
	UpdateIfStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error
}
