package ports

import (
	"context"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/trip"
)

// TripRepository is the persistence contract of the trip catalog.
// Trips are insert-only.
type TripRepository interface {
	Add(ctx context.Context, aggregate *trip.Trip) error
	Get(ctx context.Context, id kernel.UUID) (*trip.Trip, error)
}
