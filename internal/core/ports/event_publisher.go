package ports

import (
	"context"
	"time"

	"ridehail/internal/core/domain/model/order"
)

// OrderChanged is emitted after a committed unit of work created or
// transitioned an order.
type OrderChanged struct {
	OrderID    string    `json:"order_id"`
	RiderID    string    `json:"rider_id"`
	DriverID   *string   `json:"driver_id"`
	TripID     string    `json:"trip_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewOrderChanged snapshots o.
func NewOrderChanged(o *order.Order, at time.Time) OrderChanged {
	var driverID *string
	if d := o.DriverID(); d != nil {
		s := d.String()
		driverID = &s
	}
	return OrderChanged{
		OrderID:    o.ID().String(),
		RiderID:    o.RiderID().String(),
		DriverID:   driverID,
		TripID:     o.TripID().String(),
		Status:     o.Status().String(),
		OccurredAt: at.UTC(),
	}
}

// OrderEventPublisher delivers OrderChanged events to other services.
type OrderEventPublisher interface {
	Publish(ctx context.Context, event OrderChanged) error
}
