package commands

import (
	"context"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/order"
	"ridehail/internal/core/domain/model/trip"
	"ridehail/internal/core/domain/services"
)

// Booking is the outcome of a successful CreateOrderCommand.
type Booking struct {
	Order *order.Order
	Trip  *trip.Trip
}

// CreateOrderCommandHandler books a trip: it prices the route, records the
// trip and opens a pending order for it in one transaction.
type CreateOrderCommandHandler struct {
	uowFactory BookingUoWFactory
	pricing    trip.PricingPolicy
	policy     services.OrderPolicy
}

func NewCreateOrderCommandHandler(uowFactory BookingUoWFactory, pricing trip.PricingPolicy) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
		policy:     services.NewOrderPolicy(),
	}
}

// Handle returns errs.ForbiddenError for non-rider callers before touching
// storage.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (Booking, error) {
	if err := cmd.Validate(); err != nil {
		return Booking{}, err
	}

	if err := h.policy.CanCreate(cmd.Caller().Role()); err != nil {
		return Booking{}, err
	}

	price := h.pricing.Price(cmd.Origin(), cmd.Destination())
	t, err := trip.NewTrip(kernel.NewUUID(), cmd.Origin(), cmd.Destination(), price)
	if err != nil {
		return Booking{}, err
	}

	o, err := order.NewOrder(kernel.NewUUID(), cmd.Caller().ID(), t.ID(), cmd.Date())
	if err != nil {
		return Booking{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return Booking{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TripRepository().Add(ctx, t); err != nil {
		return Booking{}, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return Booking{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return Booking{}, err
	}

	return Booking{Order: o, Trip: t}, nil
}
