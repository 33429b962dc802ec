package trip

import (
	"errors"
	"fmt"
	"strings"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/pkg/errs"
)

// ErrTripIsNotConstructed is returned by Validate for a Trip built as a struct literal.
var ErrTripIsNotConstructed = errors.New("Trip must be created via NewTrip")

// Trip is the route and price record created together with an order.
// It is never modified after creation.
type Trip struct {
	id          kernel.UUID
	origin      string
	destination string
	price       int64

	isConstructed bool
}

// NewTrip validates all fields and reports every failing one.
//
// Parameters:
//   - id: Unique identifier of the trip
//   - origin, destination: Free-form place names, trimmed and required
//   - price: Amount charged, greater than 0 (see PricingPolicy)
//
// Example:
//
//	pricing := NewFixedPricing()
//	t, err := NewTrip(kernel.NewUUID(), "jakarta", "bandung", pricing.Price("jakarta", "bandung"))
func NewTrip(id kernel.UUID, origin, destination string, price int64) (*Trip, error) {
	t := &Trip{isConstructed: true}

	if err := errors.Join(
		t.setID(id),
		t.setOrigin(origin),
		t.setDestination(destination),
		t.setPrice(price),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// Validate returns ErrTripIsNotConstructed unless t came from NewTrip.
func (t *Trip) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTripIsNotConstructed
	}
	return nil
}

// ID returns the trip's unique identifier.
func (t *Trip) ID() kernel.UUID { return t.id }

// Origin returns the pickup place.
func (t *Trip) Origin() string { return t.origin }

// Destination returns the drop-off place.
func (t *Trip) Destination() string { return t.destination }

// Price returns the amount charged, in the smallest currency unit.
func (t *Trip) Price() int64 { return t.price }

func (t *Trip) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	t.id = id
	return nil
}

func (t *Trip) setOrigin(origin string) error {
	origin = strings.TrimSpace(origin)
	if origin == "" {
		return errs.NewValueIsRequiredError("origin")
	}
	t.origin = origin
	return nil
}

func (t *Trip) setDestination(destination string) error {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	t.destination = destination
	return nil
}

func (t *Trip) setPrice(price int64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is not greater than 0", price))
	}
	t.price = price
	return nil
}
