package commands

import (
	"errors"
	"strings"
	"time"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/order"
	"ridehail/internal/pkg/errs"
	"ridehail/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a rider booking a trip from origin to
// destination on a calendar date.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(caller, "Station", "Airport", "2024-01-01")
//	if err != nil {
//	    return fmt.Errorf("invalid booking: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, trip.NewFixedPricing())
//	booked, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	caller      kernel.Caller
	origin      string
	destination string
	date        time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the booking input. Every failing field is
// reported at once as an errs.ValidationError.
func NewCreateOrderCommand(caller kernel.Caller, origin, destination, date string) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errs.NewValidationError(
		cmd.setOrigin(origin),
		cmd.setDestination(destination),
		cmd.setDate(date),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	if err := caller.Validate(); err != nil {
		return CreateOrderCommand{}, errs.NewUnauthenticatedErrorWithCause("caller is not resolved", err)
	}
	cmd.caller = caller

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Caller() kernel.Caller { return c.caller }

func (c CreateOrderCommand) Origin() string { return c.origin }

func (c CreateOrderCommand) Destination() string { return c.destination }

// Date is the booked calendar day at midnight UTC.
func (c CreateOrderCommand) Date() time.Time { return c.date }

func (c *CreateOrderCommand) setOrigin(origin string) error {
	origin = strings.TrimSpace(origin)
	if origin == "" {
		return errs.NewValueIsRequiredError("origin")
	}
	if err := checkStoredText("origin", origin); err != nil {
		return err
	}

	c.origin = origin
	return nil
}

func (c *CreateOrderCommand) setDestination(destination string) error {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	if err := checkStoredText("destination", destination); err != nil {
		return err
	}

	c.destination = destination
	return nil
}

func (c *CreateOrderCommand) setDate(date string) error {
	d, err := order.ParseDate(date)
	if err != nil {
		return err
	}

	c.date = d
	return nil
}
