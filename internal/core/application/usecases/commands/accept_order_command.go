package commands

import (
	"errors"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/pkg/errs"
	"ridehail/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand is a driver taking a pending order from the pool.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	caller  kernel.Caller
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAcceptOrderCommand(caller kernel.Caller, orderID kernel.UUID) (AcceptOrderCommand, error) {
	cmd := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errs.NewValidationError(cmd.setOrderID(orderID)); err != nil {
		return AcceptOrderCommand{}, err
	}

	if err := caller.Validate(); err != nil {
		return AcceptOrderCommand{}, errs.NewUnauthenticatedErrorWithCause("caller is not resolved", err)
	}
	cmd.caller = caller

	return cmd, nil
}

func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

func (c AcceptOrderCommand) Caller() kernel.Caller { return c.caller }

func (c AcceptOrderCommand) OrderID() kernel.UUID { return c.orderID }

func (c *AcceptOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("orderId")
	}

	c.orderID = orderID
	return nil
}
