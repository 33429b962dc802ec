package commands

import (
	"errors"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/pkg/errs"
	"ridehail/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand is a rider withdrawing their own pending order.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	caller  kernel.Caller
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(caller kernel.Caller, orderID kernel.UUID) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errs.NewValidationError(cmd.setOrderID(orderID)); err != nil {
		return CancelOrderCommand{}, err
	}

	if err := caller.Validate(); err != nil {
		return CancelOrderCommand{}, errs.NewUnauthenticatedErrorWithCause("caller is not resolved", err)
	}
	cmd.caller = caller

	return cmd, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) Caller() kernel.Caller { return c.caller }

func (c CancelOrderCommand) OrderID() kernel.UUID { return c.orderID }

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("orderId")
	}

	c.orderID = orderID
	return nil
}
