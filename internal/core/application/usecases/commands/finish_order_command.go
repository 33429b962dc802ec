package commands

import (
	"errors"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/pkg/errs"
	"ridehail/internal/pkg/guard"
)

var ErrFinishOrderCommandIsNotConstructed = errors.New(
	"FinishOrderCommand must be created via NewFinishOrderCommand constructor",
)

// FinishOrderCommand closes an on-going order. Either participant may send it.
type FinishOrderCommand struct { //nolint:recvcheck //using for validation
	caller  kernel.Caller
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewFinishOrderCommand(caller kernel.Caller, orderID kernel.UUID) (FinishOrderCommand, error) {
	cmd := FinishOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errs.NewValidationError(cmd.setOrderID(orderID)); err != nil {
		return FinishOrderCommand{}, err
	}

	if err := caller.Validate(); err != nil {
		return FinishOrderCommand{}, errs.NewUnauthenticatedErrorWithCause("caller is not resolved", err)
	}
	cmd.caller = caller

	return cmd, nil
}

func (c FinishOrderCommand) Validate() error {
	return c.guard.Validate(ErrFinishOrderCommandIsNotConstructed)
}

func (c FinishOrderCommand) Caller() kernel.Caller { return c.caller }

func (c FinishOrderCommand) OrderID() kernel.UUID { return c.orderID }

func (c *FinishOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("orderId")
	}

	c.orderID = orderID
	return nil
}
