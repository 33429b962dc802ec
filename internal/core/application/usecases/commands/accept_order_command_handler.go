package commands

import (
	"context"

	"ridehail/internal/core/domain/model/order"
	"ridehail/internal/core/domain/services"
)

// AcceptOrderCommandHandler assigns the calling driver to a pending order.
// When several drivers race for the same order exactly one wins; the others
// get the order's conflict error.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.OrderPolicy
}

func NewAcceptOrderCommandHandler(uowFactory OrderUoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewOrderPolicy(),
	}
}

func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.CanAccept(cmd.Caller().Role()); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	expected := o.Status()
	if err = o.Accept(cmd.Caller().ID()); err != nil {
		return nil, err
	}

	// The row lock already serializes competing accepts; the conditional
	// write still refuses if the status moved under us.
	if err = orderRepo.UpdateIfStatus(ctx, o, expected); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
