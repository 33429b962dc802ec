package commands

import (
	"context"

	"ridehail/internal/core/domain/model/order"
	"ridehail/internal/core/domain/services"
)

// CancelOrderCommandHandler moves a pending order to canceled on behalf of
// the rider who booked it.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.OrderPolicy
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewOrderPolicy(),
	}
}

// Handle checks, in order: the caller is a rider, the order exists, the
// caller owns it, and it is still pending.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.CanCancel(cmd.Caller().Role()); err != nil {
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

	if err = h.policy.CanCancelOrder(cmd.Caller(), o); err != nil {
		return nil, err
	}

	expected := o.Status()
	if err = o.Cancel(); err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateIfStatus(ctx, o, expected); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
