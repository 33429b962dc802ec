package commands

import (
	"context"

	"ridehail/internal/core/domain/model/order"
	"ridehail/internal/core/domain/services"
)

// FinishOrderCommandHandler closes an on-going order. Unlike cancel and
// accept it has no role gate: any participant of the order may finish it.
type FinishOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.OrderPolicy
}

func NewFinishOrderCommandHandler(uowFactory OrderUoWFactory) FinishOrderCommandHandler {
	return FinishOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewOrderPolicy(),
	}
}

func (h *FinishOrderCommandHandler) Handle(ctx context.Context, cmd FinishOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
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

	// Status is checked before participation.
	expected := o.Status()
	if err = o.Finish(); err != nil {
		return nil, err
	}

	if err = h.policy.CanFinishOrder(cmd.Caller(), o); err != nil {
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
