package services

import (
	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/order"
	"ridehail/internal/pkg/errs"
)

var (
	ErrOnlyRidersCreate    = errs.NewForbiddenError("only user can create order")
	ErrOnlyRidersCancel    = errs.NewForbiddenError("only user can cancel order")
	ErrNotOrderOwner       = errs.NewForbiddenError("you are not allowed to cancel this order")
	ErrOnlyDriversAccept   = errs.NewForbiddenError("only drivers can accept orders")
	ErrNotOrderParticipant = errs.NewForbiddenError("you are not authorized to finish this order")
)

// OrderPolicy holds the authorization predicates of the order operations.
//
// The checks are deliberately not uniform:
//   - create and cancel are rider-only, and cancel also requires ownership
//   - accept is driver-only
//   - finish checks no role at all; the order's rider or its driver may finish it
//
// Role predicates take only the role because command handlers run them before
// the order is loaded. Order predicates run after loading.
//
// Example:
//
//	policy := services.NewOrderPolicy()
//	if err := policy.CanCancel(caller.Role()); err != nil {
//	    return nil, err
//	}
//	o, err := repo.GetForUpdate(ctx, id)
//	...
//	if err := policy.CanCancelOrder(caller, o); err != nil {
//	    return nil, err
//	}
type OrderPolicy struct{}

func NewOrderPolicy() OrderPolicy {
	return OrderPolicy{}
}

// CanCreate allows riders only.
func (OrderPolicy) CanCreate(role kernel.Role) error {
	if !role.IsRider() {
		return ErrOnlyRidersCreate
	}
	return nil
}

// CanCancel allows riders only.
func (OrderPolicy) CanCancel(role kernel.Role) error {
	if !role.IsRider() {
		return ErrOnlyRidersCancel
	}
	return nil
}

// CanCancelOrder allows the rider who owns o.
func (OrderPolicy) CanCancelOrder(caller kernel.Caller, o *order.Order) error {
	if !o.IsRider(caller.ID()) {
		return ErrNotOrderOwner
	}
	return nil
}

// CanAccept allows drivers only.
func (OrderPolicy) CanAccept(role kernel.Role) error {
	if !role.IsDriver() {
		return ErrOnlyDriversAccept
	}
	return nil
}

// CanFinishOrder allows the rider or the driver of o, whatever their role.
func (OrderPolicy) CanFinishOrder(caller kernel.Caller, o *order.Order) error {
	if !o.IsRider(caller.ID()) && !o.IsDriver(caller.ID()) {
		return ErrNotOrderParticipant
	}
	return nil
}
