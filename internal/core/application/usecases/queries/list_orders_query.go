package queries

import (
	"errors"
	"time"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/order"
	"ridehail/internal/pkg/errs"
	"ridehail/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists the orders the caller is allowed to see: the pool of
// pending orders for a driver, their own orders for a rider.
//
// Example:
//
//	query, err := NewListOrdersQuery(caller)
//	if err != nil {
//	    return err
//	}
//
//	res, err := NewListOrdersQueryHandler(db, timeout).Handle(ctx, query)
//	fmt.Println(res.Message, len(res.Orders))
type ListOrdersQuery struct {
	caller kernel.Caller

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(caller kernel.Caller) (ListOrdersQuery, error) {
	if err := caller.Validate(); err != nil {
		return ListOrdersQuery{}, errs.NewUnauthenticatedErrorWithCause("caller is not resolved", err)
	}
	return ListOrdersQuery{caller: caller, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Caller() kernel.Caller { return q.caller }

// OrderView is the read model of one order.
type OrderView struct {
	ID       kernel.UUID
	RiderID  kernel.UUID
	DriverID *kernel.UUID
	TripID   kernel.UUID
	Date     time.Time
	Status   order.Status
}

// ListOrdersQueryResponse carries the view-specific message with the rows.
type ListOrdersQueryResponse struct {
	Message string
	Orders  []OrderView
}
