package services

import (
	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/order"
)

// OrderFilter is the storage-neutral condition of an order scan.
// Nil fields do not filter.
type OrderFilter struct {
	Status  *order.Status
	RiderID *kernel.UUID
}

// ViewPolicy decides which orders a caller sees when listing.
type ViewPolicy interface {
	Filter() OrderFilter
	// Message is the success message shown with the list.
	Message() string
}

// DriverPoolView is what drivers see: every order still waiting for a driver.
type DriverPoolView struct{}

func (DriverPoolView) Filter() OrderFilter {
	pending := order.Pending
	return OrderFilter{Status: &pending}
}

func (DriverPoolView) Message() string { return "get available orders successful" }

// RiderHistoryView is what riders see: all of their own orders in any status.
type RiderHistoryView struct {
	RiderID kernel.UUID
}

func (v RiderHistoryView) Filter() OrderFilter {
	id := v.RiderID
	return OrderFilter{RiderID: &id}
}

func (RiderHistoryView) Message() string { return "get your orders successful" }

// ViewFor picks the view keyed on the caller's role. Any caller who is not a
// driver gets the rider view.
func ViewFor(caller kernel.Caller) ViewPolicy {
	if caller.Role().IsDriver() {
		return DriverPoolView{}
	}
	return RiderHistoryView{RiderID: caller.ID()}
}
