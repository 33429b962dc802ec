package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/pkg/errs"
)

// DateLayout is the calendar-date form of the requested service date.
const DateLayout = "2006-01-02"

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// Transition conflicts. The messages are shown to clients as is.
	ErrOrderNotAvailable    = errs.NewConflictError("order is not available")
	ErrOrderAlreadyCanceled = errs.NewConflictError("order already canceled")
	ErrOrderNotCancelable   = errs.NewConflictError("only pending orders are allowed to be canceled")
	ErrOrderNotFinishable   = errs.NewConflictError("only on-going orders are allowed to be finished")
)

// Order is a single ride request and the aggregate root of its lifecycle.
//
// Order follows these invariants:
//   - Rider and trip are fixed at creation
//   - The driver is set exactly once, on acceptance
//   - A driver is present exactly when the status is OnGoing or Finished
//   - The status only moves along the edges drawn on Status
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier of the order
	id kernel.UUID

	// riderID is the user who booked the ride
	riderID kernel.UUID

	// driverID is the user who accepted the ride (nil while Pending or Canceled)
	driverID *kernel.UUID

	// tripID references the route and price created with the order
	tripID kernel.UUID

	// date is the requested service day at midnight UTC
	date time.Time

	// status is the current lifecycle state
	status Status

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a Pending order with no driver. Every invalid argument is
// reported, not only the first one.
//
// Parameters:
//   - id: Unique identifier of the order
//   - riderID: The booking rider
//   - tripID: The trip created for this booking
//   - date: Service day, as returned by ParseDate
//
// Returns:
//   - *Order: The created order in Pending status
//   - error: Joined validation errors if any argument is invalid
//
// Example:
//
//	date, _ := ParseDate("2024-01-01")
//	o, err := NewOrder(kernel.NewUUID(), riderID, tripID, date)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id, riderID, tripID kernel.UUID, date time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setRider(riderID),
		o.setTrip(tripID),
		o.setDate(date),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order loaded from storage and rejects rows whose
// status and driver disagree.
//
// Returns:
//   - *Order: The order in the stored status
//   - error: Validation error, or an error from Status.ValidateCanHaveDriver
//     when a driver is missing for OnGoing/Finished or present otherwise
func RestoreOrder(
	id, riderID, tripID kernel.UUID,
	driverID *kernel.UUID,
	date time.Time,
	status Status,
) (*Order, error) {
	o, err := NewOrder(id, riderID, tripID, date)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = status.ValidateCanHaveDriver(driverID != nil); err != nil {
		return nil, err
	}
	if driverID != nil {
		if err = driverID.Validate(); err != nil {
			return nil, err
		}
		d := *driverID
		o.driverID = &d
	}
	o.status = status

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if o is nil or was built as a struct literal
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
//
// Returns:
//   - true if both orders have the same ID
//   - false if other is nil or IDs differ
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// RiderID is the owner of the order.
func (o *Order) RiderID() kernel.UUID { return o.riderID }

// DriverID is nil until the order is accepted.
func (o *Order) DriverID() *kernel.UUID {
	if o.driverID == nil {
		return nil
	}
	d := *o.driverID
	return &d
}

// TripID returns the trip booked with the order.
func (o *Order) TripID() kernel.UUID { return o.tripID }

// Date returns the requested service day at midnight UTC.
func (o *Order) Date() time.Time { return o.date }

// Status returns the current lifecycle state.
func (o *Order) Status() Status { return o.status }

// IsRider reports whether id owns the order.
func (o *Order) IsRider(id kernel.UUID) bool {
	return o.riderID.IsEqual(id)
}

// IsDriver reports whether id is the driver who accepted the order.
func (o *Order) IsDriver(id kernel.UUID) bool {
	return o.driverID != nil && o.driverID.IsEqual(id)
}

// Accept assigns the driver and moves the order to OnGoing.
//
// This method enforces the following business rules:
//   - The driver ID must be valid
//   - The order must be Pending
//
// Parameters:
//   - driverID: The accepting driver
//
// Returns:
//   - nil on success
//   - ErrOrderNotAvailable if the order is not Pending
//
// Example:
//
//	if err := o.Accept(caller.ID()); err != nil {
//	    // Another driver got there first, or the rider canceled
//	}
//
// Role checks are not done here; see services.OrderPolicy.
func (o *Order) Accept(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	next, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = next
	o.driverID = &driverID
	return nil
}

// Cancel moves a Pending order to Canceled.
//
// Returns:
//   - nil on success
//   - ErrOrderAlreadyCanceled if the order is already Canceled
//   - ErrOrderNotCancelable if the order is OnGoing or Finished
func (o *Order) Cancel() error {
	next, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// Finish moves an OnGoing order to Finished. Finished is terminal.
//
// Returns:
//   - nil on success
//   - ErrOrderNotFinishable unless the order is OnGoing
func (o *Order) Finish() error {
	next, err := o.status.Finish()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	o.id = id
	return nil
}

func (o *Order) setRider(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("rider_id", err)
	}
	o.riderID = riderID
	return nil
}

func (o *Order) setTrip(tripID kernel.UUID) error {
	if err := tripID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("trip_id", err)
	}
	o.tripID = tripID
	return nil
}

func (o *Order) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	o.date = date
	return nil
}

// ParseDate accepts a calendar date (2024-01-01) or an RFC 3339 timestamp and
// returns it normalised to midnight UTC of that calendar day.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errs.NewValueIsRequiredError("date")
	}
	if d, err := time.Parse(DateLayout, s); err == nil {
		return d, nil
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause("date", fmt.Errorf("%q is not a valid date", s))
	}
	y, m, d := ts.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}
