package order

import (
	"fmt"

	"ridehail/internal/pkg/errs"
)

// Status is the position of an order in its lifecycle.
//
//	Pending ──┬──> OnGoing ──> Finished
//	          │
//	          └──> Canceled
//
// Finished and Canceled are terminal. There is no edge from OnGoing to Canceled.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota

	// Pending is the initial status; the order is in the driver pool.
	Pending

	// OnGoing means a driver accepted the order.
	OnGoing

	// Finished is terminal, reached from OnGoing only.
	Finished

	// Canceled is terminal, reached from Pending only.
	Canceled
)

var statusCodes = map[Status]string{
	Pending:  "pending",
	OnGoing:  "on-going",
	Finished: "finished",
	Canceled: "canceled",
}

// ParseStatus converts the persisted/wire code ("pending", "on-going", ...).
func ParseStatus(code string) (Status, error) {
	for s, c := range statusCodes {
		if c == code {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", code))
}

func (s Status) Validate() error {
	if _, ok := statusCodes[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire code, or "unknown" for invalid values.
func (s Status) String() string {
	if code, ok := statusCodes[s]; ok {
		return code
	}
	return "unknown"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Finished || s == Canceled
}

// ValidateCanHaveDriver checks status/driver consistency for restored orders:
// OnGoing and Finished orders carry a driver, Pending and Canceled ones do not.
func (s Status) ValidateCanHaveDriver(driver bool) error {
	needsDriver := s == OnGoing || s == Finished
	if driver && !needsDriver {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a driver", s),
		)
	}
	if !driver && needsDriver {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no driver", s),
		)
	}
	return nil
}

// Accept moves Pending to OnGoing.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return Unknown, ErrOrderNotAvailable
	}
	return OnGoing, nil
}

// Cancel moves Pending to Canceled. The two failure messages differ so that
// a rider repeating a cancel is told the order is already canceled.
func (s Status) Cancel() (Status, error) {
	switch s {
	case Pending:
		return Canceled, nil
	case Canceled:
		return Unknown, ErrOrderAlreadyCanceled
	default:
		return Unknown, ErrOrderNotCancelable
	}
}

// Finish moves OnGoing to Finished.
func (s Status) Finish() (Status, error) {
	if s != OnGoing {
		return Unknown, ErrOrderNotFinishable
	}
	return Finished, nil
}
