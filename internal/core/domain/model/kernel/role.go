package kernel

import (
	"fmt"
	"strings"

	"ridehail/internal/pkg/errs"
)

// Role is fixed when a user registers. The numeric codes are the ones
// stored in the users table and sent as role_id by clients.
type Role int

const (
	// UnknownRole is the zero value and never valid.
	UnknownRole Role = 0

	// Driver accepts pending orders and finishes the ones assigned to them.
	Driver Role = 1

	// Rider creates orders, cancels pending ones and may finish their own trips.
	Rider Role = 2
)

// RoleFromCode converts a stored or client-supplied role_id.
func RoleFromCode(code int) (Role, error) {
	r := Role(code)
	if err := r.Validate(); err != nil {
		return UnknownRole, err
	}
	return r, nil
}

// ParseRole accepts the role names "driver" and "rider" (case-insensitive).
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "driver":
		return Driver, nil
	case "rider":
		return Rider, nil
	default:
		return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a role", s))
	}
}

func (r Role) Validate() error {
	if r != Driver && r != Rider {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", int(r)))
	}
	return nil
}

// Code is the persisted representation.
func (r Role) Code() int {
	return int(r)
}

func (r Role) String() string {
	switch r {
	case Driver:
		return "driver"
	case Rider:
		return "rider"
	default:
		return "unknown"
	}
}

func (r Role) IsDriver() bool { return r == Driver }

func (r Role) IsRider() bool { return r == Rider }
