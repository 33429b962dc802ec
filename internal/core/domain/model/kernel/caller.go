package kernel

import "errors"

// ErrCallerIsNotResolved is returned for a Caller that was not built by NewCaller.
var ErrCallerIsNotResolved = errors.New("Caller must be created via NewCaller")

// Caller is the authenticated identity every order operation runs on behalf of.
// It is produced by identity resolution and never by the core itself.
type Caller struct {
	id   UUID
	role Role
}

func NewCaller(id UUID, role Role) (Caller, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Caller{}, err
	}
	return Caller{id: id, role: role}, nil
}

func (c Caller) ID() UUID { return c.id }

func (c Caller) Role() Role { return c.role }

// Validate rejects the zero Caller.
func (c Caller) Validate() error {
	if c.id.Validate() != nil || c.role.Validate() != nil {
		return ErrCallerIsNotResolved
	}
	return nil
}
