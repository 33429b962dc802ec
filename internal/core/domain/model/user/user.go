// Package user holds the Identity Store record: who a caller is and which
// of the two fixed roles they registered with.
package user

import (
	"errors"
	"strings"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned by Validate for a User built as a struct literal.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser")

// User is created at registration and never changes role.
type User struct {
	id           kernel.UUID
	name         string
	passwordHash string
	role         kernel.Role

	isConstructed bool
}

// NewUser creates a user with every failing field reported.
//
// Parameters:
//   - id: Unique identifier of the user
//   - name: Login name, trimmed and required
//   - passwordHash: Hash from ports.PasswordHasher, never the plain password
//   - role: kernel.Driver or kernel.Rider
func NewUser(id kernel.UUID, name, passwordHash string, role kernel.Role) (*User, error) {
	u := &User{isConstructed: true}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser rebuilds a user read from storage. The same invariants hold as
// at registration.
func RestoreUser(id kernel.UUID, name, passwordHash string, role kernel.Role) (*User, error) {
	return NewUser(id, name, passwordHash, role)
}

// Validate returns ErrUserIsNotConstructed unless u came from NewUser or RestoreUser.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID { return u.id }

// Name returns the unique login name.
func (u *User) Name() string { return u.name }

// PasswordHash is the stored credential hash; it is never serialized to clients.
func (u *User) PasswordHash() string { return u.passwordHash }

// Role returns the role chosen at registration.
func (u *User) Role() kernel.Role { return u.role }

// Caller returns the identity used when this user invokes order operations.
func (u *User) Caller() kernel.Caller {
	c, _ := kernel.NewCaller(u.id, u.role)
	return c
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password")
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
