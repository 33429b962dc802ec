package commands

import (
	"errors"
	"strings"
	"unicode/utf8"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/pkg/errs"
	"ridehail/internal/pkg/guard"
)

const (
	// MinPasswordLength is the shortest password registration accepts, in characters.
	MinPasswordLength = 4
	// MaxPasswordLength is the bcrypt input limit, in bytes.
	MaxPasswordLength = 72
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand creates an account with a role fixed for its lifetime.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	name     string
	password string
	role     kernel.Role

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand takes the wire role code (1 driver, 2 rider).
func NewRegisterUserCommand(name, password string, roleCode int) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errs.NewValidationError(
		cmd.setName(name),
		cmd.setPassword(password),
		cmd.setRole(roleCode),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) Name() string { return c.name }

func (c RegisterUserCommand) Password() string { return c.password }

func (c RegisterUserCommand) Role() kernel.Role { return c.role }

func (c *RegisterUserCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if err := checkStoredText("name", name); err != nil {
		return err
	}

	c.name = name
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"password", errors.New("password must be at least 4 characters long"),
		)
	}
	if len(password) > MaxPasswordLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"password", errors.New("password must be at most 72 bytes long"),
		)
	}

	c.password = password
	return nil
}

func (c *RegisterUserCommand) setRole(code int) error {
	role, err := kernel.RoleFromCode(code)
	if err != nil {
		return err
	}

	c.role = role
	return nil
}
