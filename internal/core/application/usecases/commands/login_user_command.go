package commands

import (
	"errors"

	"ridehail/internal/pkg/errs"
	"ridehail/internal/pkg/guard"
)

var ErrLoginUserCommandIsNotConstructed = errors.New(
	"LoginUserCommand must be created via NewLoginUserCommand constructor",
)

// LoginUserCommand exchanges credentials for a bearer token.
type LoginUserCommand struct { //nolint:recvcheck //using for validation
	name     string
	password string

	guard guard.ConstructorGuard
}

func NewLoginUserCommand(name, password string) (LoginUserCommand, error) {
	cmd := LoginUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errs.NewValidationError(
		cmd.setName(name),
		cmd.setPassword(password),
	); err != nil {
		return LoginUserCommand{}, err
	}

	return cmd, nil
}

func (c LoginUserCommand) Validate() error {
	return c.guard.Validate(ErrLoginUserCommandIsNotConstructed)
}

func (c LoginUserCommand) Name() string { return c.name }

func (c LoginUserCommand) Password() string { return c.password }

func (c *LoginUserCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if err := checkStoredText("name", name); err != nil {
		return err
	}

	c.name = name
	return nil
}

func (c *LoginUserCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	c.password = password
	return nil
}
