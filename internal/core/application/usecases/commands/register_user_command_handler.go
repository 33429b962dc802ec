package commands

import (
	"context"
	"errors"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/user"
	"ridehail/internal/core/ports"
	"ridehail/internal/pkg/errs"
)

var ErrUserAlreadyExists = errs.NewConflictError("user already exists")

// RegisterUserCommandHandler stores a new user with a hashed password.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

func NewRegisterUserCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle returns ErrUserAlreadyExists when the name is taken.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	u, err := user.NewUser(kernel.NewUUID(), cmd.Name(), hash, cmd.Role())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	_, err = userRepo.GetByName(ctx, cmd.Name())
	switch {
	case err == nil:
		return nil, ErrUserAlreadyExists
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	if err = userRepo.Add(ctx, u); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return u, nil
}
