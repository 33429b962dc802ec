package commands

import (
	"context"
	"errors"
	"strings"

	"ridehail/internal/core/domain/model/user"
	"ridehail/internal/core/ports"
	"ridehail/internal/pkg/errs"
)

// ErrInvalidCredentials is returned for an unknown name and for a wrong
// password alike.
var ErrInvalidCredentials = errs.NewUnauthenticatedError("invalid credentials")

// Session is the outcome of a successful login.
type Session struct {
	User  *user.User
	Token string
}

type LoginUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	issuer     ports.TokenIssuer
}

func NewLoginUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
) LoginUserCommandHandler {
	return LoginUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		issuer:     issuer,
	}
}

func (h *LoginUserCommandHandler) Handle(ctx context.Context, cmd LoginUserCommand) (Session, error) {
	if err := cmd.Validate(); err != nil {
		return Session{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return Session{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	u, err := uow.UserRepository().GetByName(ctx, strings.TrimSpace(cmd.Name()))
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}

	if !h.hasher.Matches(cmd.Password(), u.PasswordHash()) {
		return Session{}, ErrInvalidCredentials
	}

	token, err := h.issuer.Issue(u.ID())
	if err != nil {
		return Session{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return Session{}, err
	}

	return Session{User: u, Token: token}, nil
}
