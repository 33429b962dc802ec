package queries

import (
	"context"
	"errors"
	"strings"
	"time"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/ports"
	"ridehail/internal/pkg/errs"
	"ridehail/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrResolveCallerQueryIsNotConstructed = errors.New(
		"ResolveCallerQuery must be created via NewResolveCallerQuery constructor",
	)
	ErrMissingToken = errs.NewUnauthenticatedError("authentication token is required")
	ErrUnknownUser  = errs.NewUnauthenticatedError("user of the token no longer exists")
)

// ResolveCallerQuery turns a bearer token into the Caller that core
// operations run on behalf of.
type ResolveCallerQuery struct {
	token string

	guard guard.ConstructorGuard
}

func NewResolveCallerQuery(token string) (ResolveCallerQuery, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return ResolveCallerQuery{}, ErrMissingToken
	}
	return ResolveCallerQuery{token: token, guard: guard.NewConstructorGuard()}, nil
}

func (q ResolveCallerQuery) Validate() error {
	return q.guard.Validate(ErrResolveCallerQueryIsNotConstructed)
}

func (q ResolveCallerQuery) Token() string { return q.token }

// ResolveCallerQueryHandler verifies the token and reads the role from the
// identity store, so a token never carries authority of its own.
type ResolveCallerQueryHandler struct {
	db       *gorm.DB
	verifier ports.TokenVerifier
	timeout  time.Duration
}

func NewResolveCallerQueryHandler(db *gorm.DB, verifier ports.TokenVerifier, timeout time.Duration) ResolveCallerQueryHandler {
	return ResolveCallerQueryHandler{db: db, verifier: verifier, timeout: timeout}
}

func (h ResolveCallerQueryHandler) Handle(ctx context.Context, query ResolveCallerQuery) (kernel.Caller, error) {
	if err := query.Validate(); err != nil {
		return kernel.Caller{}, err
	}

	userID, err := h.verifier.Verify(query.Token())
	if err != nil {
		return kernel.Caller{}, err
	}

	ctx, cancel := withTimeout(ctx, h.timeout)
	defer cancel()

	var rows []userRow
	err = h.db.WithContext(ctx).
		Table("users").
		Select("role_id").
		Where("id = ?", userID.Bytes()).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return kernel.Caller{}, unavailable("users", err)
	}
	if len(rows) == 0 {
		return kernel.Caller{}, ErrUnknownUser
	}

	role, err := kernel.RoleFromCode(rows[0].RoleID)
	if err != nil {
		return kernel.Caller{}, errs.NewUnauthenticatedErrorWithCause("user has no valid role", err)
	}

	return kernel.NewCaller(userID, role)
}
