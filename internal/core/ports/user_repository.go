package ports

import (
	"context"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/user"
)

// UserRepository is the persistence contract of the identity store.
type UserRepository interface {
	// Add persists a new user. A taken name yields an errs.ConflictError.
	Add(ctx context.Context, aggregate *user.User) error
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
	GetByName(ctx context.Context, name string) (*user.User, error)
}
