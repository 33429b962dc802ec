package ports

import (
	"ridehail/internal/core/domain/model/kernel"
)

// TokenIssuer issues bearer tokens for a logged-in user.
type TokenIssuer interface {
	Issue(userID kernel.UUID) (string, error)
}

// TokenVerifier returns the user id a token was issued for, or an
// errs.UnauthenticatedError.
type TokenVerifier interface {
	Verify(token string) (kernel.UUID, error)
}

// PasswordHasher hashes and checks credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Matches(password, hash string) bool
}
