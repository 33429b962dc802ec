// Package identity issues and verifies bearer tokens and hashes passwords.
package identity

import (
	"errors"
	"fmt"
	"time"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// DefaultTokenTTL is the lifetime of a login token.
	DefaultTokenTTL = time.Hour

	issuer = "ridehail"
)

var (
	ErrSecretIsRequired = errors.New("jwt secret is required")
	ErrInvalidToken     = errs.NewUnauthenticatedError("invalid token")
	ErrExpiredToken     = errs.NewUnauthenticatedError("token expired")
)

// JWTService signs HS256 tokens whose subject is the user id. The role is not
// put in the token; it is read from the identity store on every request.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTService(secret string, ttl time.Duration) (*JWTService, error) {
	if secret == "" {
		return nil, ErrSecretIsRequired
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTService{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (s *JWTService) Issue(userID kernel.UUID) (string, error) {
	if err := userID.Validate(); err != nil {
		return "", err
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify returns ErrExpiredToken or ErrInvalidToken on failure.
func (s *JWTService) Verify(token string) (kernel.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return kernel.UUID{}, ErrExpiredToken
		}
		return kernel.UUID{}, ErrInvalidToken
	}
	if !parsed.Valid {
		return kernel.UUID{}, ErrInvalidToken
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.UUID{}, ErrInvalidToken
	}
	return id, nil
}
