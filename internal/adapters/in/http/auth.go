package http

import (
	"context"
	"errors"
	"strings"

	"ridehail/internal/core/application/usecases/queries"
	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const callerContextKey = "caller"

type CallerResolver interface {
	Handle(ctx context.Context, query queries.ResolveCallerQuery) (kernel.Caller, error)
}

// Authenticate resolves the bearer token of every request whose path starts
// with one of protected and stores the caller on the echo context.
func Authenticate(resolver CallerResolver, protected ...string) echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		Skipper: func(c echo.Context) bool {
			return !hasAnyPrefix(c.Request().URL.Path, protected)
		},
		KeyLookup:  "header:" + echo.HeaderAuthorization,
		AuthScheme: "Bearer",
		Validator: func(token string, c echo.Context) (bool, error) {
			query, err := queries.NewResolveCallerQuery(token)
			if err != nil {
				return false, err
			}
			caller, err := resolver.Handle(c.Request().Context(), query)
			if err != nil {
				return false, err
			}
			c.Set(callerContextKey, caller)
			return true, nil
		},
		ErrorHandler: func(err error, _ echo.Context) error {
			if errors.Is(err, errs.ErrUnauthenticated) || errors.Is(err, errs.ErrUnavailable) {
				return err
			}
			return queries.ErrMissingToken
		},
	})
}

func callerFrom(c echo.Context) (kernel.Caller, error) {
	caller, ok := c.Get(callerContextKey).(kernel.Caller)
	if !ok {
		return kernel.Caller{}, queries.ErrMissingToken
	}
	return caller, nil
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
