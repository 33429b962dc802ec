// Package queries contains the read side: role-conditioned order lists,
// catalog listings, caller resolution and backlog counts.
// Handlers read through GORM directly and never load aggregates.
package queries

import (
	"context"
	"time"

	"ridehail/internal/pkg/errs"
)

// DefaultTimeout bounds a query when the handler was built without one.
const DefaultTimeout = 5 * time.Second

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

func unavailable(resource string, err error) error {
	return errs.NewUnavailableError(resource, err)
}
