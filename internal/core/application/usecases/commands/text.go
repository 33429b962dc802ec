package commands

import (
	"errors"
	"strings"

	"ridehail/internal/pkg/errs"
)

// checkStoredText rejects values a PostgreSQL text column cannot hold.
func checkStoredText(param, value string) error {
	if strings.ContainsRune(value, 0) {
		return errs.NewValueIsInvalidErrorWithCause(param, errors.New(param+" must not contain NUL characters"))
	}
	return nil
}
