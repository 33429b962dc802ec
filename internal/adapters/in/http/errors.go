package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"ridehail/internal/generated/servers"
	"ridehail/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var errInvalidBody = echo.NewHTTPError(http.StatusBadRequest, "invalid request body")

// NewErrorHandler renders every error returned by a handler or middleware as
// servers.Error with the status of its kind.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := errorResponse(err)
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"status", status,
				"error", err,
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, body)
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "failed to write error response", "error", writeErr)
		}
	}
}

func errorResponse(err error) (int, servers.Error) {
	var (
		validation *errs.ValidationError
		unauth     *errs.UnauthenticatedError
		forbidden  *errs.ForbiddenError
		notFound   *errs.ObjectNotFoundError
		conflict   *errs.ConflictError
		httpErr    *echo.HTTPError
	)

	switch {
	case errors.Is(err, errs.ErrUnavailable):
		return http.StatusServiceUnavailable, servers.Error{Msg: "service temporarily unavailable"}
	case errors.As(err, &validation):
		fields := validation.Fields()
		details := make([]servers.FieldError, len(fields))
		for i, f := range fields {
			details[i] = servers.FieldError{Field: f.Field, Message: f.Message}
		}
		return http.StatusBadRequest, servers.Error{Msg: "invalid request", Details: &details}
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest, servers.Error{Msg: err.Error()}
	case errors.As(err, &unauth):
		return http.StatusUnauthorized, servers.Error{Msg: unauth.Reason}
	case errors.As(err, &forbidden):
		return http.StatusForbidden, servers.Error{Msg: forbidden.Reason}
	case errors.As(err, &notFound):
		return http.StatusNotFound, servers.Error{Msg: notFoundMessage(notFound.ParamName)}
	case errors.As(err, &conflict):
		return http.StatusConflict, servers.Error{Msg: conflict.Reason}
	case errors.As(err, &httpErr):
		return httpErr.Code, servers.Error{Msg: fmt.Sprint(httpErr.Message)}
	default:
		return http.StatusInternalServerError, servers.Error{Msg: "internal server error"}
	}
}

// notFoundMessage turns "orderId" into "order not found".
func notFoundMessage(param string) string {
	name := strings.TrimSuffix(param, "Id")
	if name == "" {
		name = "object"
	}
	return name + " not found"
}
