package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"ridehail/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type loginRequest struct {
	Name     string `json:"name"     validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Password string `json:"password" validate:"required,min=4,max=72"`
	RoleID   int    `json:"role_id"  validate:"required,oneof=1 2"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bindAndValidate decodes the body into dst and checks its validate tags.
// Field failures come back as one errs.ValidationError.
func bindAndValidate(ctx echo.Context, dst any) error {
	if err := ctx.Bind(dst); err != nil {
		return errInvalidBody
	}

	err := validate.Struct(dst)
	if err == nil {
		return nil
	}
	var failures validator.ValidationErrors
	if !errors.As(err, &failures) {
		return err
	}
	fieldErrs := make([]error, 0, len(failures))
	for _, fe := range failures {
		fieldErrs = append(fieldErrs, fieldError(fe))
	}
	return errs.NewValidationError(fieldErrs...)
}

func fieldError(fe validator.FieldError) error {
	switch fe.Tag() {
	case "required":
		return errs.NewValueIsRequiredError(fe.Field())
	case "min":
		return errs.NewValueIsInvalidErrorWithCause(fe.Field(),
			fmt.Errorf("%s must be at least %s characters long", fe.Field(), fe.Param()))
	case "max":
		return errs.NewValueIsInvalidErrorWithCause(fe.Field(),
			fmt.Errorf("%s must be at most %s characters long", fe.Field(), fe.Param()))
	case "oneof":
		return errs.NewValueIsInvalidErrorWithCause(fe.Field(),
			fmt.Errorf("%s must be one of %s", fe.Field(), fe.Param()))
	default:
		return errs.NewValueIsInvalidError(fe.Field())
	}
}
