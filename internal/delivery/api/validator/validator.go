// Package validator adapts go-playground/validator to echo.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"storefront/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a validator that reports fields by their json names.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{validate: v}
}

// Validate checks i against its `validate` tags.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return FieldErrors(fieldErrs)
		}

		return err
	}

	return nil
}

// FieldErrors is a readable list of failed fields.
type FieldErrors validator.ValidationErrors

func (fe FieldErrors) Error() string {
	msgs := make([]string, 0, len(fe))
	for _, e := range fe {
		if e.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s failed on %s=%s", e.Field(), e.Tag(), e.Param()))

			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s failed on %s", e.Field(), e.Tag()))
	}

	return strings.Join(msgs, "; ")
}

// Fields maps each failed field to its rule, for response details.
func (fe FieldErrors) Fields() map[string]string {
	out := make(map[string]string, len(fe))
	for _, e := range fe {
		out[e.Field()] = e.Tag()
	}

	return out
}
