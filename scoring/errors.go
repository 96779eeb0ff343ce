// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/candidate-scoring/models"
)

// ErrNotFound is wrapped by every lookup of a missing position, candidate,
// user or score.
var ErrNotFound = errors.New("not found")

// ValidationError reports malformed input. No state was changed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var validate = newValidator()

// newValidator reports field names by their JSON tag so messages match the
// request bodies.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// toValidationError converts the first validator failure into a
// ValidationError; other errors pass through unchanged.
func toValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return &ValidationError{Field: field, Message: field + " is required"}
	case "min", "max":
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must be between %d and %d", field, models.MinScore, models.MaxScore),
		}
	default:
		return &ValidationError{Field: field, Message: field + " is invalid"}
	}
}

// requireText trims s and fails when nothing is left.
func requireText(field, s string) (string, error) {
	s = strings.TrimSpace(s)
	if err := validate.Var(s, "required"); err != nil {
		return "", &ValidationError{Field: field, Message: field + " is required"}
	}
	return s, nil
}
