package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/wordup-api/internal/models"
	appErrors "github.com/noah-isme/wordup-api/pkg/errors"
)

// NewValidator returns a validator that reports JSON field names.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationError turns the first failed rule into a VALIDATION_ERROR naming the field.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}

	fe := fieldErrs[0]
	field := fe.Namespace()
	if idx := strings.Index(field, "."); idx >= 0 {
		field = field[idx+1:]
	}

	var message string
	switch fe.Tag() {
	case "required":
		message = "missing required field: " + field
	case "min":
		if fe.Kind() == reflect.Slice {
			message = fmt.Sprintf("%s must contain at least %s item(s)", field, fe.Param())
		} else {
			message = fmt.Sprintf("%s must be at least %s", field, fe.Param())
		}
	default:
		message = "invalid field: " + field
	}
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message)
}

func internalError(err error, message string) error {
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}

func parseUserType(raw string) (models.Role, error) {
	role, ok := models.ParseRole(raw)
	if !ok {
		return "", appErrors.Clone(appErrors.ErrValidation, "invalid user type")
	}
	return role, nil
}

// normalizeOptional trims the value and treats blank strings as absent.
func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
