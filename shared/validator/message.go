package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be less than or equal to {param}",
		"min":      "{field} must be greater than or equal to {param}",
		"email":    "{field} must be a valid email address",
		"datetime": "{field} must match the format {param}",
	}
)

// FieldErrors converts validation errors into per-field messages keyed by the
// submitted field name.
func FieldErrors(err error) map[string][]string {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return map[string][]string{}
	}

	fieldErrors := make(map[string][]string, len(valErrors))

	for _, valErr := range valErrors {
		field := valErr.Field()
		fieldErrors[field] = append(fieldErrors[field], render(valErr))
	}

	return fieldErrors
}

func render(valErr val.FieldError) string {
	errStr := messages[valErr.Tag()]
	if errStr == "" {
		return valErr.Error()
	}

	errStr = strings.ReplaceAll(errStr, "{field}", valErr.Field())
	errStr = strings.ReplaceAll(errStr, "{param}", valErr.Param())

	return errStr
}
