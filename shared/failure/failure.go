package failure

import (
	"errors"
	"net/http"
)

// Closed vocabulary of user-facing error keys. The client localizes these
// through the message catalog instead of showing raw store error text.
const (
	KeyValidationError = "validationError"
	KeyConflict        = "conflict"
	KeyDatabaseError   = "databaseError"
	KeyUnknownError    = "unknownError"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
// MessageKey selects the localized message; FieldErrors carries per-field
// validation messages keyed by the JSON field name.
type Failure struct {
	Code        int                 `json:"code"`
	MessageKey  string              `json:"messageKey,omitempty"`
	Message     string              `json:"message"`
	FieldErrors map[string][]string `json:"fieldErrors,omitempty"`
}

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:       http.StatusBadRequest,
			MessageKey: KeyValidationError,
			Message:    err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:       http.StatusBadRequest,
		MessageKey: KeyValidationError,
		Message:    msg,
	}
}

// Validation returns a bad-request Failure carrying per-field error messages.
func Validation(fieldErrors map[string][]string) error {
	return &Failure{
		Code:        http.StatusBadRequest,
		MessageKey:  KeyValidationError,
		Message:     "validation failed",
		FieldErrors: fieldErrors,
	}
}

// FieldError returns a bad-request Failure for a single invalid field.
func FieldError(field, msg string) error {
	return Validation(map[string][]string{field: {msg}})
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:       http.StatusInternalServerError,
			MessageKey: KeyUnknownError,
			Message:    err.Error(),
		}
	}

	return nil
}

// Database returns a Failure for an unreachable or misbehaving data store.
// The caller-facing message never includes the driver error.
func Database(msg string) error {
	return &Failure{
		Code:       http.StatusInternalServerError,
		MessageKey: KeyDatabaseError,
		Message:    msg,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:       http.StatusConflict,
		MessageKey: KeyConflict,
		Message:    message,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// KeyOf classifies any error into the closed messageKey vocabulary.
// Errors that are not Failures, or Failures without a key, map to unknownError.
func KeyOf(err error) string {
	var fail *Failure
	if errors.As(err, &fail) && fail.MessageKey != "" {
		return fail.MessageKey
	}

	return KeyUnknownError
}

// FieldErrorsOf returns the per-field validation messages attached to an
// error, or nil when the error carries none.
func FieldErrorsOf(err error) map[string][]string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.FieldErrors
	}

	return nil
}
