package response

import (
	"encoding/json"
	"net/http"

	"lemon/shared/constant"
	"lemon/shared/failure"
	"lemon/shared/logger"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error       *string             `json:"error,omitempty"`
	MessageKey  string              `json:"messageKey,omitempty"`
	FieldErrors map[string][]string `json:"fieldErrors,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	response(writer, code, Data[any]{Data: &jsonPayload})
}

// WithResult sends a tagged result object as the bare response body, without
// the data envelope. Used for the discriminated success/error payloads the
// availability and reservation endpoints return.
func WithResult(writer http.ResponseWriter, code int, result interface{}) {
	response(writer, code, result)
}

// WithError sends a response with an error message, its messageKey, and any
// per-field validation messages the error carries.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := err.Error()

	response(writer, code, Error{
		Error:       &errMsg,
		MessageKey:  failure.KeyOf(err),
		FieldErrors: failure.FieldErrorsOf(err),
	})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
