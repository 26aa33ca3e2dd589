package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"lemon/shared/failure"
)

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"bad request", failure.BadRequestFromString("invalid input"), http.StatusBadRequest},
		{"conflict", failure.Conflict("slot taken"), http.StatusConflict},
		{"database", failure.Database("store unavailable"), http.StatusInternalServerError},
		{"unauthorized", failure.Unauthorized("no token"), http.StatusUnauthorized},
		{"not found", failure.NotFound("reservation"), http.StatusNotFound},
		{"wrapped failure", fmt.Errorf("context: %w", failure.Conflict("slot taken")), http.StatusConflict},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestKeyOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"validation", failure.BadRequestFromString("invalid input"), failure.KeyValidationError},
		{"field error", failure.FieldError("party_size", "must be at least 1"), failure.KeyValidationError},
		{"conflict", failure.Conflict("slot taken"), failure.KeyConflict},
		{"database", failure.Database("store unavailable"), failure.KeyDatabaseError},
		{"internal", failure.InternalError(errors.New("boom")), failure.KeyUnknownError},
		{"failure without key", failure.Unauthorized("no token"), failure.KeyUnknownError},
		{"wrapped failure", fmt.Errorf("context: %w", failure.Database("store unavailable")), failure.KeyDatabaseError},
		{"plain error", errors.New("boom"), failure.KeyUnknownError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.KeyOf(tt.err); got != tt.want {
				t.Errorf("KeyOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFieldErrorsOf(t *testing.T) {
	t.Run("validation failure carries field errors", func(t *testing.T) {
		err := failure.Validation(map[string][]string{
			"date": {"must not be in the past"},
			"time": {"must be a valid time"},
		})

		fieldErrors := failure.FieldErrorsOf(err)
		if len(fieldErrors) != 2 {
			t.Fatalf("FieldErrorsOf() returned %d fields, want 2", len(fieldErrors))
		}

		if fieldErrors["date"][0] != "must not be in the past" {
			t.Errorf("FieldErrorsOf()[date] = %q", fieldErrors["date"][0])
		}
	})

	t.Run("single field helper", func(t *testing.T) {
		err := failure.FieldError("table_id", "table does not exist")

		fieldErrors := failure.FieldErrorsOf(err)
		if len(fieldErrors["table_id"]) != 1 || fieldErrors["table_id"][0] != "table does not exist" {
			t.Errorf("FieldErrorsOf()[table_id] = %v", fieldErrors["table_id"])
		}
	})

	t.Run("failure without field errors", func(t *testing.T) {
		if got := failure.FieldErrorsOf(failure.Conflict("slot taken")); got != nil {
			t.Errorf("FieldErrorsOf() = %v, want nil", got)
		}
	})

	t.Run("plain error", func(t *testing.T) {
		if got := failure.FieldErrorsOf(errors.New("boom")); got != nil {
			t.Errorf("FieldErrorsOf() = %v, want nil", got)
		}
	})
}

func TestBadRequestNilPassthrough(t *testing.T) {
	if err := failure.BadRequest(nil); err != nil {
		t.Errorf("BadRequest(nil) = %v, want nil", err)
	}

	if err := failure.InternalError(nil); err != nil {
		t.Errorf("InternalError(nil) = %v, want nil", err)
	}
}
