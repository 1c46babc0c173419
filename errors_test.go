package client

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		body     string
		expected string
	}{
		{"error field", 404, `{"error": "not found"}`, "not found"},
		{"detail field", 422, `{"detail": "validation failed"}`, "validation failed"},
		{"message field", 400, `{"message": "bad payload"}`, "bad payload"},
		{"error preferred over message", 400, `{"error": "a", "message": "b"}`, "a"},
		{"non-JSON body falls back to status text", 500, "Internal Server Error", "Internal Server Error"},
		{"empty body falls back to status text", 503, "", "Service Unavailable"},
		{"JSON without known fields", 400, `{"code": 42}`, "Bad Request"},
		{"unknown status falls back to HTTP code", 599, "", "HTTP 599"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := errorMessage(tt.status, []byte(tt.body))

			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	err := &APIError{
		Method:   http.MethodGet,
		Endpoint: "/projects/123",
		Status:   404,
		Message:  "not found",
	}

	expected := "GET /projects/123: HTTP 404: not found"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
}

func TestAsAPIError(t *testing.T) {
	t.Parallel()

	apiErr := &APIError{Status: 404, Message: "not found"}
	wrapped := fmt.Errorf("fetching project: %w", apiErr)

	got, ok := AsAPIError(wrapped)
	if !ok {
		t.Fatal("expected to extract *APIError from wrapped error")
	}

	if got.Status != 404 {
		t.Errorf("expected status=404, got %d", got.Status)
	}

	if _, ok := AsAPIError(errors.New("plain")); ok {
		t.Error("expected plain error not to match")
	}
}

func TestIsStatus(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("wrapped: %w", &APIError{Status: 429})

	if !IsStatus(err, 429) {
		t.Error("expected IsStatus to match 429")
	}

	if IsStatus(err, 500) {
		t.Error("expected IsStatus not to match 500")
	}

	if IsStatus(errors.New("plain"), 429) {
		t.Error("expected plain error not to match")
	}
}

func TestNormalizeTransportError(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()

		err := normalizeTransportError(nil)

		if err == nil || err.Error() != "Unknown error occurred" {
			t.Errorf("expected 'Unknown error occurred', got: %v", err)
		}
	})

	t.Run("empty message", func(t *testing.T) {
		t.Parallel()

		err := normalizeTransportError(errors.New("  "))

		if err.Error() != "Unknown error occurred" {
			t.Errorf("expected 'Unknown error occurred', got: %v", err)
		}
	})

	t.Run("real error passes through", func(t *testing.T) {
		t.Parallel()

		original := errors.New("connection refused")
		err := normalizeTransportError(original)

		if !errors.Is(err, original) {
			t.Errorf("expected original error, got: %v", err)
		}
	})
}
