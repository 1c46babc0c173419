package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is the uniform failure type returned for any request that
// reached the server and came back with a non-2xx status. Message holds
// the human-readable reason extracted from the response body.
type APIError struct {
	Method   string
	Endpoint string
	Status   int
	Message  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: HTTP %d: %s", e.Method, e.Endpoint, e.Status, e.Message)
}

// AsAPIError extracts an *APIError from err's chain.
func AsAPIError(err error) (*APIError, bool) {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// IsStatus reports whether err is an *APIError with the given status code.
func IsStatus(err error, status int) bool {
	ae, ok := AsAPIError(err)
	return ok && ae.Status == status
}

// errorMessage extracts a human-readable message from an error response
// body. Archon returns JSON error bodies, usually {"error": "..."} but
// some endpoints use "detail" or "message". Falls back to the HTTP status
// text, then to a bare "HTTP <status>" for statuses without one.
func errorMessage(status int, body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}

	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Error != "":
			return payload.Error
		case payload.Detail != "":
			return payload.Detail
		case payload.Message != "":
			return payload.Message
		}
	}

	if text := strings.TrimSpace(http.StatusText(status)); text != "" {
		return text
	}

	return fmt.Sprintf("HTTP %d", status)
}

// normalizeTransportError guarantees a usable error value for failures
// that happened before any response was received. An error with no
// message (or a nil error reported as a failure) is replaced with a
// generic one so callers always see a non-empty reason.
func normalizeTransportError(err error) error {
	if err == nil || strings.TrimSpace(err.Error()) == "" {
		return errors.New("Unknown error occurred")
	}
	return err
}
