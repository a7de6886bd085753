package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// RequestError is a network failure or a backend-reported failure. The
// backend's message field is surfaced when present; callers fall back to a
// generic message otherwise.
type RequestError struct {
	Status  int
	Message string
	cause   error
}

func (e *RequestError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("backend error (%d): %s", e.Status, e.Message)
	}
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return e.cause
}

// newRequestError builds a RequestError from an error response body.
// The backend reports failures as {"message": ...} or {"error": ...}.
func newRequestError(status int, body []byte) *RequestError {
	var payload struct {
		Message string `json:"message"`
		Err     string `json:"error"`
	}
	msg := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			msg = payload.Message
		} else if payload.Err != "" {
			msg = payload.Err
		}
	}
	if msg == "" {
		msg = "request failed"
	}
	return &RequestError{Status: status, Message: msg}
}

// ErrorMessage returns the user-facing message for err: the backend's own
// message for a RequestError, the fallback for everything else.
func ErrorMessage(err error, fallback string) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) && reqErr.Message != "" && reqErr.Message != "request failed" {
		return reqErr.Message
	}
	return fallback
}
