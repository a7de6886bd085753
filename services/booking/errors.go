package booking

import "fmt"

// ValidationError is a client-detected, pre-network failure. Its message is
// user-facing and user-correctable; no request is attempted once one fires.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
