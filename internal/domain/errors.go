package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when an id lookup misses. Handlers map it to 404.
var ErrNotFound = errors.New("not found")

// ErrValidation wraps every input rejection: missing required fields,
// out-of-range numbers, and unresolvable destination references. Handlers map
// it to 400. An unresolvable destinationId is deliberately a validation
// failure, not ErrNotFound: the hotel request is bad, no resource is missing.
var ErrValidation = errors.New("validation error")

// ErrDestinationNotFound rejects a hotel whose destinationId does not resolve
// to an existing destination. It wraps ErrValidation, not ErrNotFound.
var ErrDestinationNotFound = fmt.Errorf("%w: destination not found", ErrValidation)

func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// ValidationMessage strips the sentinel prefix from a wrapped ErrValidation,
// leaving the human-readable reason for the response body.
func ValidationMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if i := strings.Index(msg, ErrValidation.Error()+": "); i >= 0 {
		return msg[i+len(ErrValidation.Error())+2:]
	}
	return msg
}
