package application

import (
	"errors"
	"fmt"

	"github.com/Mukulraj109/healthtick/internal/scheduling"
)

var (
	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("application: not found")
	// ErrClientNotFound is returned when a booking references an unknown client.
	ErrClientNotFound = errors.New("application: client not found")
	// ErrStoreUnavailable wraps persistence failures so transport layers can
	// classify them without inspecting driver errors.
	ErrStoreUnavailable = errors.New("application: store unavailable")
)

// ValidationError captures field level validation issues that callers can surface to users.
type ValidationError struct {
	FieldErrors map[string]string
}

// Error implements the error interface.
func (v *ValidationError) Error() string {
	if v == nil {
		return ""
	}
	return "validation failed"
}

// HasErrors reports whether any field level issues were recorded.
func (v *ValidationError) HasErrors() bool {
	return v != nil && len(v.FieldErrors) > 0
}

// add records a field level validation error.
func (v *ValidationError) add(field, message string) {
	if v.FieldErrors == nil {
		v.FieldErrors = make(map[string]string)
	}
	v.FieldErrors[field] = message
}

// ConflictError is returned when a requested booking overlaps a call already
// on the calendar. The fields describe the existing call, not the request.
type ConflictError struct {
	CallType   scheduling.CallType
	ClientName string
	StartTime  string
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("booking conflicts with existing %s call for %s at %s", e.CallType, e.ClientName, e.StartTime)
}

// storeError wraps unexpected repository failures with ErrStoreUnavailable.
func storeError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
