package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport marks a failed round trip to the remote catalog:
	// network errors, timeouts and any non-2xx response.
	ErrTransport = errors.New("transport failure")

	// ErrInvalidInput marks malformed caller input such as a non-numeric course id.
	ErrInvalidInput = errors.New("invalid input")
)

// TransportError describes a failed gateway operation
type TransportError struct {
	Op     string // "list", "get" or "create"
	Status int    // HTTP status, 0 when the request never completed
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: unexpected status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// InputError describes caller input that could not be interpreted
type InputError struct {
	Field string
	Value string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}
