package requestid

import (
	"errors"
	"fmt"
)

// Kind classifies why a client-supplied request ID was rejected.
type Kind string

const (
	// KindNotAUUID means the normalized header value is not a UUID string.
	KindNotAUUID Kind = "not_a_uuid"
	// KindNotVersion7 means the value is a UUID but its version nibble is not 7.
	KindNotVersion7 Kind = "not_uuid_v7"
)

var (
	// ErrNotAUUID is matched by errors.Is for KindNotAUUID validation errors.
	ErrNotAUUID = errors.New("not a valid UUID")
	// ErrNotVersion7 is matched by errors.Is for KindNotVersion7 validation errors.
	ErrNotVersion7 = errors.New("not an UUID v7")
	// ErrGenerate is returned when the generator fails to produce a new ID.
	ErrGenerate = errors.New("failed to generate request ID")
)

// ValidationError is returned by Extract when the X-Request-Id header is
// present but does not hold a UUIDv7.
type ValidationError struct {
	Kind  Kind
	Value string // normalized header value
	Err   error  // underlying parse error, if any
}

// Error implements the error interface.
// The result is the exact message sent to the client.
func (e *ValidationError) Error() string {
	return e.Message()
}

// Message returns the client-facing description of the defect.
func (e *ValidationError) Message() string {
	switch e.Kind {
	case KindNotVersion7:
		return fmt.Sprintf("Invalid %s : Not an UUID v7", Header)
	default:
		return fmt.Sprintf("Invalid %s : Not a valid UUID", Header)
	}
}

// Is reports whether target is the sentinel matching e.Kind.
func (e *ValidationError) Is(target error) bool {
	switch e.Kind {
	case KindNotAUUID:
		return target == ErrNotAUUID
	case KindNotVersion7:
		return target == ErrNotVersion7
	}
	return false
}

// Unwrap returns the underlying parse error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is, or wraps, a *ValidationError.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
