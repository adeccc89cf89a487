package anyjson

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNoBackend is returned when no backend of the preference list is
// registered.
var ErrNoBackend = errors.New("no supported JSON backend found")

// EncodeError is returned when the backend fails to encode a value.
// The backend error is kept as the cause.
type EncodeError struct {
	Backend string
	cause   error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("cannot encode value to JSON (%s): %s", e.Backend, e.cause)
}

// Cause returns the original backend error.
func (e *EncodeError) Cause() error {
	return e.cause
}

func (e *EncodeError) Unwrap() error {
	return e.cause
}

// DecodeError is returned when the backend fails to decode an input.
// The backend error is kept as the cause.
type DecodeError struct {
	Backend string
	cause   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode JSON input (%s): %s", e.Backend, e.cause)
}

// Cause returns the original backend error.
func (e *DecodeError) Cause() error {
	return e.cause
}

func (e *DecodeError) Unwrap() error {
	return e.cause
}

// IsEncodeError returns true when err is an EncodeError.
func IsEncodeError(err error) bool {
	var encodeErr *EncodeError
	return errors.As(err, &encodeErr)
}

// IsDecodeError returns true when err is a DecodeError.
func IsDecodeError(err error) bool {
	var decodeErr *DecodeError
	return errors.As(err, &decodeErr)
}
