// Package anyjson exposes a uniform Dumps/Loads interface over the best
// available JSON implementation: candidate backends register themselves
// at build time, the first one of a fixed preference order wins at
// first use, and every call after that delegates to it.
package anyjson

import "sync"

var (
	defaultHandle *Handle
	defaultErr    error
	defaultOnce   sync.Once
)

// DefaultHandle returns the process-wide Handle, resolving it on first
// use. The result, error included, is cached for the process lifetime.
func DefaultHandle() (*Handle, error) {
	defaultOnce.Do(func() {
		defaultHandle, defaultErr = New()
	})

	return defaultHandle, defaultErr
}

// Dumps encodes a value to a JSON string with the default handle.
func Dumps(v interface{}, options ...Option) (string, error) {
	handle, err := DefaultHandle()
	if err != nil {
		return "", err
	}

	return handle.Dumps(v, options...)
}

// Loads decodes a JSON input with the default handle.
func Loads(value interface{}, options ...Option) (interface{}, error) {
	handle, err := DefaultHandle()
	if err != nil {
		return nil, err
	}

	return handle.Loads(value, options...)
}

// LoadsInto decodes a JSON input into target with the default handle.
func LoadsInto(value, target interface{}, options ...Option) error {
	handle, err := DefaultHandle()
	if err != nil {
		return err
	}

	return handle.LoadsInto(value, target, options...)
}

// Bind decodes a JSON input and maps the result into target with the
// default handle.
func Bind(value, target interface{}, options ...Option) error {
	handle, err := DefaultHandle()
	if err != nil {
		return err
	}

	return handle.Bind(value, target, options...)
}

// Serialize is an alias for Dumps.
func Serialize(v interface{}, options ...Option) (string, error) {
	return Dumps(v, options...)
}

// Deserialize is an alias for Loads.
func Deserialize(value interface{}, options ...Option) (interface{}, error) {
	return Loads(value, options...)
}
