package anyjson

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/thoas/anyjson/logging"
)

// Handle binds the resolved backend to its encode and decode entry
// points. A Handle is immutable after construction and safe for
// concurrent use.
type Handle struct {
	backend Backend
	opts    *Options
}

// New resolves a backend from the preference order and initializes a
// new Handle.
func New(options ...Option) (*Handle, error) {
	opts := newOptions()
	for i := range options {
		options[i](opts)
	}

	backend, err := resolve(opts.Priority)
	if err != nil {
		return nil, err
	}

	opts.Logger.Debug(context.Background(), "JSON backend resolved",
		logging.String("backend", backend.String()),
		logging.Strings("priority", opts.Priority))

	return &Handle{
		backend: backend,
		opts:    opts,
	}, nil
}

// Backend returns the resolved backend.
func (h *Handle) Backend() Backend {
	return h.backend
}

// Dumps encodes a value to a JSON string with the resolved backend.
func (h *Handle) Dumps(v interface{}, options ...Option) (string, error) {
	opts := h.opts.merge(options)

	var (
		data []byte
		err  error
	)

	if opts.Prefix != "" || opts.Indent != "" {
		data, err = h.backend.MarshalIndent(v, opts.Prefix, opts.Indent)
	} else {
		data, err = h.backend.Marshal(v)
	}

	if err != nil {
		return "", &EncodeError{Backend: h.backend.String(), cause: err}
	}

	return string(data), nil
}

// Loads decodes a JSON input with the resolved backend. The input can
// be a string, a byte slice, a json.RawMessage or an io.Reader.
func (h *Handle) Loads(value interface{}, options ...Option) (interface{}, error) {
	var out interface{}

	err := h.LoadsInto(value, &out, options...)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// LoadsInto decodes a JSON input into target, which must be a pointer.
// It accepts the same inputs as Loads.
func (h *Handle) LoadsInto(value, target interface{}, options ...Option) error {
	opts := h.opts.merge(options)

	switch v := value.(type) {
	case io.Reader:
		return h.decodeStream(v, target, opts)
	case []byte:
		return h.decodeStream(bytes.NewReader(v), target, opts)
	case json.RawMessage:
		return h.decodeStream(bytes.NewReader(v), target, opts)
	case string:
		if opts.UseNumber {
			return h.decodeStream(strings.NewReader(v), target, opts)
		}

		err := h.backend.Unmarshal([]byte(v), target)
		if err != nil {
			return &DecodeError{Backend: h.backend.String(), cause: err}
		}

		return nil
	default:
		return &DecodeError{
			Backend: h.backend.String(),
			cause:   errors.Errorf("unsupported input type %T", value),
		}
	}
}

func (h *Handle) decodeStream(r io.Reader, target interface{}, opts *Options) error {
	dec := h.backend.NewDecoder(r)
	if opts.UseNumber {
		dec.UseNumber()
	}

	err := dec.Decode(target)
	if err != nil {
		return &DecodeError{Backend: h.backend.String(), cause: err}
	}

	// a decoder stops at the first complete value, reject what follows
	// so stream and string inputs behave the same
	if dec.More() {
		return &DecodeError{
			Backend: h.backend.String(),
			cause:   errors.New("trailing data after top-level value"),
		}
	}

	return nil
}
