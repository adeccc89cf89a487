package anyjson

import (
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// Bind decodes a JSON input and maps the result into target, converting
// weakly-typed values along the way. Field names follow the json struct
// tag.
func (h *Handle) Bind(value, target interface{}, options ...Option) error {
	raw, err := h.Loads(value, options...)
	if err != nil {
		return err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
		TagName:          "json",
	})
	if err != nil {
		return errors.Wrap(err, "cannot initialize decoder")
	}

	err = decoder.Decode(raw)
	if err != nil {
		return &DecodeError{Backend: h.backend.String(), cause: err}
	}

	return nil
}
