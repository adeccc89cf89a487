package anyjson

import (
	"io"

	gojson "github.com/goccy/go-json"
)

// goccyBackend is the JSON backend of github.com/goccy/go-json.
type goccyBackend struct {
}

func (goccyBackend) String() string {
	return "goccy"
}

func (goccyBackend) Marshal(v interface{}) ([]byte, error) {
	return gojson.Marshal(v)
}

func (goccyBackend) MarshalIndent(v interface{}, prefix, indent string) ([]byte, error) {
	return gojson.MarshalIndent(v, prefix, indent)
}

func (goccyBackend) Unmarshal(data []byte, v interface{}) error {
	return gojson.Unmarshal(data, v)
}

func (goccyBackend) NewDecoder(r io.Reader) Decoder {
	return gojson.NewDecoder(r)
}

var _ Backend = (*goccyBackend)(nil)

func init() {
	Register(goccyBackend{})
}
