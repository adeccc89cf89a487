package anyjson

import (
	"encoding/json"
	"io"
)

type stdBackend struct {
}

func (stdBackend) String() string {
	return "encoding/json"
}

func (stdBackend) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (stdBackend) MarshalIndent(v interface{}, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(v, prefix, indent)
}

func (stdBackend) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (stdBackend) NewDecoder(r io.Reader) Decoder {
	return json.NewDecoder(r)
}

var _ Backend = (*stdBackend)(nil)

func init() {
	Register(stdBackend{})
}
