package anyjson

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

// jsoniterBackend is the JSON backend of github.com/json-iterator/go.
type jsoniterBackend struct {
}

func (jsoniterBackend) String() string {
	return "jsoniter"
}

func (jsoniterBackend) Marshal(v interface{}) ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(v)
}

func (jsoniterBackend) MarshalIndent(v interface{}, prefix, indent string) ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(v, prefix, indent)
}

func (jsoniterBackend) Unmarshal(data []byte, v interface{}) error {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, v)
}

func (jsoniterBackend) NewDecoder(r io.Reader) Decoder {
	return jsoniter.ConfigCompatibleWithStandardLibrary.NewDecoder(r)
}

var _ Backend = (*jsoniterBackend)(nil)

func init() {
	Register(jsoniterBackend{})
}
