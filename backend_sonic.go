//go:build (linux || windows || darwin) && amd64

package anyjson

import (
	"io"

	"github.com/bytedance/sonic"
)

// sonicBackend is the JSON backend of github.com/bytedance/sonic,
// compiled in only on the platforms sonic supports.
type sonicBackend struct {
}

func (sonicBackend) String() string {
	return "sonic"
}

func (sonicBackend) Marshal(v interface{}) ([]byte, error) {
	return sonic.ConfigStd.Marshal(v)
}

func (sonicBackend) MarshalIndent(v interface{}, prefix, indent string) ([]byte, error) {
	return sonic.ConfigStd.MarshalIndent(v, prefix, indent)
}

func (sonicBackend) Unmarshal(data []byte, v interface{}) error {
	return sonic.ConfigStd.Unmarshal(data, v)
}

func (sonicBackend) NewDecoder(r io.Reader) Decoder {
	return sonic.ConfigStd.NewDecoder(r)
}

var _ Backend = (*sonicBackend)(nil)

func init() {
	Register(sonicBackend{})
}
