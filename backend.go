package anyjson

import (
	"io"
	"sort"
	"sync"

	"github.com/thoas/go-funk"
)

// Decoder reads JSON values from a stream.
type Decoder interface {
	Decode(v interface{}) error
	UseNumber()
	More() bool
}

// Backend defines an interface to implement a JSON backend.
type Backend interface {
	String() string
	Marshal(v interface{}) ([]byte, error)
	MarshalIndent(v interface{}, prefix, indent string) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
	NewDecoder(r io.Reader) Decoder
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Backend{}
)

// Register adds a backend to the registry under its name. Backends
// compiled into the binary register themselves from init.
func Register(backend Backend) {
	registryMu.Lock()
	defer registryMu.Unlock()

	registry[backend.String()] = backend
}

// Backends returns the names of the registered backends, sorted.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Available returns true when a backend is registered under name.
func Available(name string) bool {
	return funk.ContainsString(Backends(), name)
}

func lookup(name string) (Backend, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	backend, ok := registry[name]

	return backend, ok
}
