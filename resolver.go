package anyjson

// DefaultPriority returns the default backend preference order, fastest
// first, the standard library last as the always-present fallback.
func DefaultPriority() []string {
	return []string{"sonic", "goccy", "jsoniter", "encoding/json"}
}

// resolve walks the preference list and returns the first registered
// backend.
func resolve(priority []string) (Backend, error) {
	for _, name := range priority {
		backend, ok := lookup(name)
		if ok {
			return backend, nil
		}
	}

	return nil, ErrNoBackend
}
