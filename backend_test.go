package anyjson_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thoas/anyjson"
)

func TestBackends(t *testing.T) {
	is := assert.New(t)

	names := anyjson.Backends()
	is.Contains(names, "encoding/json")
	is.Contains(names, "goccy")
	is.Contains(names, "jsoniter")
	is.IsNonDecreasing(names)
}

func TestAvailable(t *testing.T) {
	is := assert.New(t)

	is.True(anyjson.Available("encoding/json"))
	is.False(anyjson.Available("yaml"))
}
