package anyjson_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thoas/anyjson"
)

func TestDumps_Loads(t *testing.T) {
	is := assert.New(t)

	payload := map[string]interface{}{
		"name":  "chickpea curry",
		"count": float64(4),
	}

	out, err := anyjson.Dumps(payload)
	is.NoError(err)

	value, err := anyjson.Loads(out)
	is.NoError(err)
	is.Equal(payload, value)
}

func TestSerialize_Deserialize(t *testing.T) {
	is := assert.New(t)

	payload := []interface{}{"vegan", float64(2), true}

	out, err := anyjson.Serialize(payload)
	is.NoError(err)

	dumped, err := anyjson.Dumps(payload)
	is.NoError(err)
	is.Equal(dumped, out)

	value, err := anyjson.Deserialize(out)
	is.NoError(err)
	is.Equal(payload, value)
}

func TestLoadsInto(t *testing.T) {
	is := assert.New(t)

	var target struct {
		Name string `json:"name"`
	}

	err := anyjson.LoadsInto(`{"name": "dhal"}`, &target)
	is.NoError(err)
	is.Equal("dhal", target.Name)
}

func TestDefaultHandle_Cached(t *testing.T) {
	is := assert.New(t)

	first, err := anyjson.DefaultHandle()
	is.NoError(err)

	second, err := anyjson.DefaultHandle()
	is.NoError(err)
	is.Same(first, second)
}
