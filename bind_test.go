package anyjson_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thoas/anyjson"
)

type bindRecipe struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Tags  []string `json:"tags"`
}

func TestBind(t *testing.T) {
	is := assert.New(t)

	handle, err := anyjson.New()
	is.NoError(err)

	var r bindRecipe

	err = handle.Bind(`{"name": "soup", "count": 3, "tags": ["warm"]}`, &r)
	is.NoError(err)
	is.Equal(bindRecipe{Name: "soup", Count: 3, Tags: []string{"warm"}}, r)
}

func TestBind_WeaklyTyped(t *testing.T) {
	is := assert.New(t)

	handle, err := anyjson.New()
	is.NoError(err)

	var r bindRecipe

	err = handle.Bind(`{"name": "soup", "count": "3"}`, &r)
	is.NoError(err)
	is.Equal(3, r.Count)
}

func TestBind_Reader(t *testing.T) {
	is := assert.New(t)

	var r bindRecipe

	err := anyjson.Bind(strings.NewReader(`{"name": "dhal"}`), &r)
	is.NoError(err)
	is.Equal("dhal", r.Name)
}

func TestBind_Malformed(t *testing.T) {
	is := assert.New(t)

	var r bindRecipe

	err := anyjson.Bind("{invalid", &r)
	is.Error(err)
	is.True(anyjson.IsDecodeError(err))
}
