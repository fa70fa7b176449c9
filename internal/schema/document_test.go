package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDocument_JSON(t *testing.T) {
	ps, err := DecodeDocument([]byte(`{"fields":[{"name":"age","type":"number","required":true,"nullable":false,"min":18,"max":65,"precision":0}],"originalInput":""}`))
	require.NoError(t, err)
	require.Len(t, ps.Fields, 1)
	assert.Equal(t, TypeNumber, ps.Fields[0].Type)
	assert.Equal(t, 18.0, *ps.Fields[0].Min)
	assert.Equal(t, 0, *ps.Fields[0].Precision)
}

func TestDecodeDocument_YAMLRoundTrip(t *testing.T) {
	src := ParseJSON(`{"user": {"email": "a@b.co", "tags": ["x"]}}`)
	require.False(t, src.HasErrors())

	out, err := EncodeYAML(src)
	require.NoError(t, err)
	assert.Contains(t, string(out), "nestedFields:")

	ps, err := DecodeDocument(out)
	require.NoError(t, err)
	assert.Equal(t, src.Fields, ps.Fields)
}

func TestDecodeDocument_Errors(t *testing.T) {
	_, err := DecodeDocument([]byte(`{"fields":[]}`))
	assert.ErrorIs(t, err, ErrEmptyDocument)

	_, err = DecodeDocument([]byte(`{"fields":[{"name":"x","type":"money"}]}`))
	assert.ErrorContains(t, err, `unknown type "money"`)

	_, err = DecodeDocument([]byte(`{"fields":`))
	assert.Error(t, err)
}
