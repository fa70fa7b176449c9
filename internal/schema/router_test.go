package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ExplicitModes(t *testing.T) {
	asJSON := Parse(`interface U { id: string }`, ModeJSON)
	require.Len(t, asJSON.ParseErrors, 1)
	assert.True(t, strings.HasPrefix(asJSON.ParseErrors[0], "Invalid JSON: "))

	// Quoted keys never sit directly before the colon, so no property matches.
	asDecl := Parse(`{"id": "x"}`, ModeTypeScript)
	assert.Empty(t, asDecl.Fields)
	assert.Equal(t, []string{errNoFields}, asDecl.ParseErrors)
}

func TestParse_Auto(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantNames []string
		wantError string
	}{
		{
			name:      "json object",
			input:     `  {"id": 1, "name": "a"}`,
			wantNames: []string{"id", "name"},
		},
		{
			name:      "json array",
			input:     `[{"id": 1}]`,
			wantNames: []string{"id"},
		},
		{
			name:      "interface text",
			input:     `interface User { id: string; email: string }`,
			wantNames: []string{"id", "email"},
		},
		{
			name:      "type alias",
			input:     `type User = { id: number }`,
			wantNames: []string{"id"},
		},
		{
			name:      "bare object type falls through json",
			input:     `{ id: string; age?: number }`,
			wantNames: []string{"id", "age"},
		},
		{
			name:      "colon without braces",
			input:     `id: string`,
			wantError: errNoDeclaration,
		},
		{
			name:      "json scalar array declined then declaration",
			input:     `["a:b"]`,
			wantError: errNoDeclaration,
		},
		{
			name:      "nothing recognisable falls back to json",
			input:     `hello world`,
			wantError: "Invalid JSON: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Parse(tt.input, ModeAuto)
			assert.Equal(t, tt.input, result.OriginalInput)
			if tt.wantError != "" {
				require.NotEmpty(t, result.ParseErrors)
				assert.True(t, strings.HasPrefix(result.ParseErrors[0], tt.wantError), result.ParseErrors[0])
				return
			}
			assert.False(t, result.HasErrors(), result.ParseErrors)
			assert.Equal(t, tt.wantNames, fieldNames(result.Fields))
		})
	}
}

func TestParse_UnknownModeBehavesAsAuto(t *testing.T) {
	result := Parse(`{"a": true}`, InputMode("yaml"))
	assert.False(t, result.HasErrors())
	assert.Equal(t, []string{"a"}, fieldNames(result.Fields))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("TypeScript")
	require.NoError(t, err)
	assert.Equal(t, ModeTypeScript, m)

	m, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeAuto, m)

	_, err = ParseMode("yaml")
	assert.Error(t, err)
}
