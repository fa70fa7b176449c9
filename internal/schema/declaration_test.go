package schema

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeclaration_Interface(t *testing.T) {
	result := ParseDeclaration(`interface U { id: string; age?: number; tags: string[]; }`)
	require.False(t, result.HasErrors())
	require.Len(t, result.Fields, 3)

	id, age, tags := result.Fields[0], result.Fields[1], result.Fields[2]

	assert.Equal(t, "id", id.Name)
	assert.Equal(t, TypeString, id.Type)
	assert.True(t, id.Required)

	assert.Equal(t, "age", age.Name)
	assert.Equal(t, TypeNumber, age.Type)
	assert.False(t, age.Required)

	assert.Equal(t, "tags", tags.Name)
	assert.Equal(t, TypeArray, tags.Type)
	assert.True(t, tags.Required)
	assert.Equal(t, 1, *tags.ArrayMinLength)
	assert.Equal(t, 5, *tags.ArrayMaxLength)
	require.NotNil(t, tags.ArrayItemConfig)
	assert.Equal(t, "item", tags.ArrayItemConfig.Name)
	assert.Equal(t, TypeString, tags.ArrayItemConfig.Type)
}

func TestParseDeclaration_CommentsAndExport(t *testing.T) {
	input := `// user record
/* generated
   by hand */
export interface User {
  id: string; // primary key
  name: string;
  /* age in years */
  age: number;
  isActive: boolean;
  createdAt: Date;
}`
	result := ParseDeclaration(input)
	require.False(t, result.HasErrors())
	assert.Equal(t, input, result.OriginalInput)
	assert.Equal(t, []string{"id", "name", "age", "isActive", "createdAt"}, fieldNames(result.Fields))
	assert.Equal(t, TypeBoolean, result.Fields[3].Type)
	assert.Equal(t, TypeDate, result.Fields[4].Type)
}

func TestParseDeclaration_TypeAliasAndPlainObject(t *testing.T) {
	alias := ParseDeclaration(`type Point = { x: number, y: number }`)
	require.False(t, alias.HasErrors())
	assert.Equal(t, []string{"x", "y"}, fieldNames(alias.Fields))

	plain := ParseDeclaration(`const p: { label: string }`)
	require.False(t, plain.HasErrors())
	assert.Equal(t, []string{"label"}, fieldNames(plain.Fields))
}

func TestParseDeclaration_TypeMapping(t *testing.T) {
	result := ParseDeclaration(`interface T {
  status: 'active' | 'inactive';
  note: string | null;
  count: NUMBER;
  other: Record<string, unknown>;
  ids: Array<number>;
  flags: Array<boolean | null>;
}`)
	require.False(t, result.HasErrors())
	require.Len(t, result.Fields, 6)

	status, note, count, other, ids, flags := result.Fields[0], result.Fields[1], result.Fields[2], result.Fields[3], result.Fields[4], result.Fields[5]

	assert.Equal(t, TypeEnum, status.Type)
	assert.False(t, status.Nullable)

	assert.Equal(t, TypeEnum, note.Type)
	assert.True(t, note.Nullable)

	assert.Equal(t, TypeNumber, count.Type)

	// "Record<string" is cut at the comma.
	assert.Equal(t, TypeString, other.Type)

	assert.Equal(t, TypeArray, ids.Type)
	assert.Equal(t, TypeNumber, ids.ArrayItemConfig.Type)

	assert.Equal(t, TypeArray, flags.Type)
	assert.True(t, flags.Nullable)
	assert.Equal(t, TypeEnum, flags.ArrayItemConfig.Type)
	assert.False(t, flags.ArrayItemConfig.Nullable)
}

func TestParseDeclaration_NestedObjectIsNotDecomposed(t *testing.T) {
	result := ParseDeclaration(`interface A { inner: { b: string }; after: number }`)
	require.False(t, result.HasErrors())
	require.Len(t, result.Fields, 1)
	assert.Equal(t, "inner", result.Fields[0].Name)
	assert.Equal(t, TypeString, result.Fields[0].Type)
}

func TestParseDeclaration_Errors(t *testing.T) {
	none := ParseDeclaration(`just some words`)
	assert.Empty(t, none.Fields)
	assert.Equal(t, []string{errNoDeclaration}, none.ParseErrors)

	empty := ParseDeclaration(`interface Empty { }`)
	assert.Empty(t, empty.Fields)
	assert.NotNil(t, empty.Fields)
	assert.Equal(t, []string{errNoFields}, empty.ParseErrors)
}

func TestParseDeclaration_LongDelimiterRuns(t *testing.T) {
	// Long runs of delimiters are the known weak spot of the pattern rules.
	// The regexp engine here is linear-time; this only pins down the result shape.
	input := "interface X {" + strings.Repeat(":", 20000) + strings.Repeat(";", 20000) + "}"

	done := make(chan ParsedSchema, 1)
	go func() { done <- ParseDeclaration(input) }()

	select {
	case result := <-done:
		assert.Empty(t, result.Fields)
		assert.Equal(t, []string{errNoFields}, result.ParseErrors)
	case <-time.After(10 * time.Second):
		t.Fatal("declaration parsing did not finish")
	}
}
