package schema

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"dto-pump/internal/record"
)

const errNotObject = "Input must be a JSON object or array of objects"

// ParseJSON builds a schema from an example JSON document. A top-level array
// contributes only its first element; later elements are never merged in.
// Failures are reported through ParseErrors, never as a Go error.
func ParseJSON(input string) ParsedSchema {
	parsed, err := record.Decode(input)
	if err != nil {
		return ParsedSchema{
			Fields:        []FieldConfig{},
			OriginalInput: input,
			ParseErrors:   []string{fmt.Sprintf("Invalid JSON: %v", err)},
		}
	}

	template := parsed
	if arr, ok := parsed.([]any); ok {
		template = nil
		if len(arr) > 0 {
			template = arr[0]
		}
	}

	fields, ok := buildMembers(template)
	if !ok {
		return ParsedSchema{
			Fields:        []FieldConfig{},
			OriginalInput: input,
			ParseErrors:   []string{errNotObject},
		}
	}

	return ParsedSchema{
		Fields:        fields,
		OriginalInput: input,
	}
}

// BuildField types a sample value and derives default constraints for it,
// recursing into arrays and objects.
func BuildField(name string, value any) FieldConfig {
	field := FieldConfig{
		Name:     name,
		Type:     InferType(value),
		Required: true,
	}

	switch field.Type {
	case TypeString:
		field.MinLength = ptr(1)
		field.MaxLength = ptr(max(textLength(stringForm(value))*2, 50))

	case TypeNumber:
		n, _ := record.Float(value)
		field.Min = ptr(0.0)
		// Keep Max finite so the schema still encodes as JSON.
		field.Max = ptr(math.Min(math.Max(n*10, 1000), math.MaxFloat64))
		if n == math.Trunc(n) {
			field.Precision = ptr(0)
		} else {
			field.Precision = ptr(2)
		}

	case TypeArray:
		arr := value.([]any)
		field.ArrayMinLength = ptr(1)
		field.ArrayMaxLength = ptr(max(len(arr), 5))
		if len(arr) > 0 {
			first := arr[0]
			item := BuildField("item", first)
			// Array elements that are plain objects always expose their full
			// nested structure.
			if isPlainObject(first) {
				item.Type = TypeObject
				item.NestedFields, _ = buildMembers(first)
			}
			field.ArrayItemConfig = &item
		}

	case TypeObject:
		field.NestedFields, _ = buildMembers(value)
	}

	return field
}

func isPlainObject(v any) bool {
	switch v.(type) {
	case *record.Record, map[string]any:
		return true
	}
	return false
}

// buildMembers builds one field per member of a keyed container. Arrays are
// keyed by index. It reports false when v has no members to walk.
func buildMembers(v any) ([]FieldConfig, bool) {
	fields := []FieldConfig{}

	switch c := v.(type) {
	case *record.Record:
		for _, k := range c.Keys() {
			val, _ := c.Get(k)
			fields = append(fields, BuildField(k, val))
		}
	case map[string]any:
		keys := make([]string, 0, len(c))
		for k := range c {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fields = append(fields, BuildField(k, c[k]))
		}
	case []any:
		for i, val := range c {
			fields = append(fields, BuildField(strconv.Itoa(i), val))
		}
	default:
		return nil, false
	}

	return fields, true
}
