package schema

import (
	"errors"
	"fmt"
	"strings"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

var ErrEmptyDocument = errors.New("schema document has no fields")

// DecodeDocument reads a saved ParsedSchema. JSON documents are tried first;
// anything else is read as YAML.
func DecodeDocument(data []byte) (ParsedSchema, error) {
	var ps ParsedSchema
	trimmed := strings.TrimSpace(string(data))

	if strings.HasPrefix(trimmed, "{") {
		if err := gojson.Unmarshal([]byte(trimmed), &ps); err != nil {
			return ParsedSchema{}, fmt.Errorf("failed to decode schema document: %w", err)
		}
	} else if err := yaml.Unmarshal([]byte(trimmed), &ps); err != nil {
		return ParsedSchema{}, fmt.Errorf("failed to decode schema document: %w", err)
	}

	if len(ps.Fields) == 0 {
		return ps, ErrEmptyDocument
	}
	for i, f := range ps.Fields {
		if err := checkField(f); err != nil {
			return ps, fmt.Errorf("field %d: %w", i, err)
		}
	}
	return ps, nil
}

func checkField(f FieldConfig) error {
	if !f.Type.Valid() {
		return fmt.Errorf("%s: unknown type %q", f.Name, f.Type)
	}
	if f.ArrayItemConfig != nil {
		if err := checkField(*f.ArrayItemConfig); err != nil {
			return err
		}
	}
	for _, n := range f.NestedFields {
		if err := checkField(n); err != nil {
			return err
		}
	}
	return nil
}

// EncodeYAML renders a schema as a YAML document.
func EncodeYAML(ps ParsedSchema) ([]byte, error) {
	var b strings.Builder
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(ps); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}
