package schema

import (
	"encoding/json"

	"github.com/invopop/jsonschema"

	"dto-pump/internal/record"
)

var jsonFormats = map[FieldType]string{
	TypeDate:  "date",
	TypeEmail: "email",
	TypeUUID:  "uuid",
	TypeURL:   "uri",
}

// ToJSONSchema renders a parsed schema as a Draft 2020-12 object schema.
// Properties keep field order; required fields are listed under "required".
func ToJSONSchema(s ParsedSchema) *jsonschema.Schema {
	root := objectSchema(s.Fields)
	root.Version = jsonschema.Version
	return root
}

func objectSchema(fields []FieldConfig) *jsonschema.Schema {
	out := &jsonschema.Schema{
		Type:       "object",
		Properties: jsonschema.NewProperties(),
	}
	for _, f := range fields {
		out.Properties.Set(f.Name, fieldSchema(f))
		if f.Required {
			out.Required = append(out.Required, f.Name)
		}
	}
	return out
}

func fieldSchema(f FieldConfig) *jsonschema.Schema {
	var s *jsonschema.Schema

	switch f.Type {
	case TypeNumber:
		s = &jsonschema.Schema{Type: "number"}
		if f.Precision != nil && *f.Precision == 0 {
			s.Type = "integer"
		}
		if f.Min != nil {
			s.Minimum = json.Number(record.FormatNumber(*f.Min))
		}
		if f.Max != nil {
			s.Maximum = json.Number(record.FormatNumber(*f.Max))
		}
	case TypeBoolean:
		s = &jsonschema.Schema{Type: "boolean"}
	case TypeEnum:
		s = &jsonschema.Schema{Type: "string"}
		for _, v := range f.EnumValues {
			s.Enum = append(s.Enum, v)
		}
	case TypeArray:
		s = &jsonschema.Schema{Type: "array"}
		if f.ArrayMinLength != nil {
			s.MinItems = ptr(uint64(*f.ArrayMinLength))
		}
		if f.ArrayMaxLength != nil {
			s.MaxItems = ptr(uint64(*f.ArrayMaxLength))
		}
		if f.ArrayItemConfig != nil {
			s.Items = fieldSchema(*f.ArrayItemConfig)
		}
	case TypeObject:
		s = objectSchema(f.NestedFields)
	default:
		s = &jsonschema.Schema{Type: "string", Format: jsonFormats[f.Type], Pattern: f.Pattern}
		if f.MinLength != nil {
			s.MinLength = ptr(uint64(*f.MinLength))
		}
		if f.MaxLength != nil {
			s.MaxLength = ptr(uint64(*f.MaxLength))
		}
	}

	s.Description = f.Hint
	if f.Nullable {
		return &jsonschema.Schema{
			Description: s.Description,
			AnyOf:       []*jsonschema.Schema{s, {Type: "null"}},
		}
	}
	return s
}
