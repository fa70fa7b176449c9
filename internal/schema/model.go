package schema

// FieldType names the kind of value generated for a field.
type FieldType string

const (
	TypeString    FieldType = "string"
	TypeNumber    FieldType = "number"
	TypeBoolean   FieldType = "boolean"
	TypeDate      FieldType = "date"
	TypeEmail     FieldType = "email"
	TypeUUID      FieldType = "uuid"
	TypePhone     FieldType = "phone"
	TypeURL       FieldType = "url"
	TypeFirstName FieldType = "firstName"
	TypeLastName  FieldType = "lastName"
	TypeFullName  FieldType = "fullName"
	TypeAddress   FieldType = "address"
	TypeCity      FieldType = "city"
	TypeCountry   FieldType = "country"
	TypeZipCode   FieldType = "zipCode"
	TypeCompany   FieldType = "company"
	TypeLorem     FieldType = "lorem"
	TypeEnum      FieldType = "enum"
	TypeArray     FieldType = "array"
	TypeObject    FieldType = "object"
)

// FieldConfig describes one field and the constraints used to generate it.
// Optional constraints are pointers; nil means unset.
type FieldConfig struct {
	Name            string    `json:"name" yaml:"name"`
	Type            FieldType `json:"type" yaml:"type"`
	Required        bool      `json:"required" yaml:"required"`
	Nullable        bool      `json:"nullable" yaml:"nullable"`
	NullablePercent *int      `json:"nullablePercent,omitempty" yaml:"nullablePercent,omitempty"` // 0-100
	Hint            string    `json:"hint,omitempty" yaml:"hint,omitempty"`

	// string
	MinLength *int   `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty" yaml:"pattern,omitempty"`

	// number
	Min       *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max       *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Precision *int     `json:"precision,omitempty" yaml:"precision,omitempty"` // decimal places

	// enum
	EnumValues []string `json:"enumValues,omitempty" yaml:"enumValues,omitempty"`

	// array
	ArrayMinLength  *int         `json:"arrayMinLength,omitempty" yaml:"arrayMinLength,omitempty"`
	ArrayMaxLength  *int         `json:"arrayMaxLength,omitempty" yaml:"arrayMaxLength,omitempty"`
	ArrayItemConfig *FieldConfig `json:"arrayItemConfig,omitempty" yaml:"arrayItemConfig,omitempty"`

	// object, in source key order
	NestedFields []FieldConfig `json:"nestedFields,omitempty" yaml:"nestedFields,omitempty"`

	FakerTemplate string `json:"fakerTemplate,omitempty" yaml:"fakerTemplate,omitempty"`
}

// ParsedSchema is the result of analysing one input. ParseErrors may be set
// alongside a non-empty Fields list; partial results are kept.
type ParsedSchema struct {
	Fields        []FieldConfig `json:"fields" yaml:"fields"`
	OriginalInput string        `json:"originalInput" yaml:"originalInput"`
	ParseErrors   []string      `json:"parseErrors,omitempty" yaml:"parseErrors,omitempty"`
}

// HasErrors reports whether any parse error was recorded.
func (s ParsedSchema) HasErrors() bool {
	return len(s.ParseErrors) > 0
}

func ptr[T any](v T) *T {
	return &v
}
