package schema

import (
	"regexp"
	"strings"
)

const (
	errNoDeclaration = "Could not parse TypeScript input. Expected interface, type, or object type."
	errNoFields      = "No fields found in TypeScript input"
)

// Rules for reading property declarations out of interface / type text.
// The first "}" closes the body, so nested object types are not decomposed.
var (
	lineComment  = regexp.MustCompile(`(?m)//.*$`)
	blockComment = regexp.MustCompile(`/\*[\s\S]*?\*/`)
	exportPrefix = regexp.MustCompile(`export\s+`)

	namedBody = regexp.MustCompile(`(?:interface|type)\s+\w+\s*(?:=\s*)?\{([^}]+)\}`)
	plainBody = regexp.MustCompile(`\{([^}]+)\}`)

	propertyDecl = regexp.MustCompile(`(\w+)(\?)?:\s*([^;,\n]+)`)
	arrayWrapper = regexp.MustCompile(`Array<(.+)>`)
)

// ParseDeclaration extracts one level of properties from TypeScript-like type text.
func ParseDeclaration(input string) ParsedSchema {
	clean := lineComment.ReplaceAllString(input, "")
	clean = blockComment.ReplaceAllString(clean, "")
	clean = exportPrefix.ReplaceAllString(clean, "")

	m := namedBody.FindStringSubmatch(clean)
	if m == nil {
		m = plainBody.FindStringSubmatch(clean)
	}
	if m == nil {
		return ParsedSchema{
			Fields:        []FieldConfig{},
			OriginalInput: input,
			ParseErrors:   []string{errNoDeclaration},
		}
	}
	body := m[1]

	fields := []FieldConfig{}
	for _, prop := range propertyDecl.FindAllStringSubmatch(body, -1) {
		fields = append(fields, declaredField(prop[1], prop[2] == "?", strings.TrimSpace(prop[3])))
	}

	result := ParsedSchema{
		Fields:        fields,
		OriginalInput: input,
	}
	if len(fields) == 0 {
		result.ParseErrors = []string{errNoFields}
	}
	return result
}

func declaredField(name string, optional bool, typeText string) FieldConfig {
	field := FieldConfig{
		Name:     name,
		Type:     mapDeclaredType(typeText),
		Required: !optional,
		Nullable: strings.Contains(typeText, "null"),
	}

	if strings.HasSuffix(typeText, "[]") || strings.HasPrefix(typeText, "Array<") {
		field.Type = TypeArray
		field.ArrayMinLength = ptr(1)
		field.ArrayMaxLength = ptr(5)
		field.ArrayItemConfig = &FieldConfig{
			Name:     "item",
			Type:     mapDeclaredType(arrayElementType(typeText)),
			Required: true,
		}
	}

	return field
}

// arrayElementType drops the first "[]" and unwraps the first Array<...>.
func arrayElementType(typeText string) string {
	inner := strings.Replace(typeText, "[]", "", 1)
	if loc := arrayWrapper.FindStringSubmatchIndex(inner); loc != nil {
		inner = inner[:loc[0]] + inner[loc[2]:loc[3]] + inner[loc[1]:]
	}
	return strings.TrimSpace(inner)
}

// mapDeclaredType maps primitive type text to a field type. Unions become
// enums and anything unrecognised falls back to string.
func mapDeclaredType(typeText string) FieldType {
	normalized := strings.Join(strings.Fields(strings.ToLower(typeText)), "")

	switch normalized {
	case "string":
		return TypeString
	case "number":
		return TypeNumber
	case "boolean":
		return TypeBoolean
	case "date":
		return TypeDate
	}
	if strings.Contains(normalized, "|") {
		return TypeEnum
	}
	return TypeString
}
