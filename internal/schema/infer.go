package schema

import (
	"fmt"
	"regexp"
	"unicode/utf16"

	"dto-pump/internal/record"
)

var (
	uuidPattern  = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	urlPattern   = regexp.MustCompile(`^https?://`)
	isoDate      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	usDate       = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}`)
	phonePattern = regexp.MustCompile(`^[\d\s\-+()]{10,}$`)
)

// InferType classifies a sample value. The checks run in a fixed order and
// the first match wins, so "2024-01-01" is a date and never a phone number.
func InferType(v any) FieldType {
	if v == nil {
		return TypeString
	}

	switch v.(type) {
	case bool:
		return TypeBoolean
	case []any:
		return TypeArray
	case *record.Record, map[string]any:
		return TypeObject
	}
	if record.IsNumber(v) {
		return TypeNumber
	}

	s := stringForm(v)
	switch {
	case uuidPattern.MatchString(s):
		return TypeUUID
	case emailPattern.MatchString(s):
		return TypeEmail
	case urlPattern.MatchString(s):
		return TypeURL
	case isoDate.MatchString(s) || usDate.MatchString(s):
		return TypeDate
	case phonePattern.MatchString(s):
		return TypePhone
	}
	return TypeString
}

func stringForm(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	}
	if record.IsNumber(v) {
		return record.FormatNumber(v)
	}
	return fmt.Sprint(v)
}

// textLength counts UTF-16 code units, which is how sample lengths are measured
// by the clients that send examples.
func textLength(s string) int {
	return len(utf16.Encode([]rune(s)))
}
