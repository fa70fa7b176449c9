package export

import (
	"fmt"
	"strings"

	"dto-pump/internal/record"
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// textValue is the plain text form shared by CSV cells and XML elements:
// null is empty, containers are compact JSON.
func textValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case *record.Record, []any, map[string]any:
		return record.Compact(val)
	}
	if record.IsNumber(v) {
		return record.FormatNumber(v)
	}
	return fmt.Sprint(v)
}

// csvCell quotes s when it holds a comma, a double quote or a newline.
func csvCell(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

func sqlValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case bool:
		if val {
			return "1"
		}
		return "0"
	case *record.Record, []any, map[string]any:
		return sqlQuote(record.Compact(val))
	}
	if record.IsNumber(v) {
		return record.FormatNumber(v)
	}
	return sqlQuote(textValue(v))
}

func sqlQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
