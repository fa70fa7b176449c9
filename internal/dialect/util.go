package dialect

import (
	"fmt"
	"strings"
)

// GeneratePlaceholders creates a comma-separated list of count placeholders
// using the dialect's placeholder function.
func GeneratePlaceholders(count int, placeholderFunc func(int) string) string {
	placeholders := make([]string, count)
	for i := 0; i < count; i++ {
		placeholders[i] = placeholderFunc(i)
	}
	return strings.Join(placeholders, ", ")
}

func quoteList(names []string, quote func(string) string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = quote(n)
	}
	return strings.Join(quoted, ", ")
}

// quoteWith wraps name in open/close, doubling any embedded close character.
func quoteWith(name, open, close string) string {
	return open + strings.ReplaceAll(name, close, close+close) + close
}

func columnDefs(cols []Column, quote func(string) string, typeOf func(ColumnKind) string) string {
	defs := make([]string, len(cols))
	for i, c := range cols {
		null := "NOT NULL"
		if c.Nullable {
			null = "NULL"
		}
		defs[i] = fmt.Sprintf("%s %s %s", quote(c.Name), typeOf(c.Kind), null)
	}
	return strings.Join(defs, ", ")
}

func insertQuery(table string, cols []string, d Dialect) string {
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		d.QuoteIdent(table), quoteList(cols, d.QuoteIdent), GeneratePlaceholders(len(cols), d.Placeholder))
}
