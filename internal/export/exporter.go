// Package export renders generated records into the supported text formats.
package export

import (
	"errors"
	"fmt"
	"strings"

	"dto-pump/internal/record"
)

// Format identifies an output serialization.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatSQL  Format = "sql"
	FormatXML  Format = "xml"
)

// TableName is the target table of every SQL INSERT statement.
const TableName = "generated_data"

var ErrUnsupportedFormat = errors.New("unsupported export format")

// Result is the rendered output plus the metadata needed to offer it as a download.
type Result struct {
	Content       string `json:"content"`
	MimeType      string `json:"mimeType"`
	FileExtension string `json:"fileExtension"`
}

// FormatInfo labels a format for listings.
type FormatInfo struct {
	Format Format `json:"format"`
	Label  string `json:"label"`
}

type exporter struct {
	label         string
	mimeType      string
	fileExtension string
	render        func([]*record.Record) string
}

// The format set is closed; adding one means adding a case here.
func lookup(f Format) (exporter, bool) {
	switch f {
	case FormatJSON:
		return exporter{"JSON", "application/json", "json", renderJSON}, true
	case FormatCSV:
		return exporter{"CSV", "text/csv", "csv", renderCSV}, true
	case FormatSQL:
		return exporter{"SQL INSERT", "text/plain", "sql", renderSQL}, true
	case FormatXML:
		return exporter{"XML", "application/xml", "xml", renderXML}, true
	}
	return exporter{}, false
}

var formatOrder = []Format{FormatJSON, FormatCSV, FormatSQL, FormatXML}

// Serialize renders records in the requested format. An unknown format
// yields ErrUnsupportedFormat and no content.
func Serialize(records []*record.Record, format Format) (Result, error) {
	e, ok := lookup(format)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	return Result{
		Content:       e.render(records),
		MimeType:      e.mimeType,
		FileExtension: e.fileExtension,
	}, nil
}

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := lookup(f); !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, s)
	}
	return f, nil
}

// AvailableFormats lists the supported formats in display order.
func AvailableFormats() []FormatInfo {
	out := make([]FormatInfo, 0, len(formatOrder))
	for _, f := range formatOrder {
		e, _ := lookup(f)
		out = append(out, FormatInfo{Format: f, Label: e.label})
	}
	return out
}

func renderJSON(records []*record.Record) string {
	return record.Indent(records, "  ")
}

func renderCSV(records []*record.Record) string {
	if len(records) == 0 {
		return ""
	}

	headers := records[0].Keys()
	lines := make([]string, 0, len(records)+1)
	lines = append(lines, strings.Join(headers, ","))

	for _, rec := range records {
		cells := make([]string, len(headers))
		for i, h := range headers {
			v, _ := rec.Get(h)
			cells[i] = csvCell(textValue(v))
		}
		lines = append(lines, strings.Join(cells, ","))
	}
	return strings.Join(lines, "\n")
}

func renderSQL(records []*record.Record) string {
	if len(records) == 0 {
		return ""
	}

	lines := make([]string, 0, len(records))
	for _, rec := range records {
		cols := rec.Keys()
		vals := make([]string, len(cols))
		for i, c := range cols {
			v, _ := rec.Get(c)
			vals[i] = sqlValue(v)
		}
		lines = append(lines, fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);",
			TableName, strings.Join(cols, ", "), strings.Join(vals, ", ")))
	}
	return strings.Join(lines, "\n")
}

func renderXML(records []*record.Record) string {
	items := make([]string, 0, len(records))
	for _, rec := range records {
		keys := rec.Keys()
		fields := make([]string, len(keys))
		for i, k := range keys {
			v, _ := rec.Get(k)
			fields[i] = fmt.Sprintf("    <%s>%s</%s>", k, xmlEscaper.Replace(textValue(v)), k)
		}
		items = append(items, "  <item>\n"+strings.Join(fields, "\n")+"\n  </item>")
	}
	return "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<data>\n" + strings.Join(items, "\n") + "\n</data>"
}
