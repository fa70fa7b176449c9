package export

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dto-pump/internal/record"
)

func rec(pairs ...any) *record.Record {
	r := record.New()
	for i := 0; i+1 < len(pairs); i += 2 {
		r.Set(pairs[i].(string), pairs[i+1])
	}
	return r
}

func mustSerialize(t *testing.T, records []*record.Record, f Format) Result {
	t.Helper()
	res, err := Serialize(records, f)
	require.NoError(t, err)
	return res
}

func TestSerialize_Metadata(t *testing.T) {
	tests := []struct {
		format    Format
		mimeType  string
		extension string
	}{
		{FormatJSON, "application/json", "json"},
		{FormatCSV, "text/csv", "csv"},
		{FormatSQL, "text/plain", "sql"},
		{FormatXML, "application/xml", "xml"},
	}
	for _, tt := range tests {
		res := mustSerialize(t, nil, tt.format)
		assert.Equal(t, tt.mimeType, res.MimeType)
		assert.Equal(t, tt.extension, res.FileExtension)
	}
}

func TestSerialize_Empty(t *testing.T) {
	assert.Equal(t, "[]", mustSerialize(t, nil, FormatJSON).Content)
	assert.Equal(t, "", mustSerialize(t, nil, FormatCSV).Content)
	assert.Equal(t, "", mustSerialize(t, nil, FormatSQL).Content)

	xml := mustSerialize(t, []*record.Record{}, FormatXML).Content
	assert.Equal(t, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<data>\n\n</data>", xml)
	assert.NotContains(t, xml, "<item>")
}

func TestSerialize_UnsupportedFormat(t *testing.T) {
	res, err := Serialize([]*record.Record{rec("a", 1)}, Format("yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
	assert.Contains(t, err.Error(), "yaml")
	assert.Empty(t, res.Content)
}

func TestSerialize_JSON(t *testing.T) {
	records := []*record.Record{
		rec("name", "Ann", "age", 30, "tags", []any{"a", "b"}, "meta", rec("ok", true), "gone", nil),
	}
	expected := `[
  {
    "name": "Ann",
    "age": 30,
    "tags": [
      "a",
      "b"
    ],
    "meta": {
      "ok": true
    },
    "gone": null
  }
]`
	assert.Equal(t, expected, mustSerialize(t, records, FormatJSON).Content)
}

func TestSerialize_CSV(t *testing.T) {
	records := []*record.Record{
		rec("a", "x,y", "b", `he said "hi"`),
		rec("a", "plain", "b", nil, "extra", "ignored"),
		rec("b", "line\nbreak"),
	}
	content := mustSerialize(t, records, FormatCSV).Content
	lines := strings.SplitN(content, "\n", 3)

	assert.Equal(t, "a,b", lines[0])
	assert.Equal(t, `"x,y","he said ""hi"""`, lines[1])
	assert.Equal(t, "plain,", lines[2][:len("plain,")])
	assert.True(t, strings.HasSuffix(content, ",\"line\nbreak\""))
}

func TestSerialize_CSVValueForms(t *testing.T) {
	records := []*record.Record{
		rec("n", 1.5, "flag", false, "list", []any{1, 2}, "obj", rec("k", "v")),
	}
	content := mustSerialize(t, records, FormatCSV).Content
	assert.Equal(t, "n,flag,list,obj\n1.5,false,\"[1,2]\",\"{\"\"k\"\":\"\"v\"\"}\"", content)
}

func TestSerialize_SQL(t *testing.T) {
	records := []*record.Record{
		rec("name", "O'Brien"),
		rec("id", 7, "active", true, "score", nil, "meta", rec("note", "it's")),
	}
	content := mustSerialize(t, records, FormatSQL).Content
	lines := strings.Split(content, "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, "INSERT INTO generated_data (name) VALUES ('O''Brien');", lines[0])
	assert.Equal(t, `INSERT INTO generated_data (id, active, score, meta) VALUES (7, 1, NULL, '{"note":"it''s"}');`, lines[1])
}

func TestSerialize_KeepsHTMLCharactersInJSON(t *testing.T) {
	records := []*record.Record{
		rec("company", "Smith & Sons <Ltd>", "meta", rec("k", "a&b")),
	}

	assert.Equal(t, "[\n  {\n    \"company\": \"Smith & Sons <Ltd>\",\n    \"meta\": {\n      \"k\": \"a&b\"\n    }\n  }\n]",
		mustSerialize(t, records, FormatJSON).Content)
	assert.Equal(t, "company,meta\nSmith & Sons <Ltd>,\"{\"\"k\"\":\"\"a&b\"\"}\"",
		mustSerialize(t, records, FormatCSV).Content)
	assert.Equal(t, `INSERT INTO generated_data (company, meta) VALUES ('Smith & Sons <Ltd>', '{"k":"a&b"}');`,
		mustSerialize(t, records, FormatSQL).Content)
}

func TestSerialize_XML(t *testing.T) {
	records := []*record.Record{
		rec("note", `<a> & "b"`, "q", "it's"),
		rec("n", 2, "none", nil),
	}
	expected := "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<data>\n" +
		"  <item>\n    <note>&lt;a&gt; &amp; &quot;b&quot;</note>\n    <q>it&apos;s</q>\n  </item>\n" +
		"  <item>\n    <n>2</n>\n    <none></none>\n  </item>\n" +
		"</data>"
	assert.Equal(t, expected, mustSerialize(t, records, FormatXML).Content)
}

func TestParseFormatAndAvailableFormats(t *testing.T) {
	f, err := ParseFormat(" CSV ")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	_, err = ParseFormat("yaml")
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	assert.Equal(t, []FormatInfo{
		{FormatJSON, "JSON"},
		{FormatCSV, "CSV"},
		{FormatSQL, "SQL INSERT"},
		{FormatXML, "XML"},
	}, AvailableFormats())
}
