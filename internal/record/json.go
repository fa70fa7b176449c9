// Package record holds the ordered, schema-less values that flow between the
// generator and the exporters, plus a JSON codec that keeps object key order.
package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	gojson "github.com/goccy/go-json"
)

// Decode parses JSON text. Objects become *Record with keys in source order,
// arrays become []any and numbers stay gojson.Number. The text is checked
// against the strict JSON grammar before the ordered walk.
func Decode(text string) (any, error) {
	var raw json.RawMessage
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, err
	}

	dec := gojson.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}

	if tok, err := dec.Token(); err != io.EOF {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("unexpected %v after top-level value", tok)
	}
	return v, nil
}

func decodeValue(dec *gojson.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}

	switch t := tok.(type) {
	case gojson.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", rune(t))
	case float64:
		return gojson.Number(formatFloat(t)), nil
	default:
		// string, bool, gojson.Number or nil
		return t, nil
	}
}

func decodeObject(dec *gojson.Decoder) (*Record, error) {
	rec := New()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		rec.Set(key, v)
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return rec, nil
}

func decodeArray(dec *gojson.Decoder) ([]any, error) {
	items := []any{}
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	if err := expectDelim(dec, ']'); err != nil {
		return nil, err
	}
	return items, nil
}

func expectDelim(dec *gojson.Decoder, want gojson.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return io.ErrUnexpectedEOF
		}
		return err
	}
	if d, ok := tok.(gojson.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", rune(want), tok)
	}
	return nil
}

// Compact renders v as JSON without whitespace.
func Compact(v any) string {
	var b strings.Builder
	writeValue(&b, v, "", 0)
	return b.String()
}

// Indent renders v as JSON with one indent unit per nesting level.
// Empty arrays and objects stay on one line ("[]", "{}").
func Indent(v any, indent string) string {
	var b strings.Builder
	writeValue(&b, v, indent, 0)
	return b.String()
}

func writeValue(b *strings.Builder, v any, indent string, depth int) {
	switch val := v.(type) {
	case nil:
		b.WriteString("null")
	case bool:
		if val {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case string:
		writeString(b, val)
	case []any:
		writeArray(b, val, indent, depth)
	case []*Record:
		items := make([]any, len(val))
		for i, r := range val {
			items[i] = r
		}
		writeArray(b, items, indent, depth)
	case *Record:
		writeObject(b, val.keys, val.values, indent, depth)
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		writeObject(b, keys, val, indent, depth)
	default:
		if f, ok := Float(v); ok {
			if math.IsNaN(f) || math.IsInf(f, 0) {
				b.WriteString("null")
				return
			}
			b.WriteString(FormatNumber(v))
			return
		}
		out, err := marshal(v)
		if err != nil {
			b.WriteString("null")
			return
		}
		b.Write(out)
	}
}

func writeArray(b *strings.Builder, items []any, indent string, depth int) {
	if len(items) == 0 {
		b.WriteString("[]")
		return
	}
	b.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			b.WriteByte(',')
		}
		newline(b, indent, depth+1)
		writeValue(b, item, indent, depth+1)
	}
	newline(b, indent, depth)
	b.WriteByte(']')
}

func writeObject(b *strings.Builder, keys []string, values map[string]any, indent string, depth int) {
	if len(keys) == 0 {
		b.WriteString("{}")
		return
	}
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		newline(b, indent, depth+1)
		writeString(b, k)
		b.WriteByte(':')
		if indent != "" {
			b.WriteByte(' ')
		}
		writeValue(b, values[k], indent, depth+1)
	}
	newline(b, indent, depth)
	b.WriteByte('}')
}

func newline(b *strings.Builder, indent string, depth int) {
	if indent == "" {
		return
	}
	b.WriteByte('\n')
	for i := 0; i < depth; i++ {
		b.WriteString(indent)
	}
}

// marshal leaves '&', '<', '>', U+2028 and U+2029 unescaped.
func marshal(v any) ([]byte, error) {
	return gojson.MarshalWithOption(v, gojson.DisableHTMLEscape(), gojson.DisableNormalizeUTF8())
}

func writeString(b *strings.Builder, s string) {
	out, err := marshal(s)
	if err != nil {
		b.WriteString(`""`)
		return
	}
	b.Write(out)
}
