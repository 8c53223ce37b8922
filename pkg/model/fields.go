package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Fields is a string-keyed mapping that remembers insertion order. It backs
// both the raw form input and the overflow container.
type Fields struct {
	keys   []string
	values map[string]any
}

// RawFormInput is the field name to value mapping collected from a form.
// Values are strings, booleans (checkboxes) or FileList (file inputs).
type RawFormInput = Fields

// Overflow holds the form fields that did not feed a typed attribute.
type Overflow = Fields

func NewFields() *Fields {
	return &Fields{values: make(map[string]any)}
}

// FieldsFromPairs builds Fields from alternating key, value arguments.
// A trailing key without a value is ignored.
func FieldsFromPairs(kv ...any) *Fields {
	f := NewFields()
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		f.Set(key, kv[i+1])
	}
	return f
}

// Set stores value under key. Re-setting a key keeps its original position.
func (f *Fields) Set(key string, value any) {
	if f.values == nil {
		f.values = make(map[string]any)
	}
	if _, exists := f.values[key]; !exists {
		f.keys = append(f.keys, key)
	}
	f.values[key] = value
}

func (f *Fields) Get(key string) (any, bool) {
	if f == nil || f.values == nil {
		return nil, false
	}
	v, ok := f.values[key]
	return v, ok
}

func (f *Fields) Keys() []string {
	if f == nil {
		return nil
	}
	out := make([]string, len(f.keys))
	copy(out, f.keys)
	return out
}

func (f *Fields) Len() int {
	if f == nil {
		return 0
	}
	return len(f.keys)
}

// Range calls fn for each entry in insertion order until fn returns false.
func (f *Fields) Range(fn func(key string, value any) bool) {
	if f == nil {
		return
	}
	for _, k := range f.keys {
		if !fn(k, f.values[k]) {
			return
		}
	}
}

// Map returns an unordered copy, for callers that only need lookups.
func (f *Fields) Map() map[string]any {
	out := make(map[string]any, f.Len())
	f.Range(func(k string, v any) bool {
		out[k] = v
		return true
	})
	return out
}

func (f Fields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range f.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		val, err := json.Marshal(f.values[k])
		if err != nil {
			return nil, fmt.Errorf("failed to marshal field %q: %w", k, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (f *Fields) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("form input must be a JSON object, got %v", tok)
	}

	out := NewFields()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected object key %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("failed to decode field %q: %w", key, err)
		}
		value, err := decodeValue(raw)
		if err != nil {
			return fmt.Errorf("failed to decode field %q: %w", key, err)
		}
		out.Set(key, value)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*f = *out
	return nil
}

// decodeValue keeps numbers as json.Number so the original text survives,
// and recognizes arrays of file descriptors.
func decodeValue(raw json.RawMessage) (any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var files FileList
		if err := json.Unmarshal(trimmed, &files); err == nil && files.named() {
			return files, nil
		}
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// StringValue renders a form value as text. Absent values give "".
func StringValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "true"
		}
		return "false"
	case FileList:
		return strings.Join(t.Names(), ",")
	default:
		return fmt.Sprint(t)
	}
}

// IsBlank reports whether a form value carries no information: nil, a
// whitespace-only string or an empty list. false is a real answer.
func IsBlank(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case FileList:
		return len(t) == 0
	case []any:
		return len(t) == 0
	default:
		return false
	}
}
