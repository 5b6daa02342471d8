// internal/record/record.go
package record

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field is one key/value pair of a record. The value is kept as the raw
// JSON it was written with.
type Field struct {
	Key   string
	Value json.RawMessage
}

// Record is a single JSON object with its fields in source order.
type Record struct {
	Fields []Field
	raw    json.RawMessage
}

// Raw returns the record's compacted original serialization.
func (r *Record) Raw() json.RawMessage { return r.raw }

// Indent returns the record pretty-printed with two-space indentation.
// Field order and any non-ASCII text come through exactly as in the
// source document.
func (r *Record) Indent() ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, r.raw, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Parse decodes raw as a JSON object, preserving field order. The second
// return is false when raw is valid JSON but not an object.
func Parse(raw json.RawMessage) (*Record, bool, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, false, fmt.Errorf("parse record: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, false, nil
	}

	rec := &Record{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, false, fmt.Errorf("parse record: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, false, fmt.Errorf("parse record: key is %T, want string", tok)
		}
		var val json.RawMessage
		if err := dec.Decode(&val); err != nil {
			return nil, false, fmt.Errorf("parse record field %q: %w", key, err)
		}
		rec.Fields = append(rec.Fields, Field{Key: key, Value: val})
	}
	if _, err := dec.Token(); err != nil {
		return nil, false, fmt.Errorf("parse record: %w", err)
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, false, fmt.Errorf("parse record: %w", err)
	}
	rec.raw = buf.Bytes()
	return rec, true, nil
}
