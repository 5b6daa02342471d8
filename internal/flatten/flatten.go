// internal/flatten/flatten.go
package flatten

import (
	"bytes"
	"encoding/json"
	"strings"

	"custpdf/internal/record"
)

// Pair is one printable field of a record.
type Pair struct {
	Key   string
	Value string
}

// Pairs converts rec's fields into printable pairs, keeping the source
// document's field order.
func Pairs(rec *record.Record) []Pair {
	out := make([]Pair, 0, len(rec.Fields))
	for _, f := range rec.Fields {
		out = append(out, Pair{Key: f.Key, Value: Display(f.Value)})
	}
	return out
}

// Display renders one raw JSON value for human reading: strings come out
// unquoted, null as the empty string, nested structures as their compact
// serialization with original key order and non-ASCII text intact, and
// the remaining scalars as their literal text.
func Display(raw json.RawMessage) string {
	t := strings.TrimSpace(string(raw))
	if t == "" || t == "null" {
		return ""
	}
	switch t[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return t
		}
		return s
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return t
		}
		return buf.String()
	default:
		return t
	}
}
