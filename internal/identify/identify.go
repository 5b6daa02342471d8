// internal/identify/identify.go
package identify

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"regexp"
	"strings"

	"custpdf/internal/record"
)

// Resolve returns the identifier for rec: the string form of the first
// candidate key that is present with a non-null value, in idKeys order.
// Records matching no candidate get a content-derived fallback of the
// form "obj_<n>".
func Resolve(rec *record.Record, idKeys []string) string {
	for _, key := range idKeys {
		for _, f := range rec.Fields {
			if f.Key != key {
				continue
			}
			if s, ok := stringForm(f.Value); ok {
				return s
			}
			break // present but null: try the next candidate key
		}
	}
	return fallback(rec)
}

func stringForm(raw json.RawMessage) (string, bool) {
	t := strings.TrimSpace(string(raw))
	switch {
	case t == "" || t == "null":
		return "", false
	case t[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true
	default:
		return t, true
	}
}

const fallbackSpan = 10_000_000_000

// fallback derives a stable identifier from the record content: FNV-64a
// over the key-sorted serialization, folded into [0, 10^10). Unlike a
// process-seeded hash, the result is identical across runs and hosts.
func fallback(rec *record.Record) string {
	canon, err := canonical(rec)
	if err != nil {
		canon = rec.Raw()
	}
	h := fnv.New64a()
	_, _ = h.Write(canon)
	return fmt.Sprintf("obj_%d", h.Sum64()%fallbackSpan)
}

// canonical re-marshals the record through map types so that keys come
// out sorted regardless of source order.
func canonical(rec *record.Record) ([]byte, error) {
	var v any
	if err := json.Unmarshal(rec.Raw(), &v); err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

const maxFilename = 120

var unsafeRun = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

// Filename builds the filesystem-safe base name (no extension) for a
// record's output file. Total for any input; never fails.
func Filename(collection, id string) string {
	s := strings.TrimSpace(collection + "_" + id)
	s = unsafeRun.ReplaceAllString(s, "_")
	if len(s) > maxFilename {
		s = s[:maxFilename]
	}
	return s
}
