// internal/record/source.go
package record

import (
	"encoding/json"
	"fmt"
	"os"
)

// Source is the parsed input document: collection name → raw elements.
// Collections whose value is not a JSON array are dropped at decode time.
type Source struct {
	collections map[string][]json.RawMessage
}

// Load reads and decodes the source document at path. A missing file or
// malformed JSON is fatal; nothing downstream runs after a Load error.
func Load(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	src, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return src, nil
}

// Decode parses a source document from raw bytes.
func Decode(data []byte) (*Source, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, err
	}
	s := &Source{collections: make(map[string][]json.RawMessage, len(top))}
	for name, raw := range top {
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			// Not an array: the whole collection is skipped.
			continue
		}
		s.collections[name] = items
	}
	return s, nil
}

// Collection returns the raw elements of a named collection and whether
// the collection exists as an array in the source document.
func (s *Source) Collection(name string) ([]json.RawMessage, bool) {
	items, ok := s.collections[name]
	return items, ok
}
