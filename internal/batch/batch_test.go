// internal/batch/batch_test.go
package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"custpdf/internal/record"
	"custpdf/internal/render"
)

var testKeys = []string{"case_id", "person_id", "id"}

func decode(t *testing.T, s string) *record.Source {
	t.Helper()
	src, err := record.Decode([]byte(s))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return src
}

func TestRunCountsAndSkips(t *testing.T) {
	src := decode(t, `{
		"cases":   [{"case_id":"C1"}, 42, {"case_id":"C2"}, "junk"],
		"vehicles": "not-a-list",
		"persons": [{"person_id":"P1"}],
		"extras":  [{"id":"E1"}]
	}`)
	dir := t.TempDir()
	res, err := Run(src, Options{
		Collections: []string{"cases", "vehicles", "persons"},
		IDKeys:      testKeys,
		OutDir:      dir,
	}, &render.Renderer{}, zerolog.Nop())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Count != 3 {
		t.Errorf("count = %d, want 3", res.Count)
	}
	for _, name := range []string{"cases_C1.pdf", "cases_C2.pdf", "persons_P1.pdf"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "extras_E1.pdf")); err == nil {
		t.Errorf("unlisted collection was rendered")
	}
}

func TestRunEmptyCollections(t *testing.T) {
	src := decode(t, `{"cases":[],"persons":[]}`)
	dir := t.TempDir()
	res, err := Run(src, Options{
		Collections: []string{"cases", "persons"},
		IDKeys:      testKeys,
		OutDir:      dir,
	}, &render.Renderer{}, zerolog.Nop())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Count != 0 || len(res.Files) != 0 {
		t.Errorf("expected empty result, got %+v", res)
	}
}

func TestRunCollisionOverwrites(t *testing.T) {
	// Same resolved identifier: the later record wins, both are counted.
	src := decode(t, `{"cases":[{"case_id":"C1","v":1},{"case_id":"C1","v":2}]}`)
	dir := t.TempDir()
	res, err := Run(src, Options{
		Collections: []string{"cases"},
		IDKeys:      testKeys,
		OutDir:      dir,
	}, &render.Renderer{}, zerolog.Nop())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Count != 2 {
		t.Errorf("count = %d, want 2", res.Count)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("files on disk = %d, want 1", len(entries))
	}
}

func TestRunCreatesOutDir(t *testing.T) {
	src := decode(t, `{"cases":[{"case_id":"C1"}]}`)
	dir := filepath.Join(t.TempDir(), "nested", "out")
	if _, err := Run(src, Options{
		Collections: []string{"cases"},
		IDKeys:      testKeys,
		OutDir:      dir,
	}, &render.Renderer{}, zerolog.Nop()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "cases_C1.pdf")); err != nil {
		t.Errorf("missing output: %v", err)
	}
}
