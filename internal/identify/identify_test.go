// internal/identify/identify_test.go
package identify

import (
	"encoding/json"
	"strings"
	"testing"

	"custpdf/internal/record"
)

var idKeys = []string{"person_id", "vehicle_id", "first_info_id", "case_id", "trip_id", "id"}

func mustRecord(t *testing.T, s string) *record.Record {
	t.Helper()
	rec, ok, err := record.Parse(json.RawMessage(s))
	if err != nil || !ok {
		t.Fatalf("parse %s: ok=%v err=%v", s, ok, err)
	}
	return rec
}

func TestResolvePriorityOrder(t *testing.T) {
	rec := mustRecord(t, `{"id":"generic","case_id":"C1"}`)
	if got := Resolve(rec, idKeys); got != "C1" {
		t.Errorf("got %q, want case_id before id", got)
	}
}

func TestResolveNumericID(t *testing.T) {
	rec := mustRecord(t, `{"trip_id":42}`)
	if got := Resolve(rec, idKeys); got != "42" {
		t.Errorf("got %q, want 42", got)
	}
}

func TestResolveSkipsNullCandidate(t *testing.T) {
	rec := mustRecord(t, `{"case_id":null,"id":"X9"}`)
	if got := Resolve(rec, idKeys); got != "X9" {
		t.Errorf("got %q, want fallthrough to id", got)
	}
}

func TestResolveFallbackDeterministic(t *testing.T) {
	a := Resolve(mustRecord(t, `{"name":"n","note":"x"}`), idKeys)
	b := Resolve(mustRecord(t, `{"name":"n","note":"x"}`), idKeys)
	if a != b {
		t.Errorf("fallback not stable: %q vs %q", a, b)
	}
	if !strings.HasPrefix(a, "obj_") {
		t.Errorf("fallback %q lacks obj_ prefix", a)
	}
}

func TestResolveFallbackIgnoresKeyOrder(t *testing.T) {
	a := Resolve(mustRecord(t, `{"a":1,"b":2}`), idKeys)
	b := Resolve(mustRecord(t, `{"b":2,"a":1}`), idKeys)
	if a != b {
		t.Errorf("fallback sensitive to key order: %q vs %q", a, b)
	}
	c := Resolve(mustRecord(t, `{"a":1,"b":3}`), idKeys)
	if a == c {
		t.Errorf("different content hashed to same id %q", a)
	}
}

func TestFilenameIdempotentOnSafe(t *testing.T) {
	safe := "cases_C1.final-v2"
	if got := Filename("cases", "C1.final-v2"); got != safe {
		t.Errorf("got %q, want %q", got, safe)
	}
	again := Filename("cases", "C1.final-v2")
	if again != safe {
		t.Errorf("not idempotent: %q", again)
	}
}

func TestFilenameReplacesUnsafeRuns(t *testing.T) {
	if got := Filename("cases", `a b//c:*?"d`); got != "cases_a_b_c_d" {
		t.Errorf("got %q", got)
	}
	if got := Filename("first info reports", "Zürich 42"); got != "first_info_reports_Z_rich_42" {
		t.Errorf("got %q", got)
	}
}

func TestFilenameCappedAt120(t *testing.T) {
	got := Filename("cases", strings.Repeat("x", 500))
	if len(got) != 120 {
		t.Errorf("len = %d, want 120", len(got))
	}
}

func TestFilenameTotal(t *testing.T) {
	for _, id := range []string{"", " ", "\x00\xff", "日本語", strings.Repeat("/", 300)} {
		got := Filename("c", id)
		if strings.ContainsAny(got, `/\: *?"<>|`) {
			t.Errorf("unsafe output %q for id %q", got, id)
		}
		if len(got) > 120 {
			t.Errorf("too long for id %q", id)
		}
	}
}
