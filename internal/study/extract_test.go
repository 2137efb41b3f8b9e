package study

import (
	"errors"
	"reflect"
	"testing"

	"github.com/idr/studytool/internal/schema"
)

func TestLookup_FirstMatchWins(t *testing.T) {
	lines := []string{
		"Study Title\tFirst title",
		"Study Title\tSecond title",
	}
	v, ok := lookup(lines, "Study Title")
	if !ok {
		t.Fatal("expected a match")
	}
	if v != "First title" {
		t.Errorf("expected first match, got %q", v)
	}
}

func TestLookup_ExactPrefixThenTab(t *testing.T) {
	lines := []string{
		"Study Title Extra\tnot this",
		"Study Titl\tnot this either",
		"Study Title\tyes",
	}
	v, ok := lookup(lines, "Study Title")
	if !ok || v != "yes" {
		t.Errorf("expected %q, got %q (ok=%v)", "yes", v, ok)
	}
}

func TestLookup_BracketKeys(t *testing.T) {
	lines := []string{"Comment[IDR Study Accession]\tidr0042\r"}
	v, ok := lookup(lines, "Comment[IDR Study Accession]")
	if !ok {
		t.Fatal("expected bracket-bearing key to match")
	}
	if v != "idr0042" {
		t.Errorf("expected trailing whitespace stripped, got %q", v)
	}
}

func TestLookup_Missing(t *testing.T) {
	if _, ok := lookup([]string{"Other\tvalue"}, "Study Title"); ok {
		t.Error("expected no match")
	}
}

func TestRequireValue_Missing(t *testing.T) {
	_, err := requireValue([]string{"Other\tvalue"}, "Study Title")
	var mk MissingKeyError
	if !errors.As(err, &mk) {
		t.Fatalf("expected MissingKeyError, got %v", err)
	}
	if mk.Key != "Study Title" {
		t.Errorf("expected key in error, got %q", mk.Key)
	}
}

func TestRequireValue_Empty(t *testing.T) {
	_, err := requireValue([]string{"Study Title\t"}, "Study Title")
	var mk MissingKeyError
	if !errors.As(err, &mk) {
		t.Fatalf("expected MissingKeyError for empty mandatory value, got %v", err)
	}
}

func TestSection_Boundaries(t *testing.T) {
	lines := []string{
		"Experiment Number\t1",
		"A",
		"Experiment Number\t2",
		"B",
	}

	first, err := section(lines, schema.Experiment, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Experiment Number\t1", "A"}
	if !reflect.DeepEqual(first, want) {
		t.Errorf("section 1: expected %q, got %q", want, first)
	}

	second, err := section(lines, schema.Experiment, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want = []string{"Experiment Number\t2", "B"}
	if !reflect.DeepEqual(second, want) {
		t.Errorf("section 2: expected %q, got %q", want, second)
	}
}

func TestSection_PrecedingLinesSkipped(t *testing.T) {
	lines := []string{
		"Study Title\tSomething",
		"Screen Number\t1",
		"Screen Description\tdesc",
	}
	got, err := section(lines, schema.Screen, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Screen Number\t1", "Screen Description\tdesc"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSection_IndexNotFound(t *testing.T) {
	lines := []string{"Experiment Number\t1", "A"}
	_, err := section(lines, schema.Experiment, 3)
	var ms MissingSectionError
	if !errors.As(err, &ms) {
		t.Fatalf("expected MissingSectionError, got %v", err)
	}
	if ms.Type != schema.Experiment || ms.Index != 3 {
		t.Errorf("unexpected error detail: %+v", ms)
	}
}

func TestExtract_OptionalOnlyWhenNonEmpty(t *testing.T) {
	lines := []string{
		"Required\tvalue",
		"Present\tkept",
		"Empty\t",
	}
	rec, err := extract(lines, []string{"Required"}, []string{"Present", "Empty", "Absent"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec["Required"] != "value" || rec["Present"] != "kept" {
		t.Errorf("unexpected record: %v", rec)
	}
	for _, k := range []string{"Empty", "Absent"} {
		if _, ok := rec[k]; ok {
			t.Errorf("expected %q to be omitted", k)
		}
	}
}

func TestExtract_MissingMandatory(t *testing.T) {
	_, err := extract([]string{"Other\tvalue"}, []string{"Required"}, nil)
	var mk MissingKeyError
	if !errors.As(err, &mk) {
		t.Fatalf("expected MissingKeyError, got %v", err)
	}
}
