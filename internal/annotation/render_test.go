package annotation

import "testing"

func TestRender_Substitution(t *testing.T) {
	rec := map[string]string{"Study Type": "screen", "Study Organism": "Homo sapiens"}
	out, ok := render("${Study Type} of ${Study Organism}", rec)
	if !ok {
		t.Fatal("expected render to succeed")
	}
	if out != "screen of Homo sapiens" {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestRender_MissingField(t *testing.T) {
	rec := map[string]string{"Study Type": "screen"}
	if _, ok := render("${Study Type} ${Study Organism}", rec); ok {
		t.Error("expected render to report a missing field")
	}
}

func TestRender_BracketFieldNames(t *testing.T) {
	rec := map[string]string{"Comment[IDR Screen Name]": "idr0001-a-b/screenA"}
	out, ok := render("${Comment[IDR Screen Name]}", rec)
	if !ok || out != "idr0001-a-b/screenA" {
		t.Errorf("expected bracket field substitution, got %q (ok=%v)", out, ok)
	}
}

func TestRender_NoPlaceholders(t *testing.T) {
	out, ok := render("plain text", nil)
	if !ok || out != "plain text" {
		t.Errorf("expected passthrough, got %q (ok=%v)", out, ok)
	}
}
