package schema

import "testing"

func TestDefault_KeyCounts(t *testing.T) {
	reg := Default()

	tests := []struct {
		entity    EntityType
		mandatory int
		optional  int
	}{
		{Study, 7, 11},
		{Experiment, 4, 2},
		{Screen, 5, 3},
	}

	for _, tt := range tests {
		if got := len(reg.Mandatory(tt.entity)); got != tt.mandatory {
			t.Errorf("%s: expected %d mandatory keys, got %d", tt.entity, tt.mandatory, got)
		}
		if got := len(reg.Optional(tt.entity)); got != tt.optional {
			t.Errorf("%s: expected %d optional keys, got %d", tt.entity, tt.optional, got)
		}
	}
}

func TestDefault_AccessionKeyFirst(t *testing.T) {
	reg := Default()
	keys := reg.Mandatory(Study)
	if keys[0] != "Comment[IDR Study Accession]" {
		t.Errorf("expected accession key first, got %q", keys[0])
	}
}

func TestDefault_CountKeysOptional(t *testing.T) {
	reg := Default()
	found := map[string]bool{}
	for _, k := range reg.Optional(Study) {
		found[k] = true
	}
	for _, k := range []string{"Study Experiments Number", "Study Screens Number"} {
		if !found[k] {
			t.Errorf("expected %q among optional study keys", k)
		}
	}
}
