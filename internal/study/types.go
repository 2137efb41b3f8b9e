// Package study parses IDR study description files.
//
// A study file is a flat list of tab-separated Key\tValue lines describing a
// study and its components (experiments or screens). Component sections are
// delimited solely by "<Type> Number\t<index>" marker lines.
package study

import "github.com/idr/studytool/internal/schema"

// Record is a flat string-keyed metadata record.
type Record map[string]string

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Study is the top-level metadata record for one study file.
// It is immutable after ParseFile returns.
type Study struct {
	Fields Record

	// Publications holds one record per publication, positionally aligned
	// across the study's multi-valued publication fields. Keys: "Title",
	// "Author List", and optionally "PubMed ID", "PMC ID", "DOI".
	Publications []Record
}

// Component is one experiment or screen discovered in a study file.
// Fields contains the component's own keys merged with every study field
// (component values win on collision), a "Type" entry, and an optional
// "Annotation File" URL.
type Component struct {
	Type         schema.EntityType
	Fields       Record
	Publications []Record
}

// Name returns the component's IDR name, e.g. "idr0001-author-title/screenA".
func (c *Component) Name() string {
	return c.Fields["Comment[IDR "+string(c.Type)+" Name]"]
}

// Parsed is the result of parsing one study file.
type Parsed struct {
	Path       string
	Study      Study
	Components []*Component
}
