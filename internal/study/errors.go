package study

import (
	"errors"
	"fmt"

	"github.com/idr/studytool/internal/schema"
)

// ErrNoComponents is returned when a study defines neither experiments nor
// screens after full processing.
var ErrNoComponents = errors.New("need to define at least one screen or experiment")

// MissingKeyError reports a mandatory key absent from the scanned lines.
type MissingKeyError struct {
	Key string
}

func (e MissingKeyError) Error() string {
	return fmt.Sprintf("could not find value for key %q", e.Key)
}

// MissingSectionError reports a component index with no matching marker line.
type MissingSectionError struct {
	Type  schema.EntityType
	Index int
}

func (e MissingSectionError) Error() string {
	return fmt.Sprintf("could not find %s %d", e.Type, e.Index)
}

// PublicationCountError reports a length mismatch between the tab-split
// publication title and author lists.
type PublicationCountError struct {
	Titles  int
	Authors int
}

func (e PublicationCountError) Error() string {
	return fmt.Sprintf("mismatching publication titles and authors (%d titles, %d author lists)", e.Titles, e.Authors)
}

// InvalidIdentifierError reports a publication identifier that fails its
// type-specific pattern.
type InvalidIdentifierError struct {
	Field string // stripped label, e.g. "PubMed ID"
	Value string
}

func (e InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Value)
}

// UnmatchedNameError reports a component name that does not follow the
// "<accession>-<token>-<token>/<slug>" pattern.
type UnmatchedNameError struct {
	Name string
}

func (e UnmatchedNameError) Error() string {
	return fmt.Sprintf("unmatched name %s", e.Name)
}
