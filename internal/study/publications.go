package study

import (
	"regexp"
	"strings"
)

// Identifier patterns are fully anchored: a publication identifier must match
// in its entirety, not merely by prefix.
var (
	pubmedPattern = regexp.MustCompile(`^\d+$`)
	pmcPattern    = regexp.MustCompile(`^PMC\d+$`)
	doiPattern    = regexp.MustCompile(`^https?://(dx\.)?doi\.org/.+$`)
)

// identifierFields maps each multi-valued study identifier field to the
// stripped label stored on the publication record and its pattern.
var identifierFields = []struct {
	key     string
	label   string
	pattern *regexp.Regexp
}{
	{"Study PubMed ID", "PubMed ID", pubmedPattern},
	{"Study PMC ID", "PMC ID", pmcPattern},
	{"Study DOI", "DOI", doiPattern},
}

// reconcilePublications splits the study's multi-valued publication fields
// into parallel publication records. Titles and author lists must tab-split
// to equal lengths. The three optional identifier lists share the same index
// space; empty entries leave that slot's field unset without disturbing
// alignment, and non-empty entries must match their pattern.
func reconcilePublications(fields Record) ([]Record, error) {
	titles := strings.Split(fields["Study Publication Title"], "\t")
	authors := strings.Split(fields["Study Author List"], "\t")
	if len(titles) != len(authors) {
		return nil, PublicationCountError{Titles: len(titles), Authors: len(authors)}
	}

	pubs := make([]Record, len(titles))
	for i := range titles {
		pubs[i] = Record{
			"Title":       titles[i],
			"Author List": authors[i],
		}
	}

	for _, f := range identifierFields {
		raw, ok := fields[f.key]
		if !ok {
			continue
		}
		for i, id := range strings.Split(raw, "\t") {
			if id == "" || i >= len(pubs) {
				continue
			}
			if !f.pattern.MatchString(id) {
				return nil, InvalidIdentifierError{Field: f.label, Value: id}
			}
			pubs[i][f.label] = id
		}
	}

	return pubs, nil
}
