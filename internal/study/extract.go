package study

import (
	"strconv"
	"strings"

	"github.com/idr/studytool/internal/schema"
)

// lookup returns the value of the first line in lines whose first
// tab-separated field equals key. The value is the remainder of the line with
// trailing whitespace stripped. Later duplicate keys are ignored.
//
// Keys are compared by exact prefix-then-tab equality, so bracket-bearing
// keys like "Comment[IDR Study Accession]" need no escaping.
func lookup(lines []string, key string) (string, bool) {
	prefix := key + "\t"
	for _, line := range lines {
		if rest, ok := strings.CutPrefix(line, prefix); ok {
			return strings.TrimRight(rest, " \t\r\n"), true
		}
	}
	return "", false
}

// requireValue is lookup for mandatory keys; a miss or an empty value is a
// MissingKeyError.
func requireValue(lines []string, key string) (string, error) {
	v, ok := lookup(lines, key)
	if !ok || v == "" {
		return "", MissingKeyError{Key: key}
	}
	return v, nil
}

// markerIndex parses a component section marker of the form
// "<type> Number\t<integer>". It returns the marker's integer and true, or
// false if the line is not a marker for the given type.
func markerIndex(line string, t schema.EntityType) (int, bool) {
	rest, ok := strings.CutPrefix(line, string(t)+" Number\t")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil {
		return 0, false
	}
	return n, true
}

// section isolates the contiguous run of lines belonging to the index-th
// component of the given type (1-based). The run starts at the marker line
// whose number equals index and ends just before the next marker carrying a
// different number; that next marker belongs to the following section and is
// excluded. A never-seen index is a MissingSectionError.
func section(lines []string, t schema.EntityType, index int) ([]string, error) {
	var out []string
	found := false
	for _, line := range lines {
		if n, ok := markerIndex(line, t); ok {
			if n == index {
				found = true
			} else if found {
				return out, nil
			}
		}
		if found {
			out = append(out, line)
		}
	}
	if len(out) == 0 {
		return nil, MissingSectionError{Type: t, Index: index}
	}
	return out, nil
}

// extract applies the mandatory and optional key lists over a line subset,
// building a flat record. A missing mandatory key fails; optional keys are
// included only when present with a non-empty value.
func extract(lines []string, mandatory, optional []string) (Record, error) {
	rec := make(Record, len(mandatory)+len(optional))
	for _, key := range mandatory {
		v, err := requireValue(lines, key)
		if err != nil {
			return nil, err
		}
		rec[key] = v
	}
	for _, key := range optional {
		if v, ok := lookup(lines, key); ok && v != "" {
			rec[key] = v
		}
	}
	return rec, nil
}
