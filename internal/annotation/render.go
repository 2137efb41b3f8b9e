// Package annotation builds display annotations from parsed study components.
package annotation

import (
	"regexp"
	"strings"
)

// placeholderPattern matches ${Field Name} placeholders in pair templates.
var placeholderPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// render substitutes every ${Field} placeholder in tmpl with the matching
// record value. It reports false when any referenced field is absent, leaving
// the caller to skip or fail; partial substitution is never produced.
func render(tmpl string, rec map[string]string) (string, bool) {
	ok := true
	out := placeholderPattern.ReplaceAllStringFunc(tmpl, func(ph string) string {
		field := strings.TrimSuffix(strings.TrimPrefix(ph, "${"), "}")
		v, found := rec[field]
		if !found {
			ok = false
			return ""
		}
		return v
	})
	if !ok {
		return "", false
	}
	return out, true
}
