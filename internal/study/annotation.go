package study

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// annotationExtensions are probed in order; the first one found on disk wins.
var annotationExtensions = []string{".csv", ".csv.gz"}

// resolveAnnotationFile derives the expected annotation filename for a
// component and, when it exists next to the study file, stores its public URL
// under the component's "Annotation File" field. A missing annotation file is
// not an error; a component name that does not embed the study accession is.
func (p *Parser) resolveAnnotationFile(studyPath string, c *Component) error {
	dir := filepath.Dir(studyPath)
	accession := c.Fields["Comment[IDR Study Accession]"]
	name := c.Name()

	pattern := regexp.MustCompile("^(" + regexp.QuoteMeta(accession) + `-\w+-\w+)/(\w+)$`)
	m := pattern.FindStringSubmatch(name)
	if m == nil {
		return UnmatchedNameError{Name: name}
	}
	repo, slug := m[1], m[2]

	basename := fmt.Sprintf("%s-%s-annotation", accession, slug)
	for _, ext := range annotationExtensions {
		filename := basename + ext
		if _, err := os.Stat(filepath.Join(dir, slug, filename)); err != nil {
			continue
		}

		// Inside a checkout of the study's own repository the file lives
		// under the slug directory; otherwise it is published under the
		// aggregate metadata repository keyed by the full component name.
		owner, path := p.fallbackRepo, name
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			owner, path = repo, slug
		}
		c.Fields["Annotation File"] = fmt.Sprintf("%s/%s/blob/master/%s/%s",
			p.githubBase, owner, path, filename)
		return nil
	}
	return nil
}
