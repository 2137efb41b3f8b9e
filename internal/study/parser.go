package study

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/idr/studytool/internal/schema"
)

const (
	// DefaultGitHubBase is the organization URL under which annotation
	// files are published.
	DefaultGitHubBase = "https://github.com/IDR"

	// DefaultFallbackRepo is the repository owning annotation files when a
	// study directory is not itself a checkout.
	DefaultFallbackRepo = "idr-metadata"
)

// Parser parses study files against a schema registry.
type Parser struct {
	reg          schema.Registry
	githubBase   string
	fallbackRepo string
}

// Option configures a Parser.
type Option func(*Parser)

// WithGitHubBase overrides the base URL used for annotation file links.
func WithGitHubBase(base string) Option {
	return func(p *Parser) {
		p.githubBase = strings.TrimRight(base, "/")
	}
}

// WithFallbackRepo overrides the repository used for annotation file links
// when the study directory has no local checkout marker.
func WithFallbackRepo(repo string) Option {
	return func(p *Parser) {
		p.fallbackRepo = repo
	}
}

// NewParser creates a parser over the given registry.
func NewParser(reg schema.Registry, opts ...Option) *Parser {
	p := &Parser{
		reg:          reg,
		githubBase:   DefaultGitHubBase,
		fallbackRepo: DefaultFallbackRepo,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseFile reads a study file and builds its study record and component
// list. The file is read fully before any parsing begins. Any malformed
// metadata aborts with an error; there is no partial result.
func (p *Parser) ParseFile(path string) (*Parsed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading study file: %w", err)
	}
	return p.parseLines(path, strings.Split(string(data), "\n"))
}

func (p *Parser) parseLines(path string, lines []string) (*Parsed, error) {
	fields, err := extract(lines, p.reg.Mandatory(schema.Study), p.reg.Optional(schema.Study))
	if err != nil {
		return nil, err
	}

	pubs, err := reconcilePublications(fields)
	if err != nil {
		return nil, err
	}

	parsed := &Parsed{
		Path:  path,
		Study: Study{Fields: fields, Publications: pubs},
	}

	for _, t := range schema.ComponentTypes {
		n, err := componentCount(fields, t)
		if err != nil {
			return nil, err
		}
		for i := 1; i <= n; i++ {
			c, err := p.parseComponent(parsed, lines, t, i)
			if err != nil {
				return nil, err
			}
			parsed.Components = append(parsed.Components, c)
		}
	}

	if len(parsed.Components) == 0 {
		return nil, ErrNoComponents
	}
	return parsed, nil
}

// componentCount reads "Study <Type>s Number", defaulting to 0 when absent.
func componentCount(fields Record, t schema.EntityType) (int, error) {
	v, ok := fields[fmt.Sprintf("Study %ss Number", t)]
	if !ok {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parsing Study %ss Number: %w", t, err)
	}
	return n, nil
}

// parseComponent builds one component record: its own section fields merged
// with every study field (component values win), tagged with its type, with
// the annotation file URL resolved when one exists on disk.
func (p *Parser) parseComponent(parsed *Parsed, lines []string, t schema.EntityType, index int) (*Component, error) {
	sub, err := section(lines, t, index)
	if err != nil {
		return nil, err
	}

	own, err := extract(sub, p.reg.Mandatory(t), p.reg.Optional(t))
	if err != nil {
		return nil, err
	}

	fields := parsed.Study.Fields.Clone()
	for k, v := range own {
		fields[k] = v
	}
	fields["Type"] = string(t)

	c := &Component{
		Type:         t,
		Fields:       fields,
		Publications: parsed.Study.Publications,
	}
	if err := p.resolveAnnotationFile(parsed.Path, c); err != nil {
		return nil, err
	}
	return c, nil
}
