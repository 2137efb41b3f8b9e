package annotation

import (
	"fmt"

	"github.com/idr/studytool/internal/schema"
	"github.com/idr/studytool/internal/study"
)

// KV is one rendered label/value entry of an annotation map.
type KV struct {
	Label string
	Value string
}

// Pair couples a display label with the template producing its value.
type Pair struct {
	Label    string
	Template string
}

// Layout is the per-entity-type annotation configuration: how to name and
// describe a component, and which label/template pairs open its map.
type Layout struct {
	Name        string
	Description string
	Top         []Pair
}

// publicationPairs are rendered once per publication record, between the top
// and bottom pairs.
var publicationPairs = []Pair{
	{"Publication Title", "${Title}"},
	{"Publication Authors", "${Author List}"},
	{"Pubmed ID", "${PubMed ID} https://www.ncbi.nlm.nih.gov/pubmed/${PubMed ID}"},
	{"PMC ID", "${PMC ID}"},
	{"Publication DOI", "${DOI} https://dx.doi.org/${DOI}"},
}

// bottomPairs close every annotation map regardless of component type.
var bottomPairs = []Pair{
	{"License", "${Study License} ${Study License URL}"},
	{"Copyright", "${Study Copyright}"},
	{"Data Publisher", "${Study Data Publisher}"},
	{"Data DOI", "${Study Data DOI} https://dx.doi.org/${Study Data DOI}"},
	{"Annotation File", "${Annotation File}"},
}

var layouts = map[schema.EntityType]Layout{
	schema.Screen: {
		Name: "${Comment[IDR Screen Name]}",
		Description: "Publication Title\n${Study Publication Title}\n\n" +
			"Screen Description\n${Screen Description}",
		Top: []Pair{
			{"Study Type", "${Study Type}"},
			{"Organism", "${Study Organism}"},
			{"Screen Type", "${Screen Type}"},
			{"Screen Technology Type", "${Screen Technology Type}"},
			{"Imaging Method", "${Screen Imaging Method}"},
		},
	},
	schema.Experiment: {
		Name: "${Comment[IDR Experiment Name]}",
		Description: "Publication Title\n${Study Publication Title}\n\n" +
			"Experiment Description\n${Experiment Description}",
		Top: []Pair{
			{"Study Type", "${Study Type}"},
			{"Organism", "${Study Organism}"},
			{"Imaging Method", "${Experiment Imaging Method}"},
		},
	},
}

// Object is the rendered annotation for one component: a display name, a
// free-text description, and an ordered label/value map. Objects are built on
// demand for reporting and never persisted.
type Object struct {
	Name        string
	Description string
	Map         []KV
}

// Build renders the annotation object for a component. Name and description
// templates reference only mandatory fields and must render fully; map pairs
// render best-effort, silently skipping any pair whose template references a
// field the record does not carry.
func Build(c *study.Component) (*Object, error) {
	layout, ok := layouts[c.Type]
	if !ok {
		return nil, fmt.Errorf("no annotation layout for component type %q", c.Type)
	}

	name, ok := render(layout.Name, c.Fields)
	if !ok {
		return nil, fmt.Errorf("rendering %s name: template references missing fields", c.Type)
	}
	desc, ok := render(layout.Description, c.Fields)
	if !ok {
		return nil, fmt.Errorf("rendering %s description: template references missing fields", c.Type)
	}

	obj := &Object{Name: name, Description: desc}
	obj.appendPairs(layout.Top, c.Fields)
	for _, pub := range c.Publications {
		obj.appendPairs(publicationPairs, pub)
	}
	obj.appendPairs(bottomPairs, c.Fields)
	return obj, nil
}

func (o *Object) appendPairs(pairs []Pair, rec map[string]string) {
	for _, p := range pairs {
		if v, ok := render(p.Template, rec); ok {
			o.Map = append(o.Map, KV{Label: p.Label, Value: v})
		}
	}
}
