// Package schema defines the field registry for IDR study files.
package schema

// EntityType identifies a kind of metadata section in a study file.
type EntityType string

const (
	Study      EntityType = "Study"
	Experiment EntityType = "Experiment"
	Screen     EntityType = "Screen"
)

// ComponentTypes lists the component entity types in processing order.
var ComponentTypes = []EntityType{Experiment, Screen}

// Registry holds the mandatory and optional field names for each entity type.
// Keys are matched against file lines by exact prefix-then-tab comparison, so
// bracket-bearing keys need no escaping.
type Registry struct {
	mandatory map[EntityType][]string
	optional  map[EntityType][]string
}

// Mandatory returns the ordered mandatory key names for an entity type.
func (r Registry) Mandatory(t EntityType) []string {
	return r.mandatory[t]
}

// Optional returns the ordered optional key names for an entity type.
func (r Registry) Optional(t EntityType) []string {
	return r.optional[t]
}

// Default returns the registry for the current IDR study file format.
func Default() Registry {
	return Registry{
		mandatory: map[EntityType][]string{
			Study: {
				"Comment[IDR Study Accession]",
				"Study Title",
				"Study Description",
				"Study Type",
				"Study Publication Title",
				"Study Author List",
				"Study Organism",
			},
			Experiment: {
				"Comment[IDR Experiment Name]",
				"Experiment Description",
				"Experiment Imaging Method",
				"Experiment Number",
			},
			Screen: {
				"Comment[IDR Screen Name]",
				"Screen Description",
				"Screen Imaging Method",
				"Screen Number",
				"Screen Type",
			},
		},
		optional: map[EntityType][]string{
			Study: {
				"Study Publication Preprint",
				"Study PubMed ID",
				"Study PMC ID",
				"Study DOI",
				"Study Copyright",
				"Study License",
				"Study License URL",
				"Study Data Publisher",
				"Study Data DOI",
				"Study Experiments Number",
				"Study Screens Number",
			},
			Experiment: {
				"Experiment Data DOI",
				"Experiment Data Publisher",
			},
			Screen: {
				"Screen Data DOI",
				"Screen Data Publisher",
				"Screen Technology Type",
			},
		},
	}
}
