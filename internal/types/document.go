package types

import "strings"

// DocumentType distinguishes the two generated artifact kinds, which carry
// different section layouts and scoring rubrics.
type DocumentType string

// Supported document types.
const (
	DocTypeCaseStudy             DocumentType = "case_study"
	DocTypeReferenceArchitecture DocumentType = "reference_architecture"
)

// Section is a named block of markdown body text within a document.
type Section struct {
	Name string `json:"name"`
	Body string `json:"body"`
}

// Metric is a quantitative claim extracted from generated content. Value,
// Unit and Comparison are populated only when the literal string parses
// into a structured form.
type Metric struct {
	Literal    string `json:"literal"`
	Value      string `json:"value,omitempty"`
	Unit       string `json:"unit,omitempty"`
	Comparison string `json:"comparison,omitempty"`
}

// Document is a generated artifact (case study or reference architecture)
// composed of named sections. Section insertion order is the canonical
// section order; section names are unique.
type Document struct {
	Type           DocumentType `json:"type"`
	Title          string       `json:"title"`
	Subject        string       `json:"subject"`
	Sections       []Section    `json:"sections"`
	ClaimedMetrics []Metric     `json:"claimed_metrics,omitempty"`
	Projects       []string     `json:"projects,omitempty"`
	Screenshots    int          `json:"screenshots,omitempty"`
}

// Section returns the body of the named section and whether it exists.
func (d *Document) Section(name string) (string, bool) {
	for _, s := range d.Sections {
		if s.Name == name {
			return s.Body, true
		}
	}
	return "", false
}

// FullText concatenates every section body in canonical order.
func (d *Document) FullText() string {
	var sb strings.Builder
	for _, s := range d.Sections {
		sb.WriteString(s.Body)
		sb.WriteString("\n")
	}
	return sb.String()
}

// WordCount counts whitespace-separated words across all sections.
func (d *Document) WordCount() int {
	return len(strings.Fields(d.FullText()))
}
