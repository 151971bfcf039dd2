// Package scoring computes quality sub-scores for generated documents
// against a configurable rubric.
package scoring

import (
	"fmt"
	"strings"

	"casestudypilot/internal/config"
	"casestudypilot/internal/document"
	"casestudypilot/internal/types"
)

// formattingDeduction is subtracted from the formatting sub-score for each
// failed well-formedness check.
const formattingDeduction = 0.25

// Scores holds the sub-scores and weighted overall score for a document.
// All values are in [0.0, 1.0].
type Scores struct {
	Structure  float64  `json:"structure"`
	Depth      float64  `json:"depth"`
	Coverage   float64  `json:"coverage"`
	Formatting float64  `json:"formatting"`
	Overall    float64  `json:"overall"`
	Issues     []string `json:"issues,omitempty"`
}

// Score evaluates a document against the rubric for its type. A document
// with zero sections scores 0.0 overall; that is a structure issue, never
// an error.
func Score(doc *types.Document, rubric *config.DocumentRubric) *Scores {
	s := &Scores{}

	if len(doc.Sections) == 0 {
		s.Issues = append(s.Issues, "document has no sections")
		return s
	}

	s.Structure = scoreStructure(doc, rubric, s)
	s.Depth = scoreDepth(doc.WordCount(), rubric, s)
	s.Coverage = scoreCoverage(doc, rubric, s)
	s.Formatting = scoreFormatting(doc, s)

	w := rubric.Weights
	s.Overall = w.Structure*s.Structure +
		w.Depth*s.Depth +
		w.Coverage*s.Coverage +
		w.Formatting*s.Formatting
	return s
}

// scoreStructure returns the fraction of required sections that are present
// and non-trivial. A section shorter than the rubric's character floor
// counts as absent.
func scoreStructure(doc *types.Document, rubric *config.DocumentRubric, s *Scores) float64 {
	present := 0
	for _, name := range rubric.RequiredSections {
		body, ok := doc.Section(name)
		if !ok {
			s.Issues = append(s.Issues, fmt.Sprintf("missing section: %s", name))
			continue
		}
		if len(strings.TrimSpace(body)) < rubric.MinSectionChars {
			s.Issues = append(s.Issues, fmt.Sprintf("section %q too short (minimum %d chars)", name, rubric.MinSectionChars))
			continue
		}
		present++
	}
	return float64(present) / float64(len(rubric.RequiredSections))
}

// scoreDepth maps total word count onto the rubric's target range: zero at
// or below the minimum, rising linearly to 1.0 at the range midpoint, flat
// through the maximum, then decaying at the same slope to penalize padding.
func scoreDepth(words int, rubric *config.DocumentRubric, s *Scores) float64 {
	minW, maxW := float64(rubric.MinWords), float64(rubric.MaxWords)
	mid := (minW + maxW) / 2
	w := float64(words)

	switch {
	case w <= minW:
		s.Issues = append(s.Issues, fmt.Sprintf("word count %d at or below minimum %d", words, rubric.MinWords))
		return 0
	case w < mid:
		return (w - minW) / (mid - minW)
	case w <= maxW:
		return 1.0
	default:
		s.Issues = append(s.Issues, fmt.Sprintf("word count %d above maximum %d", words, rubric.MaxWords))
		score := 1.0 - (w-maxW)/(mid-minW)
		if score < 0 {
			return 0
		}
		return score
	}
}

// scoreCoverage normalizes the distinct recognized project count against
// the rubric target; mentions beyond the target do not raise the score.
func scoreCoverage(doc *types.Document, rubric *config.DocumentRubric, s *Scores) float64 {
	count := len(doc.Projects)
	if count < rubric.MinProjects {
		s.Issues = append(s.Issues, fmt.Sprintf("only %d recognized projects mentioned (minimum %d)", count, rubric.MinProjects))
	}
	if count >= rubric.TargetProjects {
		return 1.0
	}
	return float64(count) / float64(rubric.TargetProjects)
}

// scoreFormatting applies the markdown well-formedness heuristics.
func scoreFormatting(doc *types.Document, s *Scores) float64 {
	report := document.InspectFormat(doc.FullText())

	score := 1.0
	if report.HeadingJumps > 0 {
		s.Issues = append(s.Issues, fmt.Sprintf("%d heading level jumps", report.HeadingJumps))
		score -= formattingDeduction
	}
	if report.EmptyLinks > 0 {
		s.Issues = append(s.Issues, fmt.Sprintf("%d empty links", report.EmptyLinks))
		score -= formattingDeduction
	}
	if !report.HasList && !report.HasTable {
		s.Issues = append(s.Issues, "no lists or tables found")
		score -= formattingDeduction
	}
	if report.Placeholders > 0 {
		s.Issues = append(s.Issues, fmt.Sprintf("%d unresolved placeholders", report.Placeholders))
		score -= formattingDeduction
	}
	if score < 0 {
		return 0
	}
	return score
}
