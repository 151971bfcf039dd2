package scoring

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casestudypilot/internal/config"
	"casestudypilot/internal/types"
)

// filler returns a body of n words that contains a bullet list so the
// formatting heuristics see well-formed markdown.
func filler(n int) string {
	var sb strings.Builder
	sb.WriteString("- key takeaway\n- second takeaway\n\n")
	for i := 0; i < n-6; i++ {
		sb.WriteString(fmt.Sprintf("word%d ", i))
	}
	return sb.String()
}

func completeCaseStudy(wordsPerSection int) *types.Document {
	sections := make([]types.Section, 0, len(config.CaseStudySections))
	for _, name := range config.CaseStudySections {
		sections = append(sections, types.Section{Name: name, Body: filler(wordsPerSection)})
	}
	return &types.Document{
		Type:     types.DocTypeCaseStudy,
		Title:    "Intuit Case Study",
		Subject:  "Intuit",
		Sections: sections,
		Projects: []string{"Kubernetes", "Prometheus", "Helm"},
	}
}

func TestScoreCompleteDocumentPasses(t *testing.T) {
	rubric := config.DefaultRubric()
	doc := completeCaseStudy(220)

	s := Score(doc, &rubric.CaseStudy)

	assert.Equal(t, 1.0, s.Structure)
	assert.Equal(t, 1.0, s.Depth)
	assert.Equal(t, 1.0, s.Coverage)
	assert.Equal(t, 1.0, s.Formatting)
	assert.GreaterOrEqual(t, s.Overall, rubric.CaseStudy.Score.Pass)
}

func TestScoreSubScoresStayInRange(t *testing.T) {
	rubric := config.DefaultRubric()
	docs := []*types.Document{
		completeCaseStudy(40),
		completeCaseStudy(220),
		completeCaseStudy(2000),
		{Type: types.DocTypeCaseStudy, Sections: []types.Section{{Name: "Overview", Body: "short"}}},
	}
	for _, doc := range docs {
		s := Score(doc, &rubric.CaseStudy)
		for name, v := range map[string]float64{
			"structure": s.Structure, "depth": s.Depth,
			"coverage": s.Coverage, "formatting": s.Formatting,
			"overall": s.Overall,
		} {
			assert.GreaterOrEqual(t, v, 0.0, name)
			assert.LessOrEqual(t, v, 1.0, name)
		}
	}
}

func TestScoreZeroSections(t *testing.T) {
	rubric := config.DefaultRubric()
	doc := &types.Document{Type: types.DocTypeCaseStudy, Title: "Empty"}

	s := Score(doc, &rubric.CaseStudy)

	assert.Equal(t, 0.0, s.Overall)
	assert.Contains(t, s.Issues, "document has no sections")
}

func TestScoreMissingRequiredSection(t *testing.T) {
	rubric := config.DefaultRubric()
	doc := completeCaseStudy(220)
	doc.Sections = doc.Sections[:len(doc.Sections)-1] // drop Conclusion

	s := Score(doc, &rubric.CaseStudy)

	assert.Less(t, s.Structure, 1.0)
	assert.Less(t, s.Overall, 1.0)
	assert.Contains(t, s.Issues, "missing section: Conclusion")
}

func TestScoreShortSectionCountsAsAbsent(t *testing.T) {
	rubric := config.DefaultRubric()
	doc := completeCaseStudy(220)
	doc.Sections[0].Body = "tiny"

	s := Score(doc, &rubric.CaseStudy)
	assert.Equal(t, 0.8, s.Structure)
}

func TestScoreDepthBands(t *testing.T) {
	rubric := config.DefaultRubric()
	cs := &rubric.CaseStudy // min 500, max 1500, mid 1000

	tests := []struct {
		name  string
		words int
		want  float64
	}{
		{"below minimum", 400, 0},
		{"at minimum", 500, 0},
		{"halfway to midpoint", 750, 0.5},
		{"at midpoint", 1000, 1.0},
		{"inside flat band", 1400, 1.0},
		{"at maximum", 1500, 1.0},
		{"padding decays", 1750, 0.5},
		{"far past maximum", 4000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Scores{}
			assert.InDelta(t, tt.want, scoreDepth(tt.words, cs, s), 1e-9)
		})
	}
}

func TestScoreDepthIssueAtExactMinimum(t *testing.T) {
	rubric := config.DefaultRubric()
	s := &Scores{}
	scoreDepth(rubric.CaseStudy.MinWords, &rubric.CaseStudy, s)

	require.Len(t, s.Issues, 1)
	assert.Contains(t, s.Issues[0], "at or below minimum 500")
}

func TestScoreCoverage(t *testing.T) {
	rubric := config.DefaultRubric()
	doc := completeCaseStudy(220)

	doc.Projects = nil
	s := Score(doc, &rubric.CaseStudy)
	assert.Equal(t, 0.0, s.Coverage)
	assert.NotEmpty(t, s.Issues)

	doc.Projects = []string{"Kubernetes"}
	s = Score(doc, &rubric.CaseStudy)
	assert.Equal(t, 0.5, s.Coverage)

	doc.Projects = []string{"Kubernetes", "Prometheus", "Helm", "Argo CD"}
	s = Score(doc, &rubric.CaseStudy)
	assert.Equal(t, 1.0, s.Coverage)
}

func TestScoreFormattingDeductions(t *testing.T) {
	rubric := config.DefaultRubric()
	doc := completeCaseStudy(220)

	// Strip every list and plant an unresolved placeholder: two deductions.
	for i := range doc.Sections {
		doc.Sections[i].Body = strings.ReplaceAll(doc.Sections[i].Body, "- ", "")
	}
	doc.Sections[0].Body = "The {{company_name}} platform. " + doc.Sections[0].Body

	s := Score(doc, &rubric.CaseStudy)
	assert.InDelta(t, 0.5, s.Formatting, 1e-9)
	assert.Contains(t, s.Issues, "no lists or tables found")
}
