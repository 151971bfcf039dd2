package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casestudypilot/internal/config"
	"casestudypilot/internal/types"
)

func sectionBody(words int) string {
	return strings.TrimSpace(strings.Repeat("word ", words))
}

func validAnalysis() *types.Analysis {
	sections := make(map[string]string)
	for _, name := range requiredSections {
		sections[name] = sectionBody(300)
	}
	return &types.Analysis{
		CNCFProjects: []types.CNCFProject{
			{Name: "Kubernetes"}, {Name: "Prometheus"},
			{Name: "Argo CD"}, {Name: "Helm"}, {Name: "Istio"},
		},
		KeyMetrics: []types.TechnicalMetric{
			{Metric: "deployment time", TranscriptQuote: "deployments went from hours to minutes"},
		},
		ArchitectureComponents: &types.ArchitectureComponents{
			InfrastructureLayer: []string{"EKS"},
			PlatformLayer:       []string{"Argo CD"},
			ApplicationLayer:    []string{"payments service"},
		},
		IntegrationPatterns: []string{"GitOps", "sidecar"},
		ScreenshotOpportunities: []types.ScreenshotOpportunity{
			{TimestampSeconds: 10, Section: "architecture_overview"},
			{TimestampSeconds: 120, Section: "implementation_details"},
			{TimestampSeconds: 300, Section: "results_and_impact"},
			{TimestampSeconds: 600, Section: "lessons_learned"},
			{TimestampSeconds: 900, Section: "background"},
			{TimestampSeconds: 1200, Section: "technical_challenge"},
		},
		Sections: sections,
	}
}

func TestValidateCleanAnalysis(t *testing.T) {
	rubric := &config.DefaultRubric().Analysis

	checks := Validate(validAnalysis(), rubric)
	assert.Empty(t, checks.Critical)
	assert.Empty(t, checks.Warnings)
}

func TestValidateTooFewProjects(t *testing.T) {
	rubric := &config.DefaultRubric().Analysis
	a := validAnalysis()

	a.CNCFProjects = a.CNCFProjects[:3]
	checks := Validate(a, rubric)
	require.Len(t, checks.Critical, 1)
	assert.Contains(t, checks.Critical[0], "only 3 CNCF projects")

	// Meeting the minimum but not the recommendation is a warning.
	a.CNCFProjects = validAnalysis().CNCFProjects[:4]
	checks = Validate(a, rubric)
	assert.Empty(t, checks.Critical)
	require.Len(t, checks.Warnings, 1)
	assert.Contains(t, checks.Warnings[0], "5 recommended")
}

func TestValidateArchitectureLayers(t *testing.T) {
	rubric := &config.DefaultRubric().Analysis

	a := validAnalysis()
	a.ArchitectureComponents = nil
	checks := Validate(a, rubric)
	assert.Contains(t, checks.Critical, "missing architecture components")

	a = validAnalysis()
	a.ArchitectureComponents.PlatformLayer = nil
	checks = Validate(a, rubric)
	require.Len(t, checks.Critical, 1)
	assert.Contains(t, checks.Critical[0], `"platform_layer" is empty`)
}

func TestValidateMetricQuotes(t *testing.T) {
	rubric := &config.DefaultRubric().Analysis
	a := validAnalysis()
	a.KeyMetrics = append(a.KeyMetrics, types.TechnicalMetric{Metric: "latency", TranscriptQuote: "short"})

	checks := Validate(a, rubric)
	require.Len(t, checks.Critical, 1)
	assert.Contains(t, checks.Critical[0], "metric 2")
}

func TestValidateScreenshotCounts(t *testing.T) {
	rubric := &config.DefaultRubric().Analysis
	a := validAnalysis()

	a.ScreenshotOpportunities = a.ScreenshotOpportunities[:3]
	checks := Validate(a, rubric)
	require.Len(t, checks.Critical, 1)
	assert.Contains(t, checks.Critical[0], "only 3 screenshot opportunities")

	a.ScreenshotOpportunities = validAnalysis().ScreenshotOpportunities[:5]
	checks = Validate(a, rubric)
	assert.Empty(t, checks.Critical)
	require.Len(t, checks.Warnings, 1)
	assert.Contains(t, checks.Warnings[0], "6 recommended")
}

func TestValidateSectionChecks(t *testing.T) {
	rubric := &config.DefaultRubric().Analysis
	a := validAnalysis()

	delete(a.Sections, "lessons_learned")
	checks := Validate(a, rubric)
	require.Len(t, checks.Critical, 1)
	assert.Contains(t, checks.Critical[0], `missing analysis section "lessons_learned"`)

	a = validAnalysis()
	a.Sections["background"] = sectionBody(50)
	checks = Validate(a, rubric)
	assert.Empty(t, checks.Critical)
	require.Len(t, checks.Warnings, 1)
	assert.Contains(t, checks.Warnings[0], `section "background" is 50 words`)
}

func TestValidateJSONSchemaViolation(t *testing.T) {
	rubric := &config.DefaultRubric().Analysis

	a, checks := ValidateJSON([]byte(`{"cncf_projects": []}`), rubric)
	assert.Nil(t, a)
	assert.NotEmpty(t, checks.Critical)
}

func TestValidateJSONValid(t *testing.T) {
	rubric := &config.DefaultRubric().Analysis
	raw := `{
	  "cncf_projects": [
	    {"name": "Kubernetes"}, {"name": "Prometheus"},
	    {"name": "Argo CD"}, {"name": "Helm"}, {"name": "Istio"}
	  ],
	  "key_metrics": [
	    {"metric": "deployment time", "transcript_quote": "from hours to minutes"}
	  ],
	  "architecture_components": {
	    "infrastructure_layer": ["EKS"],
	    "platform_layer": ["Argo CD"],
	    "application_layer": ["payments"]
	  },
	  "integration_patterns": ["GitOps", "sidecar"],
	  "screenshot_opportunities": [
	    {"timestamp_seconds": 10, "section": "background"},
	    {"timestamp_seconds": 20, "section": "technical_challenge"},
	    {"timestamp_seconds": 30, "section": "architecture_overview"},
	    {"timestamp_seconds": 40, "section": "implementation_details"},
	    {"timestamp_seconds": 50, "section": "results_and_impact"},
	    {"timestamp_seconds": 60, "section": "lessons_learned"}
	  ],
	  "sections": {}
	}`

	a, checks := ValidateJSON([]byte(raw), rubric)
	require.NotNil(t, a)
	assert.Len(t, a.CNCFProjects, 5)

	// Structurally valid but with all depth sections missing.
	assert.Len(t, checks.Critical, len(requiredSections))
}
