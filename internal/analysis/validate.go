// Package analysis validates deep-analysis artifacts produced by the
// transcript analysis stage.
package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"casestudypilot/internal/config"
	"casestudypilot/internal/schemas"
	"casestudypilot/internal/types"
)

// Checks holds the outcome of validating one analysis: critical issues
// halt the run, warnings continue with degraded quality.
type Checks struct {
	Critical []string
	Warnings []string
}

// ValidateJSON validates raw analysis JSON against the embedded schema and
// then applies the depth checks. Schema violations are critical.
func ValidateJSON(raw []byte, rubric *config.AnalysisRubric) (*types.Analysis, Checks) {
	var checks Checks
	if err := schemas.ValidateString(schemas.DeepAnalysisSchema, string(raw)); err != nil {
		checks.Critical = append(checks.Critical, err.Error())
		return nil, checks
	}

	var a types.Analysis
	if err := json.Unmarshal(raw, &a); err != nil {
		checks.Critical = append(checks.Critical, fmt.Sprintf("invalid analysis JSON: %v", err))
		return nil, checks
	}
	return &a, Validate(&a, rubric)
}

// Validate applies the analysis depth checks from the rubric.
func Validate(a *types.Analysis, rubric *config.AnalysisRubric) Checks {
	var checks Checks

	if n := len(a.CNCFProjects); n < rubric.MinProjects {
		checks.Critical = append(checks.Critical,
			fmt.Sprintf("only %d CNCF projects identified (minimum %d)", n, rubric.MinProjects))
	} else if n < rubric.RecommendedProjects {
		checks.Warnings = append(checks.Warnings,
			fmt.Sprintf("only %d CNCF projects identified (%d recommended)", n, rubric.RecommendedProjects))
	}

	if a.ArchitectureComponents == nil {
		checks.Critical = append(checks.Critical, "missing architecture components")
	} else {
		layers := []struct {
			name  string
			items []string
		}{
			{"infrastructure_layer", a.ArchitectureComponents.InfrastructureLayer},
			{"platform_layer", a.ArchitectureComponents.PlatformLayer},
			{"application_layer", a.ArchitectureComponents.ApplicationLayer},
		}
		for _, l := range layers {
			if len(l.items) == 0 {
				checks.Critical = append(checks.Critical,
					fmt.Sprintf("architecture layer %q is empty", l.name))
			}
		}
	}

	if n := len(a.IntegrationPatterns); n < rubric.MinPatterns {
		checks.Critical = append(checks.Critical, "no integration patterns found")
	} else if n < rubric.RecommendedPatterns {
		checks.Warnings = append(checks.Warnings,
			fmt.Sprintf("only %d integration pattern(s) (%d recommended)", n, rubric.RecommendedPatterns))
	}

	for i, metric := range a.KeyMetrics {
		if len(metric.TranscriptQuote) < rubric.MinQuoteChars {
			checks.Critical = append(checks.Critical,
				fmt.Sprintf("metric %d has empty or too-short transcript quote", i+1))
		}
	}

	if n := len(a.ScreenshotOpportunities); n < rubric.MinScreenshots {
		checks.Critical = append(checks.Critical,
			fmt.Sprintf("only %d screenshot opportunities (minimum %d)", n, rubric.MinScreenshots))
	} else if n < rubric.RecommendedScreenshots {
		checks.Warnings = append(checks.Warnings,
			fmt.Sprintf("only %d screenshot opportunities (%d recommended)", n, rubric.RecommendedScreenshots))
	}

	for _, section := range requiredSections {
		if _, ok := a.Sections[section]; !ok {
			checks.Critical = append(checks.Critical,
				fmt.Sprintf("missing analysis section %q", section))
		}
	}

	for name, body := range a.Sections {
		wc := wordCount(body)
		if wc < rubric.SectionMinWords || wc > rubric.SectionMaxWords {
			checks.Warnings = append(checks.Warnings,
				fmt.Sprintf("section %q is %d words (%d-%d recommended)", name, wc, rubric.SectionMinWords, rubric.SectionMaxWords))
		}
	}

	return checks
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

// requiredSections are the analysis sections every deep analysis must carry.
var requiredSections = []string{
	"background",
	"technical_challenge",
	"architecture_overview",
	"implementation_details",
	"results_and_impact",
	"lessons_learned",
}
