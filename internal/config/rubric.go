package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/go-playground/validator/v10"

	"casestudypilot/internal/types"
)

// weightSumEpsilon bounds float drift when checking that weights sum to 1.0.
const weightSumEpsilon = 1e-9

// Weights are the fixed sub-score weights for the overall document score.
// They must sum to 1.0.
type Weights struct {
	Structure  float64 `json:"structure" validate:"gte=0,lte=1"`
	Depth      float64 `json:"depth" validate:"gte=0,lte=1"`
	Coverage   float64 `json:"coverage" validate:"gte=0,lte=1"`
	Formatting float64 `json:"formatting" validate:"gte=0,lte=1"`
}

// Thresholds map a raw 0.0-1.0 score to a verdict: below Fail is FAIL,
// at/above Pass is PASS, between the two is WARN.
type Thresholds struct {
	Pass float64 `json:"pass" validate:"gt=0,lte=1"`
	Fail float64 `json:"fail" validate:"gte=0,lt=1"`
}

// DocumentRubric holds scoring targets for one document type.
type DocumentRubric struct {
	RequiredSections []string   `json:"required_sections" validate:"min=1"`
	MinSectionChars  int        `json:"min_section_chars" validate:"gt=0"`
	MinWords         int        `json:"min_words" validate:"gt=0"`
	MaxWords         int        `json:"max_words" validate:"gt=0,gtfield=MinWords"`
	MinProjects      int        `json:"min_projects" validate:"gte=0"`
	TargetProjects   int        `json:"target_projects" validate:"gt=0"`
	Weights          Weights    `json:"weights"`
	Score            Thresholds `json:"score"`
}

// TranscriptRubric holds thresholds for the transcript quality checkpoint.
type TranscriptRubric struct {
	MinChars     int        `json:"min_chars" validate:"gt=0"`
	MinWords     int        `json:"min_words" validate:"gt=0"`
	MinSegments  int        `json:"min_segments" validate:"gt=0"`
	ComfortChars int        `json:"comfort_chars" validate:"gt=0"`
	Score        Thresholds `json:"score"`
}

// AnalysisRubric holds thresholds for the analysis depth checkpoint.
type AnalysisRubric struct {
	MinProjects            int `json:"min_projects" validate:"gt=0"`
	RecommendedProjects    int `json:"recommended_projects" validate:"gt=0"`
	MinPatterns            int `json:"min_patterns" validate:"gte=0"`
	RecommendedPatterns    int `json:"recommended_patterns" validate:"gte=0"`
	MinScreenshots         int `json:"min_screenshots" validate:"gte=0"`
	RecommendedScreenshots int `json:"recommended_screenshots" validate:"gte=0"`
	SectionMinWords        int `json:"section_min_words" validate:"gt=0"`
	SectionMaxWords        int `json:"section_max_words" validate:"gt=0"`
	MinQuoteChars          int `json:"min_quote_chars" validate:"gt=0"`
}

// Rubric is the process-wide scoring configuration. It is loaded once at
// startup and read-only during a run.
type Rubric struct {
	CaseStudy             DocumentRubric   `json:"case_study"`
	ReferenceArchitecture DocumentRubric   `json:"reference_architecture"`
	Transcript            TranscriptRubric `json:"transcript"`
	Analysis              AnalysisRubric   `json:"analysis"`
}

// CaseStudySections is the canonical section order for case studies.
var CaseStudySections = []string{
	"Overview", "Challenge", "Solution", "Impact", "Conclusion",
}

// ReferenceArchitectureSections is the canonical section order for
// reference architectures.
var ReferenceArchitectureSections = []string{
	"Executive Summary",
	"Background",
	"Technical Challenge",
	"Architecture Overview",
	"Architecture Diagrams",
	"CNCF Projects",
	"Integration Patterns",
	"Implementation Details",
	"Observability and Operations",
	"Results and Impact",
	"Lessons Learned",
	"Future Plans",
	"Conclusion",
}

// DefaultRubric returns the built-in rubric.
func DefaultRubric() *Rubric {
	return &Rubric{
		CaseStudy: DocumentRubric{
			RequiredSections: CaseStudySections,
			MinSectionChars:  50,
			MinWords:         500,
			MaxWords:         1500,
			MinProjects:      1,
			TargetProjects:   2,
			Weights: Weights{
				Structure:  0.30,
				Depth:      0.40,
				Coverage:   0.20,
				Formatting: 0.10,
			},
			Score: Thresholds{Pass: 0.70, Fail: 0.60},
		},
		ReferenceArchitecture: DocumentRubric{
			RequiredSections: ReferenceArchitectureSections,
			MinSectionChars:  50,
			MinWords:         2000,
			MaxWords:         5000,
			MinProjects:      3,
			TargetProjects:   5,
			// Reference architectures are scored coverage-heavy to
			// emphasize technical breadth over raw length.
			Weights: Weights{
				Structure:  0.25,
				Depth:      0.25,
				Coverage:   0.35,
				Formatting: 0.15,
			},
			Score: Thresholds{Pass: 0.70, Fail: 0.60},
		},
		Transcript: TranscriptRubric{
			MinChars:     1000,
			MinWords:     100,
			MinSegments:  50,
			ComfortChars: 5000,
			Score:        Thresholds{Pass: 0.70, Fail: 0.60},
		},
		Analysis: AnalysisRubric{
			MinProjects:            4,
			RecommendedProjects:    5,
			MinPatterns:            1,
			RecommendedPatterns:    2,
			MinScreenshots:         4,
			RecommendedScreenshots: 6,
			SectionMinWords:        200,
			SectionMaxWords:        800,
			MinQuoteChars:          10,
		},
	}
}

// ForType returns the document rubric for the given document type.
func (r *Rubric) ForType(t types.DocumentType) *DocumentRubric {
	if t == types.DocTypeReferenceArchitecture {
		return &r.ReferenceArchitecture
	}
	return &r.CaseStudy
}

// LoadRubric reads a rubric from a JSON file, falling back to the default
// rubric when path is empty. The result is always validated.
func LoadRubric(path string) (*Rubric, error) {
	rubric := DefaultRubric()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &ConfigurationError{
				Message: fmt.Sprintf("failed to read rubric file %s", path),
				Cause:   err,
			}
		}
		if err := json.Unmarshal(data, rubric); err != nil {
			return nil, &ConfigurationError{
				Message: "failed to parse rubric JSON",
				Cause:   err,
			}
		}
	}
	if err := rubric.Validate(); err != nil {
		return nil, err
	}
	return rubric, nil
}

// Validate checks field ranges and that each weight set sums to 1.0.
// Violations are configuration errors, fatal at startup.
func (r *Rubric) Validate() error {
	v := validator.New()
	if err := v.Struct(r); err != nil {
		return &ConfigurationError{
			Message: "invalid rubric field",
			Cause:   err,
		}
	}

	for name, dr := range map[string]*DocumentRubric{
		"case_study":             &r.CaseStudy,
		"reference_architecture": &r.ReferenceArchitecture,
	} {
		sum := dr.Weights.Structure + dr.Weights.Depth + dr.Weights.Coverage + dr.Weights.Formatting
		if math.Abs(sum-1.0) > weightSumEpsilon {
			return &ConfigurationError{
				Message: fmt.Sprintf("%s weights sum to %.4f, expected 1.0", name, sum),
			}
		}
		if err := dr.Score.validate(name); err != nil {
			return err
		}
	}
	if err := r.Transcript.Score.validate("transcript"); err != nil {
		return err
	}
	return nil
}

func (t Thresholds) validate(name string) error {
	if t.Fail >= t.Pass {
		return &ConfigurationError{
			Message: fmt.Sprintf("%s fail threshold %.2f must be below pass threshold %.2f", name, t.Fail, t.Pass),
		}
	}
	return nil
}
