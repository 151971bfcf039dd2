package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"casestudypilot/internal/types"
)

// Generator runs the model-backed stages of the pipeline: transcript
// correction, deep analysis, and section drafting.
type Generator struct {
	client Client
}

// NewGenerator wraps a client for the generation stages.
func NewGenerator(client Client) *Generator {
	return &Generator{client: client}
}

const correctPrompt = `You are cleaning up an auto-generated conference talk transcript about %s.
Fix speech-to-text errors, casing of product and project names, and obvious
word splits. Do not paraphrase, summarize, or remove content. Do not add
content that is not in the transcript. Return only the corrected transcript.

Transcript:
%s`

// CorrectTranscript fixes speech-to-text artifacts without changing the
// substance of what was said.
func (g *Generator) CorrectTranscript(ctx context.Context, transcript, subject string) (string, error) {
	prompt := fmt.Sprintf(correctPrompt, subject, transcript)
	out, err := g.client.GenerateContent(ctx, prompt, TierLite)
	if err != nil {
		return "", fmt.Errorf("transcript correction failed: %w", err)
	}
	return strings.TrimSpace(out), nil
}

const analyzePrompt = `Analyze this conference talk transcript from %s and produce a JSON object
with exactly these fields:
- "cncf_projects": array of {"name", "category", "usage"} for every CNCF
  project discussed, with how %s uses it
- "key_metrics": array of {"metric", "improvement", "transcript_quote"}
  where transcript_quote is the verbatim sentence supporting the metric;
  only include metrics the speaker actually states
- "architecture_components": {"infrastructure_layer", "platform_layer",
  "application_layer"} each an array of component names
- "integration_patterns": array of strings describing how the projects
  connect
- "screenshot_opportunities": array of {"timestamp_seconds", "section",
  "description"} for slides worth capturing
- "sections": object with keys "background", "technical_challenge",
  "architecture_overview", "implementation_details", "results_and_impact",
  "lessons_learned", each a 200-800 word prose section grounded in the
  transcript

Never invent numbers or projects that are not in the transcript.

Transcript:
%s`

// AnalyzeTranscript produces the structured deep analysis as raw JSON so
// the caller can schema-validate it before trusting it.
func (g *Generator) AnalyzeTranscript(ctx context.Context, transcript, subject string) ([]byte, error) {
	prompt := fmt.Sprintf(analyzePrompt, subject, subject, transcript)
	out, err := g.client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return nil, fmt.Errorf("transcript analysis failed: %w", err)
	}
	return []byte(out), nil
}

const sectionsPrompt = `Write the sections of a CNCF end-user document about %s using ONLY the
facts in this analysis. Return a JSON object mapping each of these section
names to its markdown body (no heading line): %s.

Every metric must come from the analysis verbatim. Keep the company name
%q consistent throughout. Use specific project names, not generic terms.

Analysis:
%s`

// GenerateSections drafts the named document sections from a validated
// analysis, returned as a section-name to body map.
func (g *Generator) GenerateSections(ctx context.Context, a *types.Analysis, subject string, sectionNames []string) (map[string]string, error) {
	encoded, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("failed to encode analysis: %w", err)
	}

	prompt := fmt.Sprintf(sectionsPrompt, subject, strings.Join(sectionNames, ", "), subject, string(encoded))
	out, err := g.client.GenerateJSON(ctx, prompt, TierAdvanced)
	if err != nil {
		return nil, fmt.Errorf("section generation failed: %w", err)
	}

	var sections map[string]string
	if err := json.Unmarshal([]byte(out), &sections); err != nil {
		return nil, fmt.Errorf("section generation returned invalid JSON: %w", err)
	}
	return sections, nil
}
