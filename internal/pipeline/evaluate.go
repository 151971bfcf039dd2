// Package pipeline sequences the validation checkpoints of a run and
// orchestrates fetch, analysis, generation, and assembly around them.
package pipeline

import (
	"github.com/google/uuid"

	"casestudypilot/internal/analysis"
	"casestudypilot/internal/config"
	"casestudypilot/internal/consistency"
	"casestudypilot/internal/fabrication"
	"casestudypilot/internal/gate"
	"casestudypilot/internal/scoring"
	"casestudypilot/internal/transcript"
	"casestudypilot/internal/types"
)

// Evaluate runs the five validation checkpoints against an in-memory
// input, strictly in order, halting at the first FAIL so later
// checkpoints never appear in the report. A missing required input field
// returns the InputError alongside a halted report carrying a synthetic
// input checkpoint result.
func Evaluate(in *Input, rubric *config.Rubric) (*types.PipelineReport, error) {
	report := &types.PipelineReport{RunID: uuid.NewString()}

	if inputErr := in.validate(); inputErr != nil {
		report.Append(types.CheckpointResult{
			Checkpoint: types.CheckpointInput,
			Verdict:    types.VerdictFail,
			Issues:     []string{inputErr.Message},
		})
		return report, inputErr
	}

	checkpoints := []func(*Input, *config.Rubric) types.CheckpointResult{
		checkTranscriptQuality,
		checkAnalysisDepth,
		checkMetricFabrication,
		checkSubjectConsistency,
		checkFinalQuality,
	}
	for _, checkpoint := range checkpoints {
		report.Append(checkpoint(in, rubric))
		if report.Halted {
			break
		}
	}
	return report, nil
}

func checkTranscriptQuality(in *Input, rubric *config.Rubric) types.CheckpointResult {
	score, issues := transcript.Quality(in.TranscriptText, in.SegmentCount, &rubric.Transcript)
	return gate.Evaluate(types.CheckpointTranscriptQuality, score, rubric.Transcript.Score, issues)
}

func checkAnalysisDepth(in *Input, rubric *config.Rubric) types.CheckpointResult {
	if in.Analysis == nil {
		return types.CheckpointResult{
			Checkpoint: types.CheckpointAnalysisDepth,
			Verdict:    types.VerdictFail,
			Issues:     []string{"no analysis available for depth check"},
		}
	}
	checks := analysis.Validate(in.Analysis, &rubric.Analysis)
	return gate.FromChecks(types.CheckpointAnalysisDepth, checks.Critical, checks.Warnings)
}

func checkMetricFabrication(in *Input, _ *config.Rubric) types.CheckpointResult {
	metrics := in.ClaimedMetrics
	if len(metrics) == 0 && in.Document != nil {
		for _, m := range in.Document.ClaimedMetrics {
			metrics = append(metrics, m.Literal)
		}
	}
	findings := fabrication.Check(metrics, in.TranscriptText)
	return gate.FromFabrication(findings)
}

func checkSubjectConsistency(in *Input, _ *config.Rubric) types.CheckpointResult {
	if in.Document == nil {
		return types.CheckpointResult{
			Checkpoint: types.CheckpointSubjectConsistency,
			Verdict:    types.VerdictFail,
			Issues:     []string{"no document available for consistency check"},
		}
	}
	return gate.FromConsistency(consistency.Check(in.VerifiedSubject, in.Document))
}

func checkFinalQuality(in *Input, rubric *config.Rubric) types.CheckpointResult {
	if in.Document == nil {
		return types.CheckpointResult{
			Checkpoint: types.CheckpointFinalQuality,
			Verdict:    types.VerdictFail,
			Issues:     []string{"no document available for final quality check"},
		}
	}
	docRubric := rubric.ForType(in.Document.Type)
	scores := scoring.Score(in.Document, docRubric)
	return gate.Evaluate(types.CheckpointFinalQuality, scores.Overall, docRubric.Score, scores.Issues)
}
