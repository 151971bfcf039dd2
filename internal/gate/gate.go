// Package gate maps raw checkpoint outcomes onto PASS/WARN/FAIL verdicts
// using per-checkpoint rubric thresholds. The gate never mutates its
// inputs; every function is pure so each threshold boundary can be tested
// independently.
package gate

import (
	"fmt"

	"casestudypilot/internal/config"
	"casestudypilot/internal/consistency"
	"casestudypilot/internal/fabrication"
	"casestudypilot/internal/types"
)

// Evaluate maps a 0.0-1.0 score to a verdict: below the fail threshold is
// FAIL, at or above the pass threshold is PASS, and the band between is
// WARN.
func Evaluate(cp types.Checkpoint, score float64, th config.Thresholds, issues []string) types.CheckpointResult {
	verdict := types.VerdictPass
	switch {
	case score < th.Fail:
		verdict = types.VerdictFail
	case score < th.Pass:
		verdict = types.VerdictWarn
	}
	return types.CheckpointResult{
		Checkpoint: cp,
		Verdict:    verdict,
		Score:      types.ScoreValue(score),
		Issues:     issues,
	}
}

// FromChecks maps enumerated check outcomes directly: any critical issue is
// FAIL, warnings alone are WARN, otherwise PASS.
func FromChecks(cp types.Checkpoint, critical, warnings []string) types.CheckpointResult {
	result := types.CheckpointResult{Checkpoint: cp, Verdict: types.VerdictPass}
	if len(critical) > 0 {
		result.Verdict = types.VerdictFail
		result.Issues = append(result.Issues, critical...)
	} else if len(warnings) > 0 {
		result.Verdict = types.VerdictWarn
	}
	result.Issues = append(result.Issues, warnings...)
	return result
}

// FromFabrication maps fabrication findings onto the strict fabrication
// checkpoint rules: any unsupported metric carrying a numeric token is
// FAIL, unsupported qualitative-only claims are WARN, full support is PASS.
func FromFabrication(findings []fabrication.Finding) types.CheckpointResult {
	result := types.CheckpointResult{
		Checkpoint: types.CheckpointMetricFabrication,
		Verdict:    types.VerdictPass,
	}
	for _, f := range findings {
		if f.Supported {
			continue
		}
		if f.Numeric {
			result.Verdict = types.VerdictFail
			result.Issues = append(result.Issues,
				fmt.Sprintf("metric %q not supported by transcript", f.Metric))
		} else {
			result.Verdict = result.Verdict.Worse(types.VerdictWarn)
			result.Issues = append(result.Issues,
				fmt.Sprintf("qualitative claim %q not found in transcript", f.Metric))
		}
	}
	return result
}

// FromConsistency maps a consistency result onto a binary verdict. There
// is no WARN tier: a wrong-subject document is unconditionally
// unacceptable.
func FromConsistency(res consistency.Result) types.CheckpointResult {
	result := types.CheckpointResult{
		Checkpoint: types.CheckpointSubjectConsistency,
		Verdict:    types.VerdictPass,
		Issues:     res.Mismatches,
	}
	if !res.Consistent {
		result.Verdict = types.VerdictFail
	}
	return result
}
