package types

// Checkpoint identifies a single validation gate in the pipeline.
type Checkpoint string

// Pipeline checkpoints, in the order they are evaluated. Later checkpoints
// depend on artifacts produced only after earlier ones succeed.
const (
	CheckpointInput              Checkpoint = "input"
	CheckpointTranscriptQuality  Checkpoint = "transcript_quality"
	CheckpointAnalysisDepth      Checkpoint = "analysis_depth"
	CheckpointMetricFabrication  Checkpoint = "metric_fabrication"
	CheckpointSubjectConsistency Checkpoint = "subject_consistency"
	CheckpointFinalQuality       Checkpoint = "final_quality"
)

// CheckpointResult records the outcome of one checkpoint evaluation.
// Created once per evaluation; immutable afterwards.
type CheckpointResult struct {
	Checkpoint Checkpoint `json:"checkpoint"`
	Verdict    Verdict    `json:"verdict"`
	Score      *float64   `json:"score,omitempty"`
	Issues     []string   `json:"issues,omitempty"`
}

// PipelineReport collects checkpoint results for a single pipeline run.
// It is built incrementally and finalized when the run halts or completes.
type PipelineReport struct {
	RunID   string             `json:"run_id"`
	Results []CheckpointResult `json:"results"`
	Verdict Verdict            `json:"verdict"`
	Halted  bool               `json:"halted"`
}

// Append records a checkpoint result and folds its verdict into the
// overall one.
func (r *PipelineReport) Append(result CheckpointResult) {
	r.Results = append(r.Results, result)
	if r.Verdict == "" {
		r.Verdict = VerdictPass
	}
	r.Verdict = r.Verdict.Worse(result.Verdict)
	if result.Verdict == VerdictFail {
		r.Halted = true
	}
}

// Result returns the recorded result for a checkpoint, or nil if the run
// halted before reaching it.
func (r *PipelineReport) Result(cp Checkpoint) *CheckpointResult {
	for i := range r.Results {
		if r.Results[i].Checkpoint == cp {
			return &r.Results[i]
		}
	}
	return nil
}

// Warnings returns the issue strings of every WARN checkpoint.
func (r *PipelineReport) Warnings() []string {
	var warnings []string
	for _, res := range r.Results {
		if res.Verdict == VerdictWarn {
			warnings = append(warnings, res.Issues...)
		}
	}
	return warnings
}

// ScoreValue is a convenience constructor for the optional score field.
func ScoreValue(s float64) *float64 {
	return &s
}
