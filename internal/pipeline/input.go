package pipeline

import "casestudypilot/internal/types"

// Input is the record the validation checkpoints run against. The
// transcript and subject are required up front; the analysis and document
// become available as the run progresses.
type Input struct {
	TranscriptText   string
	SegmentCount     int
	VideoTitle       string
	VideoDescription string
	DurationSeconds  float64
	VerifiedSubject  string
	ClaimedMetrics   []string
	Analysis         *types.Analysis
	Document         *types.Document
}

// InputError marks a missing required input field. It is fatal for the
// run but never crashes the orchestrator: the run reports a halted
// result with a synthetic checkpoint issue.
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

// validate reports the first missing required field.
func (in *Input) validate() *InputError {
	if in.TranscriptText == "" {
		return &InputError{Field: "transcript_text", Message: "input has no transcript text"}
	}
	if in.VerifiedSubject == "" {
		return &InputError{Field: "verified_subject_name", Message: "input has no verified subject name"}
	}
	return nil
}
