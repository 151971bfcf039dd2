package pipeline

import (
	"context"

	"casestudypilot/internal/types"
)

// TranscriptFetcher retrieves video metadata and transcript for a URL.
type TranscriptFetcher interface {
	VideoData(ctx context.Context, url string) (*types.VideoData, error)
}

// MembershipVerifier checks a company against the CNCF end-user member list.
type MembershipVerifier interface {
	Verify(ctx context.Context, companyName string) (*types.Verification, error)
}

// ContentGenerator runs the model-backed stages: transcript correction,
// deep analysis, and section drafting.
type ContentGenerator interface {
	CorrectTranscript(ctx context.Context, transcript, subject string) (string, error)
	AnalyzeTranscript(ctx context.Context, transcript, subject string) ([]byte, error)
	GenerateSections(ctx context.Context, a *types.Analysis, subject string, sectionNames []string) (map[string]string, error)
}
