// Package transcript holds transcript data for a pipeline run and checks
// its quality against the rubric.
package transcript

import "casestudypilot/internal/types"

// Store holds the raw and corrected transcript text plus video metadata
// for one pipeline run. The raw transcript is immutable once fetched; a
// corrected variant is a new value produced by WithCorrected, never a
// mutation.
type Store struct {
	Video     types.VideoData
	Raw       types.Transcript
	Corrected string
}

// NewStore builds a store from fetched video data.
func NewStore(video types.VideoData) *Store {
	return &Store{
		Video: video,
		Raw:   types.Transcript{Segments: video.Segments},
	}
}

// Text returns the corrected transcript when available, otherwise the raw
// full text.
func (s *Store) Text() string {
	if s.Corrected != "" {
		return s.Corrected
	}
	if s.Video.Transcript != "" {
		return s.Video.Transcript
	}
	return s.Raw.FullText()
}

// WithCorrected returns a copy of the store carrying the corrected
// transcript text.
func (s *Store) WithCorrected(corrected string) *Store {
	copied := *s
	copied.Corrected = corrected
	return &copied
}
