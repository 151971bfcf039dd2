package types

import "strings"

// Segment is a single timestamped piece of transcript text.
type Segment struct {
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
	Text     string  `json:"text"`
}

// Transcript is an ordered sequence of timestamped segments. Timestamps are
// non-decreasing. A transcript is immutable once fetched; a corrected
// variant is a new value, not a mutation.
type Transcript struct {
	Segments []Segment `json:"segments"`
}

// FullText concatenates all segment texts with single spaces.
func (t *Transcript) FullText() string {
	parts := make([]string, 0, len(t.Segments))
	for _, seg := range t.Segments {
		parts = append(parts, seg.Text)
	}
	return strings.Join(parts, " ")
}

// Duration returns the end time of the last segment in seconds.
func (t *Transcript) Duration() float64 {
	if len(t.Segments) == 0 {
		return 0
	}
	last := t.Segments[len(t.Segments)-1]
	return last.Start + last.Duration
}

// VideoData holds metadata and transcript for a single video.
type VideoData struct {
	VideoID           string    `json:"video_id"`
	URL               string    `json:"url"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	ChannelName       string    `json:"channel_name,omitempty"`
	DurationSeconds   float64   `json:"duration_seconds"`
	DurationFormatted string    `json:"duration_formatted,omitempty"`
	Transcript        string    `json:"transcript"`
	Segments          []Segment `json:"transcript_segments"`
	Success           bool      `json:"success,omitempty"`
	Error             string    `json:"error,omitempty"`
}
