package transcript

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"casestudypilot/internal/config"
)

// talkText builds a transcript-like string with the requested word count,
// roughly six characters per word.
func talkText(words int) string {
	return strings.TrimSpace(strings.Repeat("talked ", words))
}

func TestQualityEmptyTranscript(t *testing.T) {
	rubric := &config.DefaultRubric().Transcript

	score, issues := Quality("", 0, rubric)
	assert.Equal(t, 0.0, score)
	assert.Contains(t, issues, "transcript is empty")

	score, _ = Quality("   \n\t", 10, rubric)
	assert.Equal(t, 0.0, score)
}

func TestQualityComfortableTranscript(t *testing.T) {
	rubric := &config.DefaultRubric().Transcript

	// 1000 words is about 7000 chars, above every floor and the comfort
	// threshold.
	score, issues := Quality(talkText(1000), 120, rubric)
	assert.Equal(t, 1.0, score)
	assert.Empty(t, issues)
}

func TestQualityShortButValidTranscriptWarns(t *testing.T) {
	rubric := &config.DefaultRubric().Transcript

	// Clears the hard floors (1000 chars, 100 words, 50 segments) but
	// stays under the 5000-char comfort threshold.
	text := talkText(300)
	score, issues := Quality(text, 60, rubric)

	assert.Equal(t, warnCap, score)
	assert.Len(t, issues, 1)
	assert.Contains(t, issues[0], "short transcript")
}

func TestQualityScoreIsWeakestRatio(t *testing.T) {
	rubric := &config.DefaultRubric().Transcript

	// Long enough text but only 10 of the 50 required segments.
	score, issues := Quality(talkText(1000), 10, rubric)
	assert.InDelta(t, 0.2, score, 1e-9)
	assert.Len(t, issues, 1)
	assert.Contains(t, issues[0], "too few transcript segments")
}

func TestQualityTooShortTranscriptFails(t *testing.T) {
	rubric := &config.DefaultRubric().Transcript

	score, issues := Quality("way too short to analyze", 2, rubric)
	assert.Less(t, score, rubric.Score.Fail)
	assert.NotEmpty(t, issues)
}
