package transcript

import (
	"fmt"
	"strings"

	"casestudypilot/internal/config"
)

// warnCap is the score ceiling for a transcript that clears every hard
// floor but is still uncomfortably short. It sits inside the WARN band of
// the default thresholds so short transcripts surface as warnings.
const warnCap = 0.65

// Quality scores transcript completeness against the rubric. The score is
// the weakest of the character, word and segment ratios, each capped at
// 1.0, so any single deficient dimension drags the checkpoint down.
func Quality(text string, segmentCount int, rubric *config.TranscriptRubric) (float64, []string) {
	var issues []string

	if strings.TrimSpace(text) == "" {
		issues = append(issues, "transcript is empty")
		return 0, issues
	}

	chars := len(text)
	words := len(strings.Fields(text))

	score := ratio(chars, rubric.MinChars)
	if chars < rubric.MinChars {
		issues = append(issues, fmt.Sprintf("transcript too short: %d chars (minimum %d)", chars, rubric.MinChars))
	}
	if r := ratio(words, rubric.MinWords); r < score {
		score = r
	}
	if words < rubric.MinWords {
		issues = append(issues, fmt.Sprintf("transcript lacks meaningful content: only %d words (minimum %d)", words, rubric.MinWords))
	}
	if r := ratio(segmentCount, rubric.MinSegments); r < score {
		score = r
	}
	if segmentCount < rubric.MinSegments {
		issues = append(issues, fmt.Sprintf("too few transcript segments: %d (minimum %d)", segmentCount, rubric.MinSegments))
	}

	if score >= 1.0 && chars < rubric.ComfortChars {
		issues = append(issues, fmt.Sprintf("short transcript (%d chars); generated content may lack detail", chars))
		score = warnCap
	}
	return score, issues
}

func ratio(value, minimum int) float64 {
	if minimum <= 0 {
		return 1.0
	}
	r := float64(value) / float64(minimum)
	if r > 1.0 {
		return 1.0
	}
	return r
}
