package document

import (
	"regexp"
	"strings"

	"casestudypilot/internal/types"
)

// Metric patterns matched in generated content: percentages, multipliers,
// counted resources, time expressions and dollar amounts.
var metricPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\d+(?:\.\d+)?%`),
	regexp.MustCompile(`(?i)\d+(?:\.\d+)?x\b`),
	regexp.MustCompile(`(?i)\d[\d,]*\s+(?:pods?|services?|nodes?|clusters?|users?|requests?|microservices?|deployments?|containers?)`),
	regexp.MustCompile(`(?i)\d+\s+(?:hours?|minutes?|seconds?|days?|weeks?|months?)`),
	regexp.MustCompile(`\$\d[\d,]*`),
}

var (
	numericTokenRe = regexp.MustCompile(`\$?\d[\d,]*(?:\.\d+)?[%x]?`)
	comparisonRe   = regexp.MustCompile(`(?i)\b(reduction|reduced|decrease[d]?|increase[d]?|improvement|improved|faster|slower|savings?|growth)\b`)
	unitRe         = regexp.MustCompile(`(?i)^\d[\d,]*(?:\.\d+)?\s*(%|x|percent|pods?|services?|nodes?|clusters?|users?|requests?|microservices?|deployments?|containers?|hours?|minutes?|seconds?|days?|weeks?|months?)\b`)
)

// ExtractMetrics finds quantitative claims in text and returns them in
// order of appearance, de-duplicated by literal string.
func ExtractMetrics(text string) []types.Metric {
	seen := make(map[string]bool)
	var metrics []types.Metric
	for _, pattern := range metricPatterns {
		for _, literal := range pattern.FindAllString(text, -1) {
			key := strings.ToLower(literal)
			if seen[key] {
				continue
			}
			seen[key] = true
			metrics = append(metrics, ParseMetric(literal))
		}
	}
	return metrics
}

// ParseMetric extracts the structured {value, unit, comparison} form from a
// metric literal when one is recognizable. The literal is always retained.
func ParseMetric(literal string) types.Metric {
	m := types.Metric{Literal: literal}

	token := numericTokenRe.FindString(literal)
	if token == "" {
		if cmp := comparisonRe.FindString(literal); cmp != "" {
			m.Comparison = strings.ToLower(cmp)
		}
		return m
	}

	value := strings.TrimPrefix(token, "$")
	switch {
	case strings.HasPrefix(token, "$"):
		m.Unit = "$"
		m.Value = value
	case strings.HasSuffix(token, "%"):
		m.Unit = "%"
		m.Value = strings.TrimSuffix(value, "%")
	case strings.HasSuffix(token, "x"):
		m.Unit = "x"
		m.Value = strings.TrimSuffix(value, "x")
	default:
		m.Value = value
		if um := unitRe.FindStringSubmatch(literal); um != nil {
			m.Unit = strings.ToLower(um[1])
		}
	}

	if cmp := comparisonRe.FindString(literal); cmp != "" {
		m.Comparison = strings.ToLower(cmp)
	}
	return m
}
