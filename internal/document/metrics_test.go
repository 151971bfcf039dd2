package document

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"casestudypilot/internal/types"
)

func TestExtractMetrics(t *testing.T) {
	text := "We saw a 50% reduction and a 3x speedup across 10,000 pods, " +
		"saving $2,000,000 a year and 30 minutes per deploy. Another 50% gain followed."

	metrics := ExtractMetrics(text)

	literals := make([]string, 0, len(metrics))
	for _, m := range metrics {
		literals = append(literals, m.Literal)
	}
	// De-duplicated: "50%" appears once despite two mentions.
	assert.Equal(t, []string{"50%", "3x", "10,000 pods", "30 minutes", "$2,000,000"}, literals)
}

func TestExtractMetricsNone(t *testing.T) {
	assert.Empty(t, ExtractMetrics("no numbers here, just prose"))
}

func TestParseMetric(t *testing.T) {
	tests := []struct {
		literal string
		want    types.Metric
	}{
		{"50%", types.Metric{Literal: "50%", Value: "50", Unit: "%"}},
		{"3x", types.Metric{Literal: "3x", Value: "3", Unit: "x"}},
		{"$2,000,000", types.Metric{Literal: "$2,000,000", Value: "2,000,000", Unit: "$"}},
		{"10,000 pods", types.Metric{Literal: "10,000 pods", Value: "10,000", Unit: "pods"}},
		{"30 minutes", types.Metric{Literal: "30 minutes", Value: "30", Unit: "minutes"}},
		{"50% reduction", types.Metric{Literal: "50% reduction", Value: "50", Unit: "%", Comparison: "reduction"}},
		{"faster delivery", types.Metric{Literal: "faster delivery", Comparison: "faster"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseMetric(tt.literal), tt.literal)
	}
}

func TestDetectProjects(t *testing.T) {
	text := "We run Kubernetes with Argo CD and plain Argo Workflows, plus Helm charts."
	// Multi-word Argo products suppress the bare "Argo" prefix match.
	assert.Equal(t, []string{"Kubernetes", "Helm", "Argo CD", "Argo Workflows"}, DetectProjects(text))

	assert.Empty(t, DetectProjects("nothing cloud native here"))
}

func TestDetectProjectsCaseSensitive(t *testing.T) {
	// The catalog matches proper nouns only; "helm" the word is not the
	// project.
	assert.Empty(t, DetectProjects("take the helm of the ship"))
}

func TestIsKnownProject(t *testing.T) {
	assert.True(t, IsKnownProject("Kubernetes"))
	assert.False(t, IsKnownProject("kubernetes"))
	assert.False(t, IsKnownProject("Spotify"))
}
