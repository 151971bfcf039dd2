package fabrication

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTranscript = `We migrated everything to Kubernetes last year.
After the rollout we saw a 50 percent reduction in deployment time.
The platform team also cut infrastructure spend.
Today we run around 10,000 pods across three clusters.
Developer productivity improved a lot once the tooling stabilized.`

func TestCheckNumericSupportedViaFormattingVariant(t *testing.T) {
	findings := Check([]string{"50% reduction in deployment time"}, sampleTranscript)
	require.Len(t, findings, 1)

	f := findings[0]
	assert.True(t, f.Numeric)
	assert.True(t, f.Supported)
	assert.Contains(t, f.Evidence, "50 percent reduction")
}

func TestCheckNumericUnsupported(t *testing.T) {
	findings := Check([]string{"90% reduction in deployment time"}, sampleTranscript)
	require.Len(t, findings, 1)

	f := findings[0]
	assert.True(t, f.Numeric)
	assert.False(t, f.Supported)
	assert.Empty(t, f.Evidence)
}

func TestCheckSpelledOutNumbersNotInferred(t *testing.T) {
	transcript := "We scaled the fleet to ten thousand pods over two years. It was a long road."
	findings := Check([]string{"10,000 pods"}, transcript)
	require.Len(t, findings, 1)

	// "ten thousand" is never treated as evidence for "10,000".
	assert.True(t, findings[0].Numeric)
	assert.False(t, findings[0].Supported)
}

func TestCheckTokenInsideLargerNumberUnsupported(t *testing.T) {
	// "150%" must never count as evidence for a claimed "50%".
	findings := Check([]string{"50% reduction in deployment time"},
		"Load grew 150% last year and we still saw a reduction in deployment time.")
	require.Len(t, findings, 1)
	assert.False(t, findings[0].Supported)

	// Nor "500" for a claimed "50".
	findings = Check([]string{"50 nodes"}, "We now run 500 nodes across three regions.")
	require.Len(t, findings, 1)
	assert.False(t, findings[0].Supported)
}

func TestContainsToken(t *testing.T) {
	tests := []struct {
		sentence string
		variant  string
		want     bool
	}{
		{"load grew 150% last year", "50%", false},
		{"we cut latency by 50% overall", "50%", true},
		{"we now run 500 nodes", "50", false},
		{"we now run 50 nodes", "50", true},
		{"around 50,000 requests", "50", false},
		{"version 1.50 shipped", "50", false},
		{"50% of traffic", "50", false},
		{"it cost $2,500 per month", "2,500", true},
		{"grew 150 percent", "50 percent", false},
		{"saw a 50 percent reduction", "50 percent", true},
		{"we had 50, maybe 60, incidents", "50", true},
	}
	for _, tt := range tests {
		if got := containsToken(tt.sentence, tt.variant); got != tt.want {
			t.Errorf("containsToken(%q, %q) = %v, want %v", tt.sentence, tt.variant, got, tt.want)
		}
	}
}

func TestCheckCommaStrippedVariant(t *testing.T) {
	transcript := "Our busiest day peaked well above normal. We handled 10000 requests per second at peak."
	findings := Check([]string{"10,000 requests per second"}, transcript)
	require.Len(t, findings, 1)
	assert.True(t, findings[0].Supported)
}

func TestCheckKeywordMustBeNearby(t *testing.T) {
	transcript := `Spend was a real concern for leadership.
Unrelated detail one. Unrelated detail two. Unrelated detail three.
One dashboard showed 40% on an axis with no label.`
	findings := Check([]string{"40% cost savings"}, transcript)
	require.Len(t, findings, 1)

	// The number appears but far from any cost or savings language.
	assert.False(t, findings[0].Supported)
}

func TestCheckKeywordInAdjacentSentence(t *testing.T) {
	transcript := "Cost was the first thing we measured. The final number came to 40%. Everyone was happy."
	findings := Check([]string{"40% cost savings"}, transcript)
	require.Len(t, findings, 1)
	assert.True(t, findings[0].Supported)
}

func TestCheckQualitativeClaims(t *testing.T) {
	tests := []struct {
		name      string
		metric    string
		supported bool
	}{
		{"all keywords present", "improved developer productivity", true},
		{"missing keyword", "reduced on-call burnout", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := Check([]string{tt.metric}, sampleTranscript)
			require.Len(t, findings, 1)
			assert.False(t, findings[0].Numeric)
			assert.Equal(t, tt.supported, findings[0].Supported)
		})
	}
}

func TestCheckDeterministic(t *testing.T) {
	metrics := []string{
		"50% reduction in deployment time",
		"10,000 pods",
		"99.99% uptime",
		"improved developer productivity",
	}
	first := Check(metrics, sampleTranscript)
	second := Check(metrics, sampleTranscript)
	assert.Equal(t, first, second)

	// Findings come back in claim order, one per claim.
	require.Len(t, first, len(metrics))
	for i, f := range first {
		assert.Equal(t, metrics[i], f.Metric)
	}
}

func TestCheckEmptyInputs(t *testing.T) {
	assert.Empty(t, Check(nil, sampleTranscript))

	findings := Check([]string{"50% reduction"}, "")
	require.Len(t, findings, 1)
	assert.False(t, findings[0].Supported)
}

func TestTokenVariants(t *testing.T) {
	tests := []struct {
		token string
		want  []string
	}{
		{"50%", []string{"50%", "50 percent"}},
		{"3x", []string{"3x", "3 times"}},
		{"$2,500", []string{"$2,500", "$2500", "2,500", "2,500 dollars", "2500", "2500 dollars"}},
		{"120", []string{"120"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tokenVariants(tt.token), "token %s", tt.token)
	}
}

func TestExtractKeywords(t *testing.T) {
	// Stopwords and short words are dropped; order is preserved.
	assert.Equal(t, []string{"reduction", "deployment", "time"},
		extractKeywords("50% reduction in deployment time"))
	assert.Empty(t, extractKeywords("3x"))
}
