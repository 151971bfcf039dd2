package scoring

import (
	"regexp"
	"strings"

	"casestudypilot/internal/types"
)

// Technical depth dimension weights for reference architectures.
const (
	projectDepthWeight   = 0.25
	specificityWeight    = 0.20
	implDetailWeight     = 0.20
	metricQualityWeight  = 0.20
	completenessWeight   = 0.15
	depthBonus           = 0.1
	refArchSectionTarget = 13
)

var versionRe = regexp.MustCompile(`\bv\d+\.\d+`)

// TechnicalDepth holds the five-dimensional depth score for a reference
// architecture analysis.
type TechnicalDepth struct {
	ProjectDepth         float64 `json:"cncf_project_depth"`
	Specificity          float64 `json:"technical_specificity"`
	ImplementationDetail float64 `json:"implementation_detail"`
	MetricQuality        float64 `json:"metric_quality"`
	Completeness         float64 `json:"architecture_completeness"`
	Overall              float64 `json:"overall"`
}

// ScoreTechnicalDepth computes the weighted technical depth score for a
// deep analysis. Each dimension is in [0.0, 1.0].
func ScoreTechnicalDepth(a *types.Analysis) TechnicalDepth {
	d := TechnicalDepth{
		ProjectDepth:         scoreProjectDepth(a),
		Specificity:          scoreSpecificity(a),
		ImplementationDetail: scoreImplementationDetail(a),
		MetricQuality:        scoreMetricQuality(a),
		Completeness:         scoreCompleteness(a),
	}
	d.Overall = projectDepthWeight*d.ProjectDepth +
		specificityWeight*d.Specificity +
		implDetailWeight*d.ImplementationDetail +
		metricQualityWeight*d.MetricQuality +
		completenessWeight*d.Completeness
	return d
}

func scoreProjectDepth(a *types.Analysis) float64 {
	var score float64
	switch n := len(a.CNCFProjects); {
	case n >= 5:
		score = 1.0
	case n == 4:
		score = 0.8
	case n == 3:
		score = 0.6
	case n == 2:
		score = 0.4
	default:
		score = 0.2
	}

	categories := make(map[string]bool)
	for _, p := range a.CNCFProjects {
		if p.Category != "" {
			categories[p.Category] = true
		}
	}
	if len(categories) >= 3 {
		score = capped(score + depthBonus)
	}
	if wordCount(a.Sections["integration_patterns"]) > 500 {
		score = capped(score + depthBonus)
	}
	return score
}

func scoreSpecificity(a *types.Analysis) float64 {
	allText := joinSections(a)
	lower := strings.ToLower(allText)
	score := 0.0

	commandIndicators := []string{"kubectl", "helm", "eksctl", "```", "argo", "terraform"}
	if containsAny(lower, commandIndicators) {
		score += 0.2
	}
	if versionRe.MatchString(allText) {
		score += 0.2
	}
	configIndicators := []string{"apiVersion:", "kind:", "metadata:", "spec:", "replicas:", "nodeGroups:"}
	if containsAny(allText, configIndicators) {
		score += 0.2
	}
	specificTechs := []string{"envoy", "istio", "prometheus", "grafana", "argo", "flux", "calico"}
	if countContained(lower, specificTechs) >= 3 {
		score += 0.2
	}
	patterns := []string{"sidecar", "operator", "circuit breaker", "canary", "blue-green", "rolling"}
	if countContained(lower, patterns) >= 2 {
		score += 0.2
	}
	return capped(score)
}

func scoreImplementationDetail(a *types.Analysis) float64 {
	section := a.Sections["implementation_details"]
	words := wordCount(section)

	var score float64
	switch {
	case words >= 700:
		score = 1.0
	case words >= 500:
		score = 0.8
	case words >= 300:
		score = 0.6
	default:
		score = 0.4
	}

	lower := strings.ToLower(section)
	if containsAny(lower, []string{"phase", "step", "stage"}) {
		score = capped(score + depthBonus)
	}
	if containsAny(lower, []string{"challenge", "issue", "problem", "solution"}) {
		score = capped(score + depthBonus)
	}
	return score
}

func scoreMetricQuality(a *types.Analysis) float64 {
	metrics := a.KeyMetrics

	var score float64
	switch n := len(metrics); {
	case n >= 4:
		score = 1.0
	case n == 3:
		score = 0.8
	case n == 2:
		score = 0.6
	case n == 1:
		score = 0.4
	default:
		score = 0.2
	}

	if len(metrics) > 0 {
		beforeAfter := true
		for _, m := range metrics {
			if m.Improvement != "" && !strings.Contains(m.Improvement, "→") {
				beforeAfter = false
				break
			}
		}
		if beforeAfter {
			score = capped(score + depthBonus)
		}
	}

	var metricText strings.Builder
	for _, m := range metrics {
		metricText.WriteString(strings.ToLower(m.Metric))
		metricText.WriteString(" ")
	}
	categories := []string{"latency", "throughput", "error", "cost", "time", "frequency"}
	if countContained(metricText.String(), categories) >= 2 {
		score = capped(score + depthBonus)
	}
	return score
}

func scoreCompleteness(a *types.Analysis) float64 {
	var score float64
	switch n := len(a.Sections); {
	case n >= refArchSectionTarget:
		score = 1.0
	case n >= 11:
		score = 0.8
	case n >= 9:
		score = 0.6
	case n >= 7:
		score = 0.4
	default:
		score = 0.2
	}

	if wordCount(a.Sections["architecture_diagrams"]) > 200 {
		score = capped(score + depthBonus)
	}
	if wordCount(a.Sections["observability_operations"]) > 300 {
		score = capped(score + depthBonus)
	}
	return score
}

func joinSections(a *types.Analysis) string {
	var sb strings.Builder
	for _, body := range a.Sections {
		sb.WriteString(body)
		sb.WriteString(" ")
	}
	return sb.String()
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

func countContained(haystack string, needles []string) int {
	count := 0
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			count++
		}
	}
	return count
}

func capped(score float64) float64 {
	if score > 1.0 {
		return 1.0
	}
	return score
}
