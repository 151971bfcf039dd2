package types

// CNCFProject is a cloud-native project identified in a transcript.
type CNCFProject struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Usage    string `json:"usage,omitempty"`
}

// TechnicalMetric is a quantitative claim extracted during analysis,
// anchored to the transcript by a supporting quote.
type TechnicalMetric struct {
	Metric          string `json:"metric"`
	Improvement     string `json:"improvement,omitempty"`
	TranscriptQuote string `json:"transcript_quote"`
}

// ScreenshotOpportunity marks a moment in the video worth capturing.
type ScreenshotOpportunity struct {
	TimestampSeconds int    `json:"timestamp_seconds"`
	Section          string `json:"section"`
	Description      string `json:"description,omitempty"`
}

// ArchitectureComponents groups identified components by layer.
type ArchitectureComponents struct {
	InfrastructureLayer []string `json:"infrastructure_layer"`
	PlatformLayer       []string `json:"platform_layer"`
	ApplicationLayer    []string `json:"application_layer"`
}

// Analysis is the structured output of the deep transcript analysis stage.
type Analysis struct {
	CNCFProjects            []CNCFProject           `json:"cncf_projects"`
	KeyMetrics              []TechnicalMetric       `json:"key_metrics"`
	ArchitectureComponents  *ArchitectureComponents `json:"architecture_components,omitempty"`
	IntegrationPatterns     []string                `json:"integration_patterns,omitempty"`
	ScreenshotOpportunities []ScreenshotOpportunity `json:"screenshot_opportunities,omitempty"`
	Sections                map[string]string       `json:"sections"`
}

// ProjectNames returns the identified project names in order.
func (a *Analysis) ProjectNames() []string {
	names := make([]string, 0, len(a.CNCFProjects))
	for _, p := range a.CNCFProjects {
		names = append(names, p.Name)
	}
	return names
}

// Verification is the result of checking a company against the CNCF
// end-user member list.
type Verification struct {
	QueryName   string  `json:"query_name"`
	MatchedName string  `json:"matched_name"`
	Confidence  float64 `json:"confidence"`
	IsMember    bool    `json:"is_member"`
	MatchMethod string  `json:"match_method"`
}
