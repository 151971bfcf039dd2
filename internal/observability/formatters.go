// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"casestudypilot/internal/scoring"
	"casestudypilot/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintVideoData outputs a human-readable summary of fetched video data.
func (p *Printer) PrintVideoData(video *types.VideoData) {
	if video == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Video ID:  %s\n", video.VideoID))
	title := video.Title
	if len(title) > 45 {
		title = title[:42] + "..."
	}
	sb.WriteString(fmt.Sprintf("Title:     %s\n", title))
	if video.DurationFormatted != "" {
		sb.WriteString(fmt.Sprintf("Duration:  %s\n", video.DurationFormatted))
	}
	sb.WriteString(fmt.Sprintf("Segments:  %d\n", len(video.Segments)))
	sb.WriteString(fmt.Sprintf("Chars:     %d", len(video.Transcript)))

	p.printBox("FETCHED VIDEO DATA", sb.String())
}

// PrintAnalysis outputs a summary of the deep analysis.
func (p *Printer) PrintAnalysis(a *types.Analysis) {
	if a == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("CNCF projects: %d\n", len(a.CNCFProjects)))

	count := min(len(a.CNCFProjects), maxItemsToShow)
	for i := 0; i < count; i++ {
		project := a.CNCFProjects[i]
		sb.WriteString(fmt.Sprintf("  • %s", project.Name))
		if project.Category != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", project.Category))
		}
		sb.WriteString("\n")
	}
	if len(a.CNCFProjects) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(a.CNCFProjects)-maxItemsToShow))
	}

	sb.WriteString(fmt.Sprintf("\nKey metrics:   %d\n", len(a.KeyMetrics)))
	sb.WriteString(fmt.Sprintf("Patterns:      %d\n", len(a.IntegrationPatterns)))
	sb.WriteString(fmt.Sprintf("Screenshots:   %d\n", len(a.ScreenshotOpportunities)))
	sb.WriteString(fmt.Sprintf("Sections:      %d", len(a.Sections)))

	p.printBox("DEEP ANALYSIS", sb.String())
}

// PrintVerification outputs the membership verification outcome.
func (p *Printer) PrintVerification(v *types.Verification) {
	if v == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Query:       %s\n", v.QueryName))
	sb.WriteString(fmt.Sprintf("Matched:     %s\n", v.MatchedName))
	sb.WriteString(fmt.Sprintf("Confidence:  %.2f\n", v.Confidence))
	sb.WriteString(fmt.Sprintf("Method:      %s\n", v.MatchMethod))
	if v.IsMember {
		sb.WriteString("Member:      yes")
	} else {
		sb.WriteString("Member:      NO")
	}

	p.printBox("MEMBERSHIP VERIFICATION", sb.String())
}

// PrintScores outputs the per-dimension document scores.
func (p *Printer) PrintScores(scores *scoring.Scores) {
	if scores == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Structure:   %.2f\n", scores.Structure))
	sb.WriteString(fmt.Sprintf("Depth:       %.2f\n", scores.Depth))
	sb.WriteString(fmt.Sprintf("Coverage:    %.2f\n", scores.Coverage))
	sb.WriteString(fmt.Sprintf("Formatting:  %.2f\n", scores.Formatting))
	sb.WriteString(fmt.Sprintf("Overall:     %.2f", scores.Overall))

	if len(scores.Issues) > 0 {
		sb.WriteString("\n\nIssues:\n")
		count := min(len(scores.Issues), maxItemsToShow)
		for i := 0; i < count; i++ {
			issue := scores.Issues[i]
			if len(issue) > 50 {
				issue = issue[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", issue))
		}
		if len(scores.Issues) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(scores.Issues)-maxItemsToShow))
		}
	}

	p.printBox("DOCUMENT SCORES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReport outputs the checkpoint-by-checkpoint pipeline report.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintReport(report *types.PipelineReport) {
	if report == nil {
		return
	}

	if len(report.Results) == 0 && report.Verdict == types.VerdictPass {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO CHECKPOINTS RUN")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	for _, result := range report.Results {
		marker := verdictMarker(result.Verdict)
		sb.WriteString(fmt.Sprintf("%s %s", marker, result.Checkpoint))
		if result.Score != nil {
			sb.WriteString(fmt.Sprintf(" (%.2f)", *result.Score))
		}
		sb.WriteString("\n")
		for _, issue := range result.Issues {
			if len(issue) > 50 {
				issue = issue[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("    %s\n", issue))
		}
	}

	sb.WriteString(fmt.Sprintf("\nVerdict: %s", report.Verdict))
	if report.Halted {
		sb.WriteString(" (halted)")
	}

	p.printBox("PIPELINE REPORT", sb.String())
}

func verdictMarker(v types.Verdict) string {
	switch v {
	case types.VerdictPass:
		return "✓"
	case types.VerdictWarn:
		return "⚠"
	default:
		return "✗"
	}
}
