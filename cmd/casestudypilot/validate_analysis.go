package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"casestudypilot/internal/analysis"
	"casestudypilot/internal/config"
	"casestudypilot/internal/gate"
	"casestudypilot/internal/types"
)

var validateAnalysisCmd = &cobra.Command{
	Use:   "validate-analysis",
	Short: "Validate a deep-analysis JSON artifact",
	Long:  "Checks an analysis JSON file against the embedded schema and the depth rubric. Exits 0 on PASS, 1 on WARN, 2 on FAIL.",
	RunE:  runValidateAnalysis,
}

var (
	validateAnalysisInput      string
	validateAnalysisRubricPath string
)

func init() {
	validateAnalysisCmd.Flags().StringVarP(&validateAnalysisInput, "in", "i", "", "Path to analysis JSON file (required)")
	validateAnalysisCmd.Flags().StringVar(&validateAnalysisRubricPath, "rubric", "", "Path to rubric JSON file (defaults to built-in rubric)")

	if err := validateAnalysisCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateAnalysisCmd)
}

func runValidateAnalysis(_ *cobra.Command, _ []string) error {
	rubric, err := config.LoadRubric(validateAnalysisRubricPath)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(validateAnalysisInput)
	if err != nil {
		return fmt.Errorf("failed to read analysis file: %w", err)
	}

	parsed, checks := analysis.ValidateJSON(raw, &rubric.Analysis)
	if parsed != nil {
		fmt.Printf("Projects: %d, metrics: %d, patterns: %d, screenshots: %d, sections: %d\n",
			len(parsed.CNCFProjects), len(parsed.KeyMetrics), len(parsed.IntegrationPatterns),
			len(parsed.ScreenshotOpportunities), len(parsed.Sections))
	}

	report := &types.PipelineReport{}
	report.Append(gate.FromChecks(types.CheckpointAnalysisDepth, checks.Critical, checks.Warnings))
	printReportAndExit(report)
	return nil
}
