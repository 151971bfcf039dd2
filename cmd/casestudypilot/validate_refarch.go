package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"casestudypilot/internal/config"
	"casestudypilot/internal/document"
	"casestudypilot/internal/gate"
	"casestudypilot/internal/scoring"
	"casestudypilot/internal/types"
)

var validateRefarchCmd = &cobra.Command{
	Use:   "validate-refarch",
	Short: "Score a reference architecture for technical depth",
	Long:  "Scores a deep-analysis JSON artifact across five technical-depth dimensions and, when a markdown document is given, scores it against the reference-architecture rubric. Exits 0 on PASS, 1 on WARN, 2 on FAIL.",
	RunE:  runValidateRefarch,
}

var (
	validateRefarchAnalysis   string
	validateRefarchDocument   string
	validateRefarchRubricPath string
)

func init() {
	validateRefarchCmd.Flags().StringVarP(&validateRefarchAnalysis, "analysis", "a", "", "Path to analysis JSON file (required)")
	validateRefarchCmd.Flags().StringVarP(&validateRefarchDocument, "in", "i", "", "Path to reference architecture markdown (optional)")
	validateRefarchCmd.Flags().StringVar(&validateRefarchRubricPath, "rubric", "", "Path to rubric JSON file (defaults to built-in rubric)")

	if err := validateRefarchCmd.MarkFlagRequired("analysis"); err != nil {
		panic(fmt.Sprintf("failed to mark analysis flag as required: %v", err))
	}

	rootCmd.AddCommand(validateRefarchCmd)
}

func runValidateRefarch(_ *cobra.Command, _ []string) error {
	rubric, err := config.LoadRubric(validateRefarchRubricPath)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(validateRefarchAnalysis)
	if err != nil {
		return fmt.Errorf("failed to read analysis file: %w", err)
	}
	var a types.Analysis
	if err := json.Unmarshal(raw, &a); err != nil {
		return fmt.Errorf("failed to parse analysis JSON: %w", err)
	}

	depth := scoring.ScoreTechnicalDepth(&a)
	fmt.Println(scoreTable([][2]string{
		{"Project depth", fmt.Sprintf("%.2f", depth.ProjectDepth)},
		{"Specificity", fmt.Sprintf("%.2f", depth.Specificity)},
		{"Implementation detail", fmt.Sprintf("%.2f", depth.ImplementationDetail)},
		{"Metric quality", fmt.Sprintf("%.2f", depth.MetricQuality)},
		{"Completeness", fmt.Sprintf("%.2f", depth.Completeness)},
		{"Overall", fmt.Sprintf("%.2f", depth.Overall)},
	}))

	report := &types.PipelineReport{}
	docRubric := &rubric.ReferenceArchitecture
	report.Append(gate.Evaluate(types.CheckpointAnalysisDepth, depth.Overall, docRubric.Score, nil))

	if validateRefarchDocument != "" {
		src, err := os.ReadFile(validateRefarchDocument)
		if err != nil {
			return fmt.Errorf("failed to read document: %w", err)
		}
		doc := document.Parse(string(src), types.DocTypeReferenceArchitecture, "")
		scores := scoring.Score(doc, docRubric)
		report.Append(gate.Evaluate(types.CheckpointFinalQuality, scores.Overall, docRubric.Score, scores.Issues))
	}

	printReportAndExit(report)
	return nil
}
