package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"casestudypilot/internal/config"
	"casestudypilot/internal/consistency"
	"casestudypilot/internal/document"
	"casestudypilot/internal/fabrication"
	"casestudypilot/internal/gate"
	"casestudypilot/internal/observability"
	"casestudypilot/internal/scoring"
	"casestudypilot/internal/types"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a generated document against the quality rubric",
	Long:  "Scores a markdown case study or reference architecture and, when a transcript and subject are given, runs the fabrication and consistency checkpoints. Exits 0 on PASS, 1 on WARN, 2 on FAIL.",
	RunE:  runValidate,
}

var (
	validateInput      string
	validateTranscript string
	validateSubject    string
	validateDocType    string
	validateRubricPath string
	validateVerbose    bool
)

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to markdown document (required)")
	validateCmd.Flags().StringVarP(&validateTranscript, "transcript", "t", "", "Path to transcript text file (enables fabrication check)")
	validateCmd.Flags().StringVarP(&validateSubject, "subject", "s", "", "Verified subject name (enables consistency check)")
	validateCmd.Flags().StringVar(&validateDocType, "type", "case-study", "Document type: case-study or reference-architecture")
	validateCmd.Flags().StringVar(&validateRubricPath, "rubric", "", "Path to rubric JSON file (defaults to built-in rubric)")
	validateCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Verbose output")

	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func parseDocType(s string) (types.DocumentType, error) {
	switch s {
	case "case-study":
		return types.DocTypeCaseStudy, nil
	case "reference-architecture":
		return types.DocTypeReferenceArchitecture, nil
	default:
		return "", fmt.Errorf("unknown document type %q: expected case-study or reference-architecture", s)
	}
}

func runValidate(_ *cobra.Command, _ []string) error {
	docType, err := parseDocType(validateDocType)
	if err != nil {
		return err
	}

	rubric, err := config.LoadRubric(validateRubricPath)
	if err != nil {
		return err
	}

	src, err := os.ReadFile(validateInput)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	doc := document.Parse(string(src), docType, validateSubject)
	docRubric := rubric.ForType(docType)
	scores := scoring.Score(doc, docRubric)

	report := &types.PipelineReport{}

	if validateTranscript != "" {
		transcriptText, err := os.ReadFile(validateTranscript)
		if err != nil {
			return fmt.Errorf("failed to read transcript: %w", err)
		}
		var metrics []string
		for _, m := range doc.ClaimedMetrics {
			metrics = append(metrics, m.Literal)
		}
		findings := fabrication.Check(metrics, string(transcriptText))
		report.Append(gate.FromFabrication(findings))
	}

	if validateSubject != "" {
		report.Append(gate.FromConsistency(consistency.Check(validateSubject, doc)))
	}

	report.Append(gate.Evaluate(types.CheckpointFinalQuality, scores.Overall, docRubric.Score, scores.Issues))

	if validateVerbose {
		observability.NewPrinter(os.Stdout).PrintScores(scores)
	} else {
		fmt.Println(scoreTable([][2]string{
			{"Structure", fmt.Sprintf("%.2f", scores.Structure)},
			{"Depth", fmt.Sprintf("%.2f", scores.Depth)},
			{"Coverage", fmt.Sprintf("%.2f", scores.Coverage)},
			{"Formatting", fmt.Sprintf("%.2f", scores.Formatting)},
			{"Overall", fmt.Sprintf("%.2f", scores.Overall)},
		}))
	}

	printReportAndExit(report)
	return nil
}

// printReportAndExit prints the checkpoint outcomes and exits with the
// three-valued verdict convention: 0 PASS, 1 WARN, 2 FAIL.
func printReportAndExit(report *types.PipelineReport) {
	for _, result := range report.Results {
		fmt.Printf("%s: %s\n", result.Checkpoint, result.Verdict)
		for _, issue := range result.Issues {
			fmt.Printf("  - %s\n", issue)
		}
	}
	fmt.Printf("Verdict: %s\n", report.Verdict)
	if code := report.Verdict.ExitCode(); code != 0 {
		os.Exit(code)
	}
}
