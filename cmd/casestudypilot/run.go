package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"casestudypilot/internal/config"
	"casestudypilot/internal/fetch"
	"casestudypilot/internal/llm"
	"casestudypilot/internal/membership"
	"casestudypilot/internal/pipeline"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full generation and validation pipeline",
	Long:  "Fetches the video, verifies CNCF membership, analyzes the transcript, generates the document, and runs every validation checkpoint. Exits 0 on PASS, 1 on WARN, 2 on FAIL (halted).",
	RunE:  runRun,
}

var (
	runVideoURL   string
	runCompany    string
	runDocType    string
	runRubricPath string
	runTemplate   string
	runOutputDir  string
	runVerbose    bool
)

func init() {
	runCmd.Flags().StringVarP(&runVideoURL, "url", "u", "", "YouTube video URL (required)")
	runCmd.Flags().StringVarP(&runCompany, "company", "c", "", "Company name (required)")
	runCmd.Flags().StringVar(&runDocType, "type", "case-study", "Document type: case-study or reference-architecture")
	runCmd.Flags().StringVar(&runRubricPath, "rubric", "", "Path to rubric JSON file (defaults to built-in rubric)")
	runCmd.Flags().StringVar(&runTemplate, "template", "", "Path to markdown template (defaults to built-in)")
	runCmd.Flags().StringVarP(&runOutputDir, "out-dir", "o", "", "Output directory (defaults to case-studies/ or reference-architectures/ by type)")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Verbose output")

	if err := runCmd.MarkFlagRequired("url"); err != nil {
		panic(fmt.Sprintf("failed to mark url flag as required: %v", err))
	}
	if err := runCmd.MarkFlagRequired("company"); err != nil {
		panic(fmt.Sprintf("failed to mark company flag as required: %v", err))
	}

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, _ []string) error {
	docType, err := parseDocType(runDocType)
	if err != nil {
		return err
	}

	rubric, err := config.LoadRubric(runRubricPath)
	if err != nil {
		return err
	}

	apiKey := geminiAPIKey()
	if apiKey == "" {
		return fmt.Errorf("a Gemini API key is required: set GEMINI_API_KEY or 'api_key' in the config file")
	}

	ctx := cmd.Context()
	client, err := llm.NewClient(ctx, nil, apiKey)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	result, err := pipeline.Run(ctx, pipeline.RunOptions{
		VideoURL:     runVideoURL,
		CompanyName:  runCompany,
		DocType:      docType,
		Rubric:       rubric,
		TemplatePath: runTemplate,
		OutputDir:    runOutputDir,
		Verbose:      runVerbose,
		Fetcher:      fetch.NewClient(),
		Verifier:     membership.NewClient(),
		Generator:    llm.NewGenerator(client),
	})
	if err != nil {
		return err
	}

	if code := result.Report.Verdict.ExitCode(); code != 0 {
		os.Exit(code)
	}
	return nil
}
