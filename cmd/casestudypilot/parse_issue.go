package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"casestudypilot/internal/ingestion"
)

var parseIssueCmd = &cobra.Command{
	Use:   "parse-issue",
	Short: "Extract a generation request from a GitHub issue body",
	Long:  "Parses an issue body file and labels into a structured request: content type, normalized YouTube URL, and optional company name.",
	RunE:  runParseIssue,
}

var (
	parseIssueNumber int
	parseIssueTitle  string
	parseIssueBody   string
	parseIssueLabels []string
	parseIssueOutput string
)

func init() {
	parseIssueCmd.Flags().IntVarP(&parseIssueNumber, "number", "n", 0, "Issue number")
	parseIssueCmd.Flags().StringVar(&parseIssueTitle, "title", "", "Issue title")
	parseIssueCmd.Flags().StringVarP(&parseIssueBody, "body", "b", "", "Path to issue body file (required)")
	parseIssueCmd.Flags().StringSliceVarP(&parseIssueLabels, "label", "l", nil, "Issue label (repeatable, required)")
	parseIssueCmd.Flags().StringVarP(&parseIssueOutput, "out", "o", "", "Path to output request JSON file (optional)")

	if err := parseIssueCmd.MarkFlagRequired("body"); err != nil {
		panic(fmt.Sprintf("failed to mark body flag as required: %v", err))
	}
	if err := parseIssueCmd.MarkFlagRequired("label"); err != nil {
		panic(fmt.Sprintf("failed to mark label flag as required: %v", err))
	}

	rootCmd.AddCommand(parseIssueCmd)
}

func runParseIssue(_ *cobra.Command, _ []string) error {
	body, err := os.ReadFile(parseIssueBody)
	if err != nil {
		return fmt.Errorf("failed to read issue body: %w", err)
	}

	request, err := ingestion.ParseIssue(parseIssueNumber, parseIssueTitle, string(body), parseIssueLabels)
	if err != nil {
		return err
	}

	fmt.Printf("Content type: %s\n", request.ContentType)
	fmt.Printf("Video URL:    %s\n", request.VideoURL)
	if request.CompanyName != "" {
		fmt.Printf("Company:      %s\n", request.CompanyName)
	}

	if parseIssueOutput != "" {
		return writeJSON(parseIssueOutput, request)
	}
	return nil
}
