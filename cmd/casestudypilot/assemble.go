package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"casestudypilot/internal/assemble"
)

var assembleCmd = &cobra.Command{
	Use:   "assemble",
	Short: "Assemble a case study or reference architecture from component JSON artifacts",
	Long:  "Renders the final markdown from video data, analysis, sections, and verification JSON files. Assembly is refused for companies that did not verify as CNCF end-user members.",
	RunE:  runAssemble,
}

var (
	assemblePaths   assemble.FilePaths
	assembleDocType string
)

func init() {
	assembleCmd.Flags().StringVar(&assembleDocType, "type", "case-study", "Document type: case-study or reference-architecture")
	assembleCmd.Flags().StringVar(&assemblePaths.VideoData, "video-data", "", "Path to video data JSON (required)")
	assembleCmd.Flags().StringVar(&assemblePaths.Analysis, "analysis", "", "Path to analysis JSON (required)")
	assembleCmd.Flags().StringVar(&assemblePaths.Sections, "sections", "", "Path to sections JSON (required)")
	assembleCmd.Flags().StringVar(&assemblePaths.Verification, "verification", "", "Path to verification JSON (required)")
	assembleCmd.Flags().StringVar(&assemblePaths.Screenshots, "screenshots", "", "Path to screenshots JSON (optional)")
	assembleCmd.Flags().StringVar(&assemblePaths.Template, "template", "", "Path to markdown template (defaults to built-in)")
	assembleCmd.Flags().StringVarP(&assemblePaths.Output, "out", "o", "", "Output path (defaults to <type-dir>/<company-slug>.md)")

	for _, flag := range []string{"video-data", "analysis", "sections", "verification"} {
		if err := assembleCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	rootCmd.AddCommand(assembleCmd)
}

func runAssemble(_ *cobra.Command, _ []string) error {
	docType, err := parseDocType(assembleDocType)
	if err != nil {
		return err
	}
	assemblePaths.DocType = docType

	result, err := assemble.AssembleFiles(assemblePaths)
	if err != nil {
		return err
	}

	fmt.Printf("Assembled %s for %s\n", assembleDocType, result.CompanyName)
	if len(result.CNCFProjects) > 0 {
		fmt.Printf("CNCF projects: %s\n", strings.Join(result.CNCFProjects, ", "))
	}
	fmt.Printf("Output: %s\n", result.OutputPath)
	return nil
}
