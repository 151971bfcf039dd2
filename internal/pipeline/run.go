package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"casestudypilot/internal/analysis"
	"casestudypilot/internal/assemble"
	"casestudypilot/internal/config"
	"casestudypilot/internal/document"
	"casestudypilot/internal/gate"
	"casestudypilot/internal/membership"
	"casestudypilot/internal/observability"
	"casestudypilot/internal/transcript"
	"casestudypilot/internal/types"
)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	VideoURL     string
	CompanyName  string
	DocType      types.DocumentType
	Rubric       *config.Rubric
	TemplatePath string
	OutputDir    string
	Verbose      bool

	Fetcher   TranscriptFetcher
	Verifier  MembershipVerifier
	Generator ContentGenerator
}

// RunResult is the terminal outcome of one pipeline run.
type RunResult struct {
	State        State
	Report       *types.PipelineReport
	Verification *types.Verification
	OutputPath   string
}

// Run orchestrates the full pipeline: fetch, verify, analyze, generate,
// validate, assemble. Checkpoint FAILs halt the run and come back as a
// HALTED result with the partial report; only configuration and input
// faults return an error.
func Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	printer := observability.NewPrinter(os.Stdout)

	rubric := opts.Rubric
	if rubric == nil {
		rubric = config.DefaultRubric()
	}
	if err := rubric.Validate(); err != nil {
		return nil, err
	}

	result := &RunResult{State: StatePending}
	report := &types.PipelineReport{}
	result.Report = report

	if opts.VideoURL == "" {
		return halt(result, report, types.CheckpointInput, "no video URL provided"),
			&InputError{Field: "video_url", Message: "no video URL provided"}
	}
	if opts.CompanyName == "" {
		return halt(result, report, types.CheckpointInput, "no company name provided"),
			&InputError{Field: "company_name", Message: "no company name provided"}
	}

	// Step 1: Fetch video data
	result.State = StateFetching
	fmt.Printf("Step 1/8: Fetching video data from %s...\n", opts.VideoURL)
	video, err := opts.Fetcher.VideoData(ctx, opts.VideoURL)
	if err != nil {
		return halt(result, report, types.CheckpointInput, err.Error()),
			&InputError{Field: "video_url", Message: err.Error()}
	}
	report.RunID = video.VideoID
	if opts.Verbose {
		printer.PrintVideoData(video)
	}
	store := transcript.NewStore(*video)

	// Step 2: Transcript quality checkpoint
	fmt.Printf("Step 2/8: Checking transcript quality...\n")
	score, issues := transcript.Quality(store.Text(), len(video.Segments), &rubric.Transcript)
	report.Append(gate.Evaluate(types.CheckpointTranscriptQuality, score, rubric.Transcript.Score, issues))
	if report.Halted {
		return halted(result, printer, opts.Verbose), nil
	}

	// Step 3: Verify CNCF membership
	fmt.Printf("Step 3/8: Verifying %s against the CNCF end-user member list...\n", opts.CompanyName)
	subjectChecks := membership.ValidateSubject(opts.CompanyName, 1.0)
	if len(subjectChecks.Critical) > 0 {
		msg := strings.Join(subjectChecks.Critical, "; ")
		return halt(result, report, types.CheckpointInput, msg),
			&InputError{Field: "company_name", Message: msg}
	}
	verification, err := opts.Verifier.Verify(ctx, opts.CompanyName)
	if err != nil {
		return nil, fmt.Errorf("membership verification failed: %w", err)
	}
	result.Verification = verification
	if opts.Verbose {
		printer.PrintVerification(verification)
	}
	if !verification.IsMember {
		return nil, &assemble.MembershipError{
			Company:    verification.QueryName,
			Confidence: verification.Confidence,
		}
	}
	subject := verification.MatchedName
	if subject == "" {
		subject = opts.CompanyName
	}

	// Step 4: Correct transcript
	result.State = StateAnalyzing
	fmt.Printf("Step 4/8: Correcting transcript...\n")
	corrected, err := opts.Generator.CorrectTranscript(ctx, store.Text(), subject)
	if err != nil {
		fmt.Printf("Warning: transcript correction failed: %v. Using raw transcript.\n", err)
	} else {
		store = store.WithCorrected(corrected)
	}

	// Step 5: Deep analysis + depth checkpoint
	fmt.Printf("Step 5/8: Analyzing transcript...\n")
	rawAnalysis, err := opts.Generator.AnalyzeTranscript(ctx, store.Text(), subject)
	if err != nil {
		return nil, fmt.Errorf("transcript analysis failed: %w", err)
	}
	parsed, checks := analysis.ValidateJSON(rawAnalysis, &rubric.Analysis)
	report.Append(gate.FromChecks(types.CheckpointAnalysisDepth, checks.Critical, checks.Warnings))
	if report.Halted {
		return halted(result, printer, opts.Verbose), nil
	}
	if opts.Verbose {
		printer.PrintAnalysis(parsed)
	}

	// Step 6: Generate document sections
	result.State = StateGenerating
	docRubric := rubric.ForType(opts.DocType)
	fmt.Printf("Step 6/8: Generating %d document sections...\n", len(docRubric.RequiredSections))
	sections, err := opts.Generator.GenerateSections(ctx, parsed, subject, docRubric.RequiredSections)
	if err != nil {
		return nil, fmt.Errorf("section generation failed: %w", err)
	}
	doc := document.Parse(renderMarkdown(video.Title, docRubric.RequiredSections, sections), opts.DocType, subject)

	// Step 7: Remaining checkpoints
	result.State = StateValidating
	fmt.Printf("Step 7/8: Running validation checkpoints...\n")
	in := &Input{
		TranscriptText:  store.Text(),
		SegmentCount:    len(video.Segments),
		VideoTitle:      video.Title,
		VerifiedSubject: subject,
		Analysis:        parsed,
		Document:        doc,
	}
	for _, checkpoint := range []func(*Input, *config.Rubric) types.CheckpointResult{
		checkMetricFabrication,
		checkSubjectConsistency,
		checkFinalQuality,
	} {
		report.Append(checkpoint(in, rubric))
		if report.Halted {
			return halted(result, printer, opts.Verbose), nil
		}
	}

	// Step 8: Assemble final document
	fmt.Printf("Step 8/8: Assembling final document...\n")
	rendered, err := assemble.Render(&assemble.Artifacts{
		DocType:      opts.DocType,
		Video:        video,
		Analysis:     parsed,
		Sections:     sections,
		SectionOrder: docRubric.RequiredSections,
		Verification: verification,
	}, opts.TemplatePath)
	if err != nil {
		return nil, err
	}

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = assemble.DefaultOutputDir(opts.DocType)
	}
	outputPath := filepath.Join(outputDir, assemble.OutputName(subject))
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outputPath, []byte(rendered), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	result.State = StateAssembled
	result.OutputPath = outputPath
	if opts.Verbose {
		printer.PrintReport(report)
	}
	fmt.Printf("Done! Document written to %s (verdict: %s)\n", outputPath, report.Verdict)
	return result, nil
}

// renderMarkdown flattens generated sections into a markdown document in
// canonical section order.
func renderMarkdown(title string, order []string, sections map[string]string) string {
	var sb strings.Builder
	sb.WriteString("# " + title + "\n\n")
	for _, name := range order {
		body, ok := sections[name]
		if !ok {
			continue
		}
		sb.WriteString("## " + name + "\n\n")
		sb.WriteString(strings.TrimSpace(body))
		sb.WriteString("\n\n")
	}
	return sb.String()
}

func halt(result *RunResult, report *types.PipelineReport, cp types.Checkpoint, issue string) *RunResult {
	report.Append(types.CheckpointResult{
		Checkpoint: cp,
		Verdict:    types.VerdictFail,
		Issues:     []string{issue},
	})
	result.State = StateHalted
	return result
}

func halted(result *RunResult, printer *observability.Printer, verbose bool) *RunResult {
	result.State = StateHalted
	if verbose {
		printer.PrintReport(result.Report)
	}
	failing := result.Report.Results[len(result.Report.Results)-1]
	fmt.Printf("Halted at checkpoint %s: %s\n", failing.Checkpoint, strings.Join(failing.Issues, "; "))
	return result
}
