package assemble

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"casestudypilot/internal/types"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"join": strings.Join,
}

// Screenshot is a captured slide attached to a section.
type Screenshot struct {
	Section          string `json:"section"`
	Path             string `json:"path"`
	TimestampSeconds int    `json:"timestamp_seconds,omitempty"`
	Description      string `json:"description,omitempty"`
}

// Artifacts are the pipeline outputs a document is assembled from. A
// zero DocType assembles a case study.
type Artifacts struct {
	DocType      types.DocumentType
	Video        *types.VideoData
	Analysis     *types.Analysis
	Sections     map[string]string
	SectionOrder []string
	Verification *types.Verification
	Screenshots  map[string]Screenshot
}

// Result reports where the assembled document was written.
type Result struct {
	OutputPath   string   `json:"output_path"`
	CompanyName  string   `json:"company_name"`
	CNCFProjects []string `json:"cncf_projects"`
}

// templateData is the context handed to the markdown template.
type templateData struct {
	Company      string
	Video        *types.VideoData
	Analysis     *types.Analysis
	Sections     map[string]string
	SectionOrder []string
	Screenshots  map[string]Screenshot
}

// Render assembles the final markdown. Assembly refuses companies that
// did not verify as CNCF end-user members. An empty templatePath uses
// the embedded default template.
func Render(a *Artifacts, templatePath string) (string, error) {
	if a.Verification == nil || !a.Verification.IsMember {
		company := ""
		confidence := 0.0
		if a.Verification != nil {
			company = a.Verification.QueryName
			confidence = a.Verification.Confidence
		}
		return "", &MembershipError{Company: company, Confidence: confidence}
	}

	tmpl, err := parseTemplate(templatePath, a.DocType)
	if err != nil {
		return "", err
	}

	company := a.Verification.MatchedName
	if company == "" {
		company = a.Verification.QueryName
	}

	order := a.SectionOrder
	if len(order) == 0 {
		order = orderedSectionNames(a.Sections)
	}
	screenshots := a.Screenshots
	if screenshots == nil {
		screenshots = map[string]Screenshot{}
	}

	var sb strings.Builder
	err = tmpl.Execute(&sb, &templateData{
		Company:      company,
		Video:        a.Video,
		Analysis:     a.Analysis,
		Sections:     a.Sections,
		SectionOrder: order,
		Screenshots:  screenshots,
	})
	if err != nil {
		return "", &TemplateError{Message: "failed to execute template", Cause: err}
	}

	return AddHyperlinks(sb.String(), company), nil
}

func parseTemplate(templatePath string, docType types.DocumentType) (*template.Template, error) {
	if templatePath == "" {
		name := "case_study.md.tmpl"
		if docType == types.DocTypeReferenceArchitecture {
			name = "reference_architecture.md.tmpl"
		}
		tmpl, err := template.New(name).Funcs(templateFuncs).ParseFS(templateFS, "templates/"+name)
		if err != nil {
			return nil, &TemplateError{Message: "failed to parse embedded template", Cause: err}
		}
		return tmpl, nil
	}

	content, err := os.ReadFile(templatePath)
	if err != nil {
		return nil, &TemplateError{Message: fmt.Sprintf("failed to read template file: %s", templatePath), Cause: err}
	}
	tmpl, err := template.New(filepath.Base(templatePath)).Funcs(templateFuncs).Parse(string(content))
	if err != nil {
		return nil, &TemplateError{Message: "failed to parse template", Cause: err}
	}
	return tmpl, nil
}

// orderedSectionNames returns the canonical case-study order for known
// sections, then any extras in map order.
func orderedSectionNames(sections map[string]string) []string {
	canonical := []string{"Overview", "Challenge", "Solution", "Impact", "Conclusion"}
	var order []string
	seen := make(map[string]bool)
	for _, name := range canonical {
		if _, ok := sections[name]; ok {
			order = append(order, name)
			seen[name] = true
		}
	}
	var extras []string
	for name := range sections {
		if !seen[name] {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)
	return append(order, extras...)
}

// OutputName derives the output filename from the company name.
func OutputName(company string) string {
	return Slugify(company) + ".md"
}

// DefaultOutputDir returns the conventional output directory for a
// document type.
func DefaultOutputDir(t types.DocumentType) string {
	if t == types.DocTypeReferenceArchitecture {
		return "reference-architectures"
	}
	return "case-studies"
}

func loadJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// FilePaths names the component JSON files an assembly reads.
type FilePaths struct {
	DocType      types.DocumentType
	VideoData    string
	Analysis     string
	Sections     string
	Verification string
	Screenshots  string
	Template     string
	Output       string
}

// AssembleFiles loads component JSON artifacts, renders the document,
// and writes it to the output path. An empty output path derives one
// from the company slug under the document type's conventional
// directory.
func AssembleFiles(paths FilePaths) (*Result, error) {
	artifacts := &Artifacts{
		DocType:      paths.DocType,
		Video:        &types.VideoData{},
		Analysis:     &types.Analysis{},
		Verification: &types.Verification{},
	}
	if err := loadJSONFile(paths.VideoData, artifacts.Video); err != nil {
		return nil, err
	}
	if err := loadJSONFile(paths.Analysis, artifacts.Analysis); err != nil {
		return nil, err
	}
	if err := loadJSONFile(paths.Sections, &artifacts.Sections); err != nil {
		return nil, err
	}
	if err := loadJSONFile(paths.Verification, artifacts.Verification); err != nil {
		return nil, err
	}
	if paths.Screenshots != "" {
		var wrapper struct {
			Screenshots []Screenshot `json:"screenshots"`
		}
		if err := loadJSONFile(paths.Screenshots, &wrapper); err != nil {
			return nil, err
		}
		artifacts.Screenshots = make(map[string]Screenshot, len(wrapper.Screenshots))
		for _, s := range wrapper.Screenshots {
			artifacts.Screenshots[s.Section] = s
		}
	}

	rendered, err := Render(artifacts, paths.Template)
	if err != nil {
		return nil, err
	}

	company := artifacts.Verification.MatchedName
	if company == "" {
		company = artifacts.Verification.QueryName
	}

	outputPath := paths.Output
	if outputPath == "" {
		outputPath = filepath.Join(DefaultOutputDir(paths.DocType), OutputName(company))
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outputPath, []byte(rendered), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	return &Result{
		OutputPath:   outputPath,
		CompanyName:  company,
		CNCFProjects: artifacts.Analysis.ProjectNames(),
	}, nil
}
