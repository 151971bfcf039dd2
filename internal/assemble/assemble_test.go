package assemble

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casestudypilot/internal/types"
)

func memberArtifacts() *Artifacts {
	return &Artifacts{
		Video: &types.VideoData{
			Title:             "Scaling GitOps at Intuit",
			URL:               "https://www.youtube.com/watch?v=abc12345678",
			DurationFormatted: "31:04",
		},
		Analysis: &types.Analysis{
			CNCFProjects: []types.CNCFProject{
				{Name: "Kubernetes", Usage: "container orchestration"},
				{Name: "Argo CD"},
			},
		},
		Sections: map[string]string{
			"Overview":   "Intuit builds financial software.",
			"Challenge":  "Deployments took hours.",
			"Solution":   "They moved everything to **Argo CD**.",
			"Impact":     "Deployments now take minutes.",
			"Conclusion": "The platform keeps growing.",
		},
		Verification: &types.Verification{
			QueryName:   "Intuit Inc.",
			MatchedName: "Intuit",
			Confidence:  1.0,
			IsMember:    true,
			MatchMethod: "exact",
		},
	}
}

func TestRenderMemberCompany(t *testing.T) {
	out, err := Render(memberArtifacts(), "")
	require.NoError(t, err)

	// The first company mention, here the title, picks up the homepage link.
	assert.Contains(t, out, "# [Intuit](https://www.intuit.com) Case Study")
	assert.Equal(t, 1, strings.Count(out, "[Intuit](https://www.intuit.com)"))
	assert.Contains(t, out, "[Scaling GitOps at Intuit](https://www.youtube.com/watch?v=abc12345678) (31:04)")
	assert.Contains(t, out, "*Intuit is a verified CNCF end-user member.*")

	// Sections appear in canonical order.
	overview := strings.Index(out, "## Overview")
	conclusion := strings.Index(out, "## Conclusion")
	require.GreaterOrEqual(t, overview, 0)
	assert.Greater(t, conclusion, overview)

	// Hyperlinking runs on the rendered output.
	assert.Contains(t, out, "**[Argo CD](https://argoproj.github.io/cd/)**")
}

func TestRenderReferenceArchitecture(t *testing.T) {
	a := memberArtifacts()
	a.DocType = types.DocTypeReferenceArchitecture
	a.Sections = map[string]string{
		"Executive Summary":     "Intuit consolidated its platform on Kubernetes.",
		"Architecture Overview": "Clusters are managed declaratively.",
	}
	a.SectionOrder = []string{"Executive Summary", "Architecture Overview"}
	a.Analysis.ArchitectureComponents = &types.ArchitectureComponents{
		InfrastructureLayer: []string{"Kubernetes", "etcd"},
		PlatformLayer:       []string{"Argo CD"},
		ApplicationLayer:    []string{"payment services"},
	}

	out, err := Render(a, "")
	require.NoError(t, err)

	assert.Contains(t, out, "# [Intuit](https://www.intuit.com) Reference Architecture")
	assert.NotContains(t, out, "Case Study")
	assert.Contains(t, out, "## Executive Summary")
	assert.Contains(t, out, "## Architecture Layers")
	assert.Contains(t, out, "| Infrastructure | Kubernetes, etcd |")
	assert.Contains(t, out, "| Platform | Argo CD |")
	assert.Contains(t, out, "*Intuit is a verified CNCF end-user member.*")
}

func TestRenderReferenceArchitectureWithoutComponents(t *testing.T) {
	a := memberArtifacts()
	a.DocType = types.DocTypeReferenceArchitecture

	out, err := Render(a, "")
	require.NoError(t, err)
	assert.NotContains(t, out, "## Architecture Layers")
	assert.Contains(t, out, "## CNCF Projects Used")
}

func TestDefaultOutputDir(t *testing.T) {
	tests := []struct {
		docType types.DocumentType
		want    string
	}{
		{types.DocTypeCaseStudy, "case-studies"},
		{types.DocTypeReferenceArchitecture, "reference-architectures"},
		{"", "case-studies"},
	}
	for _, tt := range tests {
		if got := DefaultOutputDir(tt.docType); got != tt.want {
			t.Errorf("DefaultOutputDir(%q) = %q, want %q", tt.docType, got, tt.want)
		}
	}
}

func TestRenderRefusesNonMember(t *testing.T) {
	a := memberArtifacts()
	a.Verification = &types.Verification{QueryName: "Globex", Confidence: 0.31}

	_, err := Render(a, "")
	require.Error(t, err)

	var memberErr *MembershipError
	require.ErrorAs(t, err, &memberErr)
	assert.Equal(t, "Globex", memberErr.Company)
	assert.Contains(t, err.Error(), "not a CNCF end-user member")
}

func TestRenderNilVerification(t *testing.T) {
	a := memberArtifacts()
	a.Verification = nil

	_, err := Render(a, "")
	var memberErr *MembershipError
	require.ErrorAs(t, err, &memberErr)
}

func TestRenderScreenshots(t *testing.T) {
	a := memberArtifacts()
	a.Screenshots = map[string]Screenshot{
		"Solution": {Section: "Solution", Path: "images/solution.png", Description: "Rollout UI"},
	}

	out, err := Render(a, "")
	require.NoError(t, err)

	assert.Contains(t, out, "![Rollout UI](images/solution.png)")
	// Sections without a captured screenshot get no image tag.
	assert.Equal(t, 1, strings.Count(out, "!["))
}

func TestRenderCustomTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minimal.md.tmpl")
	require.NoError(t, os.WriteFile(path, []byte("# {{.Company}}\n"), 0o644))

	out, err := Render(memberArtifacts(), path)
	require.NoError(t, err)
	assert.Equal(t, "# [Intuit](https://www.intuit.com)\n", out)
}

func TestOrderedSectionNames(t *testing.T) {
	order := orderedSectionNames(map[string]string{
		"Impact":     "",
		"Extras B":   "",
		"Overview":   "",
		"Extras A":   "",
		"Conclusion": "",
	})
	assert.Equal(t, []string{"Overview", "Impact", "Conclusion", "Extras A", "Extras B"}, order)
}

func writeJSONFile(t *testing.T, dir, name string, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestAssembleFiles(t *testing.T) {
	dir := t.TempDir()
	a := memberArtifacts()

	paths := FilePaths{
		VideoData:    writeJSONFile(t, dir, "video.json", a.Video),
		Analysis:     writeJSONFile(t, dir, "analysis.json", a.Analysis),
		Sections:     writeJSONFile(t, dir, "sections.json", a.Sections),
		Verification: writeJSONFile(t, dir, "verification.json", a.Verification),
		Output:       filepath.Join(dir, "out", "intuit.md"),
	}

	result, err := AssembleFiles(paths)
	require.NoError(t, err)

	assert.Equal(t, paths.Output, result.OutputPath)
	assert.Equal(t, "Intuit", result.CompanyName)
	assert.Equal(t, []string{"Kubernetes", "Argo CD"}, result.CNCFProjects)

	content, err := os.ReadFile(paths.Output)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Case Study")
	assert.Contains(t, string(content), "verified CNCF end-user member")
}

func TestAssembleFilesMissingInput(t *testing.T) {
	dir := t.TempDir()
	a := memberArtifacts()

	paths := FilePaths{
		VideoData:    filepath.Join(dir, "absent.json"),
		Analysis:     writeJSONFile(t, dir, "analysis.json", a.Analysis),
		Sections:     writeJSONFile(t, dir, "sections.json", a.Sections),
		Verification: writeJSONFile(t, dir, "verification.json", a.Verification),
	}

	_, err := AssembleFiles(paths)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}
