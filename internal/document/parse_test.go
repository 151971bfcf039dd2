package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casestudypilot/internal/types"
)

const sampleMarkdown = `# Intuit Case Study

Watch the talk on [YouTube](https://www.youtube.com/watch?v=abc).

## Overview

Intuit runs Kubernetes at scale with a 50% reduction in deployment time.

![Dashboard view](images/dashboard.png)

## Challenge

Legacy tooling slowed releases to 3 hours each.

### Root cause

Manual approvals dominated the process.

## Solution

Argo CD and Helm drive every rollout now.

![Rollout UI](images/rollout.png)
`

func TestParseSplitsTitleAndSections(t *testing.T) {
	doc := Parse(sampleMarkdown, types.DocTypeCaseStudy, "Intuit")

	assert.Equal(t, "Intuit Case Study", doc.Title)
	assert.Equal(t, "Intuit", doc.Subject)
	require.Len(t, doc.Sections, 3)
	assert.Equal(t, "Overview", doc.Sections[0].Name)
	assert.Equal(t, "Challenge", doc.Sections[1].Name)
	assert.Equal(t, "Solution", doc.Sections[2].Name)

	// Subsections stay inside their parent section's body.
	body, ok := doc.Section("Challenge")
	require.True(t, ok)
	assert.Contains(t, body, "Root cause")
	assert.Contains(t, body, "Manual approvals")
}

func TestParseDerivedFields(t *testing.T) {
	doc := Parse(sampleMarkdown, types.DocTypeCaseStudy, "Intuit")

	assert.Equal(t, 2, doc.Screenshots)
	assert.Equal(t, []string{"Kubernetes", "Helm", "Argo CD"}, doc.Projects)

	literals := make([]string, 0, len(doc.ClaimedMetrics))
	for _, m := range doc.ClaimedMetrics {
		literals = append(literals, m.Literal)
	}
	assert.Contains(t, literals, "50%")
	assert.Contains(t, literals, "3 hours")
}

func TestParseDropsDuplicateSections(t *testing.T) {
	src := "# T\n\n## Overview\n\nfirst\n\n## Overview\n\nsecond\n"
	doc := Parse(src, types.DocTypeCaseStudy, "")

	require.Len(t, doc.Sections, 1)
	body, _ := doc.Section("Overview")
	assert.Equal(t, "first", body)
}

func TestParseNoSections(t *testing.T) {
	doc := Parse("just a paragraph with no headings", types.DocTypeCaseStudy, "")
	assert.Empty(t, doc.Sections)
	assert.Empty(t, doc.Title)
}
