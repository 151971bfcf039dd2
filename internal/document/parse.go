// Package document parses generated markdown artifacts into structured
// documents and inspects their formatting.
package document

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"casestudypilot/internal/types"
)

// sectionHeadingLevel is the heading level that delimits document sections.
const sectionHeadingLevel = 2

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

type headingInfo struct {
	level     int
	text      string
	lineStart int
	bodyStart int
}

// Parse splits markdown source into a Document: the first level-1 heading
// becomes the title, each level-2 heading starts a named section, and the
// claimed metrics, project mentions and screenshot count are derived from
// the section bodies.
func Parse(src string, docType types.DocumentType, subject string) *types.Document {
	source := []byte(src)
	root := markdown.Parser().Parse(text.NewReader(source))

	var headings []headingInfo
	var screenshots int

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			if node.Lines().Len() == 0 {
				return ast.WalkContinue, nil
			}
			seg := node.Lines().At(0)
			lineStart := bytes.LastIndexByte(source[:seg.Start], '\n') + 1
			bodyStart := seg.Stop
			if idx := bytes.IndexByte(source[seg.Stop:], '\n'); idx >= 0 {
				bodyStart = seg.Stop + idx + 1
			} else {
				bodyStart = len(source)
			}
			headings = append(headings, headingInfo{
				level:     node.Level,
				text:      nodeText(node, source),
				lineStart: lineStart,
				bodyStart: bodyStart,
			})
		case *ast.Image:
			screenshots++
		}
		return ast.WalkContinue, nil
	})

	doc := &types.Document{
		Type:        docType,
		Subject:     subject,
		Screenshots: screenshots,
	}

	for i, h := range headings {
		if h.level == 1 && doc.Title == "" {
			doc.Title = h.text
			continue
		}
		if h.level != sectionHeadingLevel {
			continue
		}
		end := len(source)
		for _, next := range headings[i+1:] {
			if next.level <= sectionHeadingLevel {
				end = next.lineStart
				break
			}
		}
		name := strings.TrimSpace(h.text)
		if _, exists := doc.Section(name); exists {
			// Section names are unique; later duplicates are dropped.
			continue
		}
		doc.Sections = append(doc.Sections, types.Section{
			Name: name,
			Body: strings.TrimSpace(string(source[h.bodyStart:end])),
		})
	}

	full := doc.FullText()
	doc.ClaimedMetrics = ExtractMetrics(full)
	doc.Projects = DetectProjects(full)
	return doc
}

// nodeText collects the raw text content of a node's descendants.
func nodeText(n ast.Node, src []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if t, ok := c.(*ast.Text); ok {
				sb.Write(t.Segment.Value(src))
			}
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}
