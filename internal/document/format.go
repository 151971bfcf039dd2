package document

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// FormatReport summarizes markdown well-formedness signals used by the
// formatting sub-score.
type FormatReport struct {
	HeadingJumps int  // consecutive heading level increases greater than one
	EmptyLinks   int  // links with an empty destination or empty text
	HasList      bool // at least one bullet or ordered list
	HasTable     bool // at least one GFM table
	Placeholders int  // unresolved template placeholders or TODO markers
}

var placeholderRe = regexp.MustCompile(`\{\{[^{}]*\}\}|\[(?:TODO|TBD|PLACEHOLDER|COMPANY_NAME)\]`)

// InspectFormat parses markdown and reports formatting signals.
func InspectFormat(src string) FormatReport {
	source := []byte(src)
	root := markdown.Parser().Parse(text.NewReader(source))

	var report FormatReport
	prevLevel := 0

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			if prevLevel > 0 && node.Level > prevLevel+1 {
				report.HeadingJumps++
			}
			prevLevel = node.Level
		case *ast.Link:
			if len(node.Destination) == 0 || strings.TrimSpace(nodeText(node, source)) == "" {
				report.EmptyLinks++
			}
		case *ast.List:
			report.HasList = true
		case *extast.Table:
			report.HasTable = true
		}
		return ast.WalkContinue, nil
	})

	report.Placeholders = len(placeholderRe.FindAllString(src, -1))
	return report
}
