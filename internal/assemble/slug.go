package assemble

import (
	"regexp"
	"strings"
)

var (
	slugStripRe    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapseRe = regexp.MustCompile(`[-\s]+`)
)

// Slugify converts text to a lowercase URL-friendly slug. Anything after
// a " - " separator is dropped since talk titles put speaker names there.
func Slugify(text string) string {
	text = strings.ToLower(text)
	if idx := strings.Index(text, " - "); idx >= 0 {
		text = text[:idx]
	}
	text = slugStripRe.ReplaceAllString(text, "")
	text = slugCollapseRe.ReplaceAllString(text, "-")
	return strings.Trim(text, "-")
}
