// Package consistency verifies that generated content is about the
// verified subject entity rather than some other organization mentioned in
// the source material.
package consistency

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"casestudypilot/internal/document"
	"casestudypilot/internal/types"
)

// topN is how deep in the entity frequency ranking the verified subject
// must appear.
const topN = 5

// Result reports whether a document's subject references match the
// verified subject.
type Result struct {
	Consistent bool     `json:"consistent"`
	Mismatches []string `json:"mismatches,omitempty"`
}

var (
	sentenceSplitRe = regexp.MustCompile(`[.!?\n]+`)
	tokenRe         = regexp.MustCompile(`[A-Za-z][A-Za-z0-9'-]*`)
	capitalizedRe   = regexp.MustCompile(`^[A-Z]`)
)

// Technical acronyms and boilerplate that look like entities but are not.
var entityStoplist = map[string]bool{
	"CNCF": true, "API": true, "APIs": true, "YAML": true, "JSON": true,
	"HTTP": true, "HTTPS": true, "CPU": true, "GPU": true, "SRE": true,
	"CLI": true, "SDK": true, "URL": true, "AI": true, "ML": true,
	"GitOps": true, "DevOps": true, "SaaS": true, "PaaS": true,
}

// Check compares the verified subject against proper-noun-like entity
// mentions in the document's title and overview section. It is binary by
// design: any mismatch means the content may describe the wrong
// organization, which is unconditionally unacceptable.
func Check(verifiedSubject string, doc *types.Document) Result {
	text := doc.Title + "\n" + overviewBody(doc)
	subjectCount := countOccurrences(text, verifiedSubject)

	entities := entityCounts(text, verifiedSubject)

	var mismatches []string
	if subjectCount == 0 {
		mismatches = append(mismatches,
			fmt.Sprintf("verified subject %q is not mentioned in the title or overview", verifiedSubject))
	}

	// Rank rival entities by frequency.
	type entityCount struct {
		name  string
		count int
	}
	ranked := make([]entityCount, 0, len(entities))
	for name, count := range entities {
		ranked = append(ranked, entityCount{name, count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].name < ranked[j].name
	})

	aboveSubject := 0
	for _, e := range ranked {
		if e.count > subjectCount {
			aboveSubject++
		}
	}
	if subjectCount > 0 && aboveSubject >= topN {
		mismatches = append(mismatches,
			fmt.Sprintf("verified subject %q is not among the top %d entities in the overview", verifiedSubject, topN))
	}
	if len(ranked) > 0 && ranked[0].count > subjectCount {
		mismatches = append(mismatches,
			fmt.Sprintf("overview appears to be about %q (%d mentions) rather than %q (%d mentions)",
				ranked[0].name, ranked[0].count, verifiedSubject, subjectCount))
	}

	return Result{Consistent: len(mismatches) == 0, Mismatches: mismatches}
}

// overviewBody returns the Overview section, falling back to the first
// section for document types that name it differently.
func overviewBody(doc *types.Document) string {
	if body, ok := doc.Section("Overview"); ok {
		return body
	}
	if len(doc.Sections) > 0 {
		return doc.Sections[0].Body
	}
	return ""
}

// entityCounts tallies capitalized mid-sentence tokens, excluding known
// project names, the subject's own words, and technical acronyms.
func entityCounts(text, subject string) map[string]int {
	subjectWords := make(map[string]bool)
	for _, w := range strings.Fields(subject) {
		subjectWords[strings.ToLower(w)] = true
	}

	counts := make(map[string]int)
	for _, sentence := range sentenceSplitRe.Split(text, -1) {
		tokens := tokenRe.FindAllString(sentence, -1)
		for i, token := range tokens {
			if i == 0 {
				// Sentence-initial capitalization carries no signal.
				continue
			}
			if len(token) < 3 || !capitalizedRe.MatchString(token) {
				continue
			}
			if entityStoplist[token] || document.IsKnownProject(token) {
				continue
			}
			if subjectWords[strings.ToLower(token)] {
				continue
			}
			counts[token]++
		}
	}
	return counts
}

// countOccurrences counts case-insensitive whole-token occurrences of the
// subject. Substring hits do not count: "Uber" inside "Kubernetes" is not
// a mention of Uber.
func countOccurrences(text, subject string) int {
	subjectTokens := tokenRe.FindAllString(strings.ToLower(subject), -1)
	if len(subjectTokens) == 0 {
		return 0
	}
	tokens := tokenRe.FindAllString(strings.ToLower(text), -1)

	count := 0
	for i := 0; i+len(subjectTokens) <= len(tokens); i++ {
		match := true
		for j, want := range subjectTokens {
			if strings.TrimSuffix(tokens[i+j], "'s") != want {
				match = false
				break
			}
		}
		if match {
			count++
		}
	}
	return count
}
