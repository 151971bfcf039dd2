// Package fabrication cross-references claimed quantitative metrics against
// source transcript text to detect fabricated numbers.
package fabrication

import (
	"regexp"
	"strings"
)

// Finding records whether one claimed metric is supported by the transcript.
type Finding struct {
	Metric    string `json:"metric"`
	Supported bool   `json:"supported"`
	Numeric   bool   `json:"numeric"`
	Evidence  string `json:"evidence,omitempty"`
}

var (
	numericTokenRe = regexp.MustCompile(`\$?\d[\d,]*(?:\.\d+)?[%x]?`)
	sentenceEndRe  = regexp.MustCompile(`[.!?]+(?:\s+|$)`)
	wordRe         = regexp.MustCompile(`[A-Za-z][A-Za-z-]*`)
)

// stopwords are too common to distinguish one metric claim from another.
var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "in": true, "on": true, "of": true,
	"to": true, "for": true, "with": true, "and": true, "or": true,
	"at": true, "by": true, "from": true, "our": true, "we": true,
	"is": true, "was": true, "were": true, "are": true, "per": true,
	"over": true, "than": true, "about": true, "across": true,
	"more": true, "less": true, "up": true, "down": true, "now": true,
}

// Check evaluates each claimed metric against the transcript text. The
// check is deliberately conservative: a numeric token must appear verbatim
// (allowing only formatting variants such as "50%" vs "50 percent") within
// the same or an adjacent sentence as the metric's distinguishing keyword.
// Spelled-out numbers are not inferred; ambiguous matches are flagged
// unsupported rather than guessed supported. Re-running Check on the same
// inputs yields identical results.
func Check(claimedMetrics []string, transcriptText string) []Finding {
	sentences := splitSentences(transcriptText)
	lowerSentences := make([]string, len(sentences))
	for i, s := range sentences {
		lowerSentences[i] = strings.ToLower(s)
	}
	lowerTranscript := strings.ToLower(transcriptText)

	findings := make([]Finding, 0, len(claimedMetrics))
	for _, metric := range claimedMetrics {
		findings = append(findings, checkOne(metric, sentences, lowerSentences, lowerTranscript))
	}
	return findings
}

func checkOne(metric string, sentences, lowerSentences []string, lowerTranscript string) Finding {
	tokens := numericTokenRe.FindAllString(metric, -1)
	keywords := extractKeywords(metric)

	f := Finding{Metric: metric, Numeric: len(tokens) > 0}

	if len(tokens) == 0 {
		// Qualitative claim: supported if every distinguishing keyword
		// appears somewhere in the transcript.
		if len(keywords) == 0 {
			return f
		}
		for _, kw := range keywords {
			if !strings.Contains(lowerTranscript, kw) {
				return f
			}
		}
		f.Supported = true
		return f
	}

	// The first keyword is the distinguishing one; every numeric token
	// must be evidenced near it.
	primary := ""
	if len(keywords) > 0 {
		primary = keywords[0]
	}
	var evidence string
	for _, token := range tokens {
		idx := findTokenSentence(token, lowerSentences, primary)
		if idx < 0 {
			return f
		}
		if evidence == "" {
			evidence = strings.TrimSpace(sentences[idx])
		}
	}
	f.Supported = true
	f.Evidence = evidence
	return f
}

// findTokenSentence returns the index of a sentence containing a formatting
// variant of token with the keyword in the same or an adjacent sentence, or
// -1 when no such sentence exists.
func findTokenSentence(token string, lowerSentences []string, keyword string) int {
	variants := tokenVariants(token)
	for i, sentence := range lowerSentences {
		if !containsAnyVariant(sentence, variants) {
			continue
		}
		if keyword == "" || keywordNearby(lowerSentences, i, keyword) {
			return i
		}
	}
	return -1
}

func containsAnyVariant(sentence string, variants []string) bool {
	for _, v := range variants {
		if containsToken(sentence, v) {
			return true
		}
	}
	return false
}

// containsToken reports whether variant occurs in sentence as a whole
// token. Hits inside a larger number ("50" in "500", "50%" in "150%")
// or glued to letters do not count.
func containsToken(sentence, variant string) bool {
	if variant == "" {
		return false
	}
	for from := 0; from+len(variant) <= len(sentence); {
		idx := strings.Index(sentence[from:], variant)
		if idx < 0 {
			return false
		}
		idx += from
		if boundaryBefore(sentence, idx, variant) && boundaryAfter(sentence, idx+len(variant), variant) {
			return true
		}
		from = idx + 1
	}
	return false
}

func boundaryBefore(s string, idx int, variant string) bool {
	if idx == 0 {
		return true
	}
	prev := s[idx-1]
	if isAlnum(prev) {
		return false
	}
	// "1.50" and "1,50" continue a larger number. "$" is fine: the dollar
	// sign is stripped from variants, so "$2,500" must still match "2,500".
	if isDigit(variant[0]) && (prev == '.' || prev == ',') {
		return false
	}
	return true
}

func boundaryAfter(s string, end int, variant string) bool {
	if end >= len(s) {
		return true
	}
	next := s[end]
	if isAlnum(next) {
		return false
	}
	if last := variant[len(variant)-1]; isDigit(last) {
		// "50%" is a percentage, not the count 50; "50,000" and "50.5"
		// continue a larger number.
		if next == '%' {
			return false
		}
		if (next == '.' || next == ',') && end+1 < len(s) && isDigit(s[end+1]) {
			return false
		}
	}
	return true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlnum(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// keywordNearby reports whether the keyword appears in sentence i or an
// adjacent sentence.
func keywordNearby(lowerSentences []string, i int, keyword string) bool {
	for j := i - 1; j <= i+1; j++ {
		if j < 0 || j >= len(lowerSentences) {
			continue
		}
		if strings.Contains(lowerSentences[j], keyword) {
			return true
		}
	}
	return false
}

// tokenVariants returns the lowercase formatting variants accepted as a
// verbatim match for a numeric token.
func tokenVariants(token string) []string {
	token = strings.ToLower(token)
	variants := []string{token}

	bases := []string{token}
	stripped := strings.ReplaceAll(token, ",", "")
	if stripped != token {
		variants = append(variants, stripped)
		bases = append(bases, stripped)
	}

	for _, t := range bases {
		switch {
		case strings.HasSuffix(t, "%"):
			variants = append(variants, strings.TrimSuffix(t, "%")+" percent")
		case strings.HasSuffix(t, "x"):
			variants = append(variants, strings.TrimSuffix(t, "x")+" times")
		case strings.HasPrefix(t, "$"):
			variants = append(variants, strings.TrimPrefix(t, "$"), strings.TrimPrefix(t, "$")+" dollars")
		}
	}
	return variants
}

// extractKeywords returns the lowercased distinguishing words of a metric
// string: everything that is not a number or a stopword.
func extractKeywords(metric string) []string {
	var keywords []string
	for _, word := range wordRe.FindAllString(metric, -1) {
		lower := strings.ToLower(word)
		if len(lower) < 3 || stopwords[lower] {
			continue
		}
		// Unit suffixes glued to numbers ("3x") never reach here; the
		// word regexp only matches alphabetic tokens.
		keywords = append(keywords, lower)
	}
	return keywords
}

func splitSentences(text string) []string {
	parts := sentenceEndRe.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}
