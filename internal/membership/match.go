package membership

import (
	"context"
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"casestudypilot/internal/types"
)

// memberThreshold is the minimum fuzzy score to accept a member match.
const memberThreshold = 0.70

// corporateSuffixes are stripped after lowercasing. Order matters: the
// dotted forms must come before their bare prefixes.
var corporateSuffixes = []string{
	" inc.",
	" inc",
	" llc",
	" ltd.",
	" ltd",
	" corporation",
	" corp.",
	" corp",
}

// NormalizeName lowercases a company name and strips common corporate
// suffixes so "Intuit Inc." and "intuit inc" both compare equal to
// "intuit".
func NormalizeName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, suffix := range corporateSuffixes {
		normalized = strings.TrimSuffix(normalized, suffix)
	}
	return strings.TrimSpace(normalized)
}

// tokenSort rearranges the words of a normalized name into sorted order,
// so word order does not affect the similarity score.
func tokenSort(s string) string {
	fields := strings.Fields(s)
	sort.Strings(fields)
	return strings.Join(fields, " ")
}

// FindBestMatch matches a company name against the member list, exact
// first and fuzzy second. Fuzzy matches below the threshold report
// IsMember false with method "none".
func FindBestMatch(companyName string, members []string) *types.Verification {
	query := NormalizeName(companyName)
	sortedQuery := tokenSort(query)
	metric := metrics.NewSorensenDice()
	metric.CaseSensitive = false

	var bestScore float64
	var bestName string

	for _, member := range members {
		normalized := NormalizeName(member)
		if query == normalized {
			return &types.Verification{
				QueryName:   companyName,
				MatchedName: member,
				Confidence:  1.0,
				IsMember:    true,
				MatchMethod: "exact",
			}
		}

		score := strutil.Similarity(sortedQuery, tokenSort(normalized), metric)
		if score > bestScore {
			bestScore = score
			bestName = member
		}
	}

	isMember := bestScore >= memberThreshold
	matched := bestName
	if matched == "" {
		matched = companyName
	}
	method := "none"
	if isMember {
		method = "fuzzy"
	}
	return &types.Verification{
		QueryName:   companyName,
		MatchedName: matched,
		Confidence:  bestScore,
		IsMember:    isMember,
		MatchMethod: method,
	}
}

// Verify fetches the end-user member list and matches the company
// against it.
func (c *Client) Verify(ctx context.Context, companyName string) (*types.Verification, error) {
	members, err := c.EndUserMembers(ctx)
	if err != nil {
		return nil, err
	}
	return FindBestMatch(companyName, members), nil
}
