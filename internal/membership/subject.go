package membership

import (
	"fmt"
	"strings"
)

// genericNames are placeholder values that must never pass as a real
// company name.
var genericNames = map[string]bool{
	"company":      true,
	"organization": true,
	"tech":         true,
	"unknown":      true,
	"tbd":          true,
	"n/a":          true,
	"none":         true,
}

// SubjectChecks holds the outcome of validating an extracted company
// name before the pipeline commits to it.
type SubjectChecks struct {
	Critical []string
	Warnings []string
}

// ValidateSubject checks an extracted company name for placeholders,
// length, and extraction confidence.
func ValidateSubject(name string, confidence float64) SubjectChecks {
	var checks SubjectChecks
	trimmed := strings.TrimSpace(name)

	if trimmed == "" {
		checks.Critical = append(checks.Critical, "no company name provided")
		return checks
	}
	if genericNames[strings.ToLower(trimmed)] {
		checks.Critical = append(checks.Critical,
			fmt.Sprintf("company name is a generic placeholder: %q", name))
	}
	if len(trimmed) < 2 {
		checks.Critical = append(checks.Critical,
			fmt.Sprintf("company name too short: %q (%d chars)", name, len(trimmed)))
	}

	switch {
	case confidence < 0.5:
		checks.Critical = append(checks.Critical,
			fmt.Sprintf("low confidence in company extraction: %.2f", confidence))
	case confidence < 0.7:
		checks.Warnings = append(checks.Warnings,
			fmt.Sprintf("low confidence in company extraction: %.2f", confidence))
	}

	return checks
}
