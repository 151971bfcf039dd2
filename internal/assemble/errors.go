// Package assemble renders final case-study markdown from the pipeline's
// component artifacts.
package assemble

import "fmt"

// TemplateError represents an error parsing or executing a markdown template
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// MembershipError indicates assembly was refused because the company is
// not a verified CNCF end-user member.
type MembershipError struct {
	Company    string
	Confidence float64
}

func (e *MembershipError) Error() string {
	return fmt.Sprintf("company %q is not a CNCF end-user member (confidence: %.2f)", e.Company, e.Confidence)
}
