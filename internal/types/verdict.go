// Package types provides type definitions for structured data used throughout the casestudypilot system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Verdict represents the outcome of evaluating a checkpoint.
type Verdict string

// Verdict values, ordered by severity.
const (
	VerdictPass Verdict = "PASS"
	VerdictWarn Verdict = "WARN"
	VerdictFail Verdict = "FAIL"
)

// ExitCode maps a verdict to the process exit-code convention used by
// collaborating tooling: 0 = continue, 1 = continue and log, 2 = halt.
func (v Verdict) ExitCode() int {
	switch v {
	case VerdictWarn:
		return 1
	case VerdictFail:
		return 2
	default:
		return 0
	}
}

// Worse returns the more severe of two verdicts.
func (v Verdict) Worse(other Verdict) Verdict {
	if v == VerdictFail || other == VerdictFail {
		return VerdictFail
	}
	if v == VerdictWarn || other == VerdictWarn {
		return VerdictWarn
	}
	return VerdictPass
}
