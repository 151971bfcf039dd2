package membership

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSubject(t *testing.T) {
	tests := []struct {
		name       string
		company    string
		confidence float64
		critical   int
		warnings   int
	}{
		{"valid high confidence", "Intuit", 0.95, 0, 0},
		{"valid medium confidence", "Intuit", 0.65, 0, 1},
		{"low confidence", "Intuit", 0.40, 1, 0},
		{"generic placeholder", "Company", 0.95, 1, 0},
		{"generic lowercase", "tbd", 0.95, 1, 0},
		{"single character", "X", 0.95, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checks := ValidateSubject(tt.company, tt.confidence)
			assert.Len(t, checks.Critical, tt.critical)
			assert.Len(t, checks.Warnings, tt.warnings)
		})
	}
}

func TestValidateSubjectEmptyShortCircuits(t *testing.T) {
	checks := ValidateSubject("   ", 0.1)
	require.Len(t, checks.Critical, 1)
	assert.Equal(t, "no company name provided", checks.Critical[0])
	assert.Empty(t, checks.Warnings)
}
