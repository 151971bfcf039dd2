package assemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Intuit", "intuit"},
		{"Capital One", "capital-one"},
		{"Scaling GitOps at Intuit - Jane Doe, Intuit", "scaling-gitops-at-intuit"},
		{"What's Next?!", "whats-next"},
		{"  spaced   out  ", "spaced-out"},
		{"already-slugged", "already-slugged"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), tt.in)
	}
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "capital-one.md", OutputName("Capital One"))
}
