package assemble

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddHyperlinksCompanyFirstOccurrenceOnly(t *testing.T) {
	text := "Intuit adopted GitLab. Later Intuit expanded."
	out := AddHyperlinks(text, "Intuit")

	assert.Equal(t, 1, strings.Count(out, "[Intuit](https://www.intuit.com)"))
	// The second mention stays plain.
	assert.Contains(t, out, "Later Intuit expanded")
}

func TestAddHyperlinksUnknownCompanyUntouched(t *testing.T) {
	text := "Globex adopted Kubernetes."
	assert.Equal(t, text, AddHyperlinks(text, "Globex"))
}

func TestAddHyperlinksBoldProjects(t *testing.T) {
	text := "They run **Kubernetes** with **Helm** everywhere. More **Kubernetes** later."
	out := AddHyperlinks(text, "Globex")

	assert.Contains(t, out, "**[Kubernetes](https://kubernetes.io)**")
	assert.Contains(t, out, "**[Helm](https://helm.sh)**")
	// Every bold occurrence is linked, not just the first.
	assert.Equal(t, 2, strings.Count(out, "**[Kubernetes](https://kubernetes.io)**"))
}

func TestAddHyperlinksAlreadyLinkedBoldLeftAlone(t *testing.T) {
	text := "See **[Kubernetes](https://kubernetes.io)** docs."
	out := AddHyperlinks(text, "Globex")
	assert.Equal(t, 1, strings.Count(out, "https://kubernetes.io"))
}

func TestAddHyperlinksGlossaryOncePerParagraph(t *testing.T) {
	text := "They embraced GitOps early. GitOps stuck.\n\nGitOps spread to every team."
	out := AddHyperlinks(text, "Globex")

	assert.Equal(t, 2, strings.Count(out, "[GitOps](https://glossary.cncf.io/gitops/)"))
}

func TestAddHyperlinksGlossaryCaseInsensitive(t *testing.T) {
	out := AddHyperlinks("A cloud native platform.", "Globex")
	assert.Contains(t, out, "[cloud native](https://glossary.cncf.io/cloud-native-tech/)")
}
