package assemble

import (
	"fmt"
	"regexp"
	"strings"
)

// CompanyURLs maps known end-user companies to their homepages.
var CompanyURLs = map[string]string{
	"Intuit":  "https://www.intuit.com",
	"Adobe":   "https://www.adobe.com",
	"Spotify": "https://www.spotify.com",
	"Adidas":  "https://www.adidas.com",
	"Apple":   "https://www.apple.com",
	"Netflix": "https://www.netflix.com",
}

// ProjectURLs maps CNCF project names to their project sites.
var ProjectURLs = map[string]string{
	"Kubernetes":     "https://kubernetes.io",
	"Argo CD":        "https://argoproj.github.io/cd/",
	"Argo Rollouts":  "https://argoproj.github.io/rollouts/",
	"Argo Workflows": "https://argoproj.github.io/workflows/",
	"Helm":           "https://helm.sh",
	"Prometheus":     "https://prometheus.io",
	"Istio":          "https://istio.io",
	"Envoy":          "https://www.envoyproxy.io",
	"Fluentd":        "https://www.fluentd.org",
	"Jaeger":         "https://www.jaegertracing.io",
	"Linkerd":        "https://linkerd.io",
	"Cilium":         "https://cilium.io",
	"Falco":          "https://falco.org",
	"Harbor":         "https://goharbor.io",
	"etcd":           "https://etcd.io",
	"CoreDNS":        "https://coredns.io",
	"containerd":     "https://containerd.io",
	"Datadog":        "https://www.datadoghq.com",
	"Jenkins":        "https://www.jenkins.io",
	"Traefik":        "https://traefik.io",
}

// GlossaryTerms maps cloud-native vocabulary to CNCF glossary entries.
var GlossaryTerms = map[string]string{
	"microservices":           "https://glossary.cncf.io/microservices-architecture/",
	"cloud-native":            "https://glossary.cncf.io/cloud-native-tech/",
	"cloud native":            "https://glossary.cncf.io/cloud-native-tech/",
	"container orchestration": "https://glossary.cncf.io/container-orchestration/",
	"GitOps":                  "https://glossary.cncf.io/gitops/",
	"continuous delivery":     "https://glossary.cncf.io/continuous-delivery/",
	"declarative":             "https://glossary.cncf.io/infrastructure-as-code/",
	"infrastructure as code":  "https://glossary.cncf.io/infrastructure-as-code/",
	"progressive delivery":    "https://glossary.cncf.io/progressive-delivery/",
	"canary deployment":       "https://glossary.cncf.io/canary-deployment/",
	"blue-green deployment":   "https://glossary.cncf.io/blue-green-deployment/",
	"service mesh":            "https://glossary.cncf.io/service-mesh/",
}

// AddHyperlinks links the company name, bold CNCF project names, and
// glossary terms in rendered markdown. Text already inside a link is
// left alone.
func AddHyperlinks(text, companyName string) string {
	if url, ok := CompanyURLs[companyName]; ok {
		text = linkFirst(text, companyName, url, false)
	}

	for project, url := range ProjectURLs {
		bold := "**" + project + "**"
		linked := fmt.Sprintf("**[%s](%s)**", project, url)
		text = replaceBoldUnlinked(text, bold, linked)
	}

	paragraphs := strings.Split(text, "\n\n")
	for i, para := range paragraphs {
		for term, url := range GlossaryTerms {
			para = linkFirst(para, term, url, true)
		}
		paragraphs[i] = para
	}
	return strings.Join(paragraphs, "\n\n")
}

// linkFirst wraps the first occurrence of term that is not already part
// of a markdown link.
func linkFirst(text, term, url string, caseInsensitive bool) string {
	pattern := `\b` + regexp.QuoteMeta(term) + `\b`
	if caseInsensitive {
		pattern = `(?i)` + pattern
	}
	re := regexp.MustCompile(pattern)

	for _, loc := range re.FindAllStringIndex(text, -1) {
		if insideLink(text, loc[0], loc[1]) {
			continue
		}
		matched := text[loc[0]:loc[1]]
		return text[:loc[0]] + fmt.Sprintf("[%s](%s)", matched, url) + text[loc[1]:]
	}
	return text
}

// insideLink reports whether the span at [start,end) sits inside
// existing markdown link syntax.
func insideLink(text string, start, end int) bool {
	// Link text: a closing bracket ahead before any opening one.
	rest := text[end:]
	if close := strings.IndexByte(rest, ']'); close >= 0 {
		open := strings.IndexByte(rest, '[')
		if open < 0 || close < open {
			return true
		}
	}
	// Link destination: inside (...) right after ].
	before := text[:start]
	if open := strings.LastIndexByte(before, '('); open >= 0 {
		if !strings.ContainsRune(before[open:], ')') && strings.HasSuffix(before[:open], "]") {
			return true
		}
	}
	return false
}

// replaceBoldUnlinked replaces bold occurrences not already followed by
// a link destination.
func replaceBoldUnlinked(text, bold, linked string) string {
	var b strings.Builder
	for {
		idx := strings.Index(text, bold)
		if idx < 0 {
			b.WriteString(text)
			return b.String()
		}
		end := idx + len(bold)
		b.WriteString(text[:idx])
		if end < len(text) && text[end] == '(' {
			b.WriteString(bold)
		} else if idx >= 1 && text[idx-1] == '[' {
			b.WriteString(bold)
		} else {
			b.WriteString(linked)
		}
		text = text[end:]
	}
}
