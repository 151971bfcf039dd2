package document

import (
	"regexp"
	"sync"
)

// KnownProjects is the recognized cloud-native project catalog used for
// coverage scoring and entity allow-listing. Matching is case-sensitive:
// project names are proper nouns and lowercase collisions ("helm chart" vs
// the verb "helm") are common.
var KnownProjects = []string{
	"Kubernetes",
	"Prometheus",
	"Envoy",
	"CoreDNS",
	"containerd",
	"Fluentd",
	"Jaeger",
	"Vitess",
	"TUF",
	"Notary",
	"Helm",
	"Argo CD",
	"Argo Rollouts",
	"Argo Workflows",
	"Argo",
	"Cilium",
	"Flux",
	"Linkerd",
	"etcd",
	"CRI-O",
	"Harbor",
	"Falco",
	"Dragonfly",
	"Rook",
	"TiKV",
	"gRPC",
	"CNI",
	"Istio",
	"Knative",
	"OpenTelemetry",
	"Keptn",
	"KEDA",
	"Crossplane",
	"Backstage",
	"OPA",
	"SPIFFE",
	"Thanos",
	"Cortex",
	"NATS",
	"Dapr",
	"Longhorn",
	"Kyverno",
	"Karpenter",
}

var (
	projectReOnce sync.Once
	projectRes    map[string]*regexp.Regexp
)

func projectPatterns() map[string]*regexp.Regexp {
	projectReOnce.Do(func() {
		projectRes = make(map[string]*regexp.Regexp, len(KnownProjects))
		for _, p := range KnownProjects {
			projectRes[p] = regexp.MustCompile(`\b` + regexp.QuoteMeta(p) + `\b`)
		}
	})
	return projectRes
}

// DetectProjects returns the distinct known projects mentioned in text, in
// catalog order. A multi-word match ("Argo CD") suppresses its prefix
// ("Argo") so one product is not counted twice.
func DetectProjects(text string) []string {
	patterns := projectPatterns()
	var found []string
	matched := make(map[string]bool)
	for _, p := range KnownProjects {
		if patterns[p].MatchString(text) {
			matched[p] = true
		}
	}
	if matched["Argo CD"] || matched["Argo Rollouts"] || matched["Argo Workflows"] {
		delete(matched, "Argo")
	}
	for _, p := range KnownProjects {
		if matched[p] {
			found = append(found, p)
		}
	}
	return found
}

// IsKnownProject reports whether name is in the recognized catalog.
func IsKnownProject(name string) bool {
	_, ok := projectPatterns()[name]
	return ok
}
