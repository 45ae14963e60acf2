package prometheus

import (
	"regexp"

	"github.com/prometheus/client_golang/prometheus"
	io_prometheus_client "github.com/prometheus/client_model/go"
)

type nameFilteringGatherer struct {
	base        prometheus.Gatherer
	namePattern *regexp.Regexp
}

// NewNameFilteringGatherer creates a decorator for Gatherer that only
// exposes metric families whose name matches a regular expression.
// This can be used to limit the diagnostics HTTP server to metrics of
// interest, such as those of capped sets.
func NewNameFilteringGatherer(base prometheus.Gatherer, namePattern *regexp.Regexp) prometheus.Gatherer {
	return &nameFilteringGatherer{
		base:        base,
		namePattern: namePattern,
	}
}

func (g *nameFilteringGatherer) Gather() ([]*io_prometheus_client.MetricFamily, error) {
	allFamilies, err := g.base.Gather()
	filteredFamilies := make([]*io_prometheus_client.MetricFamily, 0, len(allFamilies))
	for _, family := range allFamilies {
		if g.namePattern.MatchString(family.GetName()) {
			filteredFamilies = append(filteredFamilies, family)
		}
	}
	// Gatherers may return partial results alongside an error.
	return filteredFamilies, err
}
