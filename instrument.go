package mazesearch

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// searchesTotal counts completed searches by variant and outcome.
	searchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mazesearch_searches_total",
		Help: "Completed searches by variant and outcome",
	}, []string{"variant", "outcome"})

	// nodesExpandedTotal accumulates expansion work across searches.
	nodesExpandedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mazesearch_nodes_expanded_total",
		Help: "Total nodes expanded, by variant",
	}, []string{"variant"})

	// frontierPeak tracks the peak frontier size per search.
	frontierPeak = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mazesearch_frontier_peak",
		Help:    "Peak frontier size per search",
		Buckets: prometheus.ExponentialBuckets(1, 2, 14),
	}, []string{"variant"})

	// pathLength tracks the number of steps in found paths.
	pathLength = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mazesearch_path_length_steps",
		Help:    "Steps in found paths, by variant",
		Buckets: prometheus.ExponentialBuckets(1, 2, 14),
	}, []string{"variant"})

	// searchDuration tracks search wall time.
	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mazesearch_search_duration_seconds",
		Help:    "Search duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 2, 16),
	}, []string{"variant"})
)

// Observe records a finished search in the package's prometheus collectors.
// The core never calls it on its own; callers that want exported metrics
// invoke it with the Result and error they got back from Search.
func Observe(v Variant, res Result, err error, elapsed time.Duration) {
	outcome := "found"
	switch {
	case err != nil:
		outcome = "error"
	case !res.Found:
		outcome = "no_path"
	}
	name := v.String()
	searchesTotal.WithLabelValues(name, outcome).Inc()
	nodesExpandedTotal.WithLabelValues(name).Add(float64(res.Metrics.NodesExpanded))
	frontierPeak.WithLabelValues(name).Observe(float64(res.Metrics.MaxFrontier))
	searchDuration.WithLabelValues(name).Observe(elapsed.Seconds())
	if res.Found {
		pathLength.WithLabelValues(name).Observe(float64(len(res.Path) - 1))
	}
}
