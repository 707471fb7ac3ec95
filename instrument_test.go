package mazesearch

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserve(t *testing.T) {
	grid, err := Generate(5, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	res, err := AStarSearch(context.Background(), grid, grid.StartState())
	if err != nil {
		t.Fatal(err)
	}

	foundBefore := testutil.ToFloat64(searchesTotal.WithLabelValues("astar", "found"))
	expandedBefore := testutil.ToFloat64(nodesExpandedTotal.WithLabelValues("astar"))

	Observe(AStar, res, nil, 50*time.Microsecond)

	if got := testutil.ToFloat64(searchesTotal.WithLabelValues("astar", "found")); got != foundBefore+1 {
		t.Errorf("searches_total{found} = %v, want %v", got, foundBefore+1)
	}
	want := expandedBefore + float64(res.Metrics.NodesExpanded)
	if got := testutil.ToFloat64(nodesExpandedTotal.WithLabelValues("astar")); got != want {
		t.Errorf("nodes_expanded_total = %v, want %v", got, want)
	}
}

func TestObserveOutcomes(t *testing.T) {
	noPathBefore := testutil.ToFloat64(searchesTotal.WithLabelValues("greedy", "no_path"))
	Observe(GreedyBestFirst, Result{Found: false}, nil, time.Millisecond)
	if got := testutil.ToFloat64(searchesTotal.WithLabelValues("greedy", "no_path")); got != noPathBefore+1 {
		t.Errorf("searches_total{no_path} = %v, want %v", got, noPathBefore+1)
	}

	errBefore := testutil.ToFloat64(searchesTotal.WithLabelValues("uniform-cost", "error"))
	Observe(UniformCost, Result{}, ErrExpansionLimit, time.Millisecond)
	if got := testutil.ToFloat64(searchesTotal.WithLabelValues("uniform-cost", "error")); got != errBefore+1 {
		t.Errorf("searches_total{error} = %v, want %v", got, errBefore+1)
	}
}
