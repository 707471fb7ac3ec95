package mazesearch

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"
)

func validatePath(t *testing.T, grid *Grid, path []State) {
	t.Helper()
	if len(path) == 0 {
		t.Fatal("path is empty")
	}
	if path[0].Cell != grid.Start() {
		t.Errorf("path starts at %v, want %v", path[0].Cell, grid.Start())
	}
	if path[len(path)-1].Cell != grid.Goal() {
		t.Errorf("path ends at %v, want %v", path[len(path)-1].Cell, grid.Goal())
	}
	for i, st := range path {
		if grid.IsObstacle(st.Cell) {
			t.Errorf("path visits obstacle %v", st.Cell)
		}
		if st.Distances != grid.FeatureVector(st.Cell) {
			t.Errorf("state %v carries distances %+v, grid says %+v", st.Cell, st.Distances, grid.FeatureVector(st.Cell))
		}
		if i == 0 {
			continue
		}
		dr := st.Cell.Row - path[i-1].Cell.Row
		dc := st.Cell.Col - path[i-1].Cell.Col
		if dr < 0 {
			dr = -dr
		}
		if dc < 0 {
			dc = -dc
		}
		if dr+dc != 1 {
			t.Errorf("path cells %v and %v are not 4-adjacent", path[i-1].Cell, st.Cell)
		}
	}
}

func TestAllVariantsFindPath(t *testing.T) {
	for _, size := range []int{2, 3, 8} {
		grid, err := Generate(size, 0, 1)
		if err != nil {
			t.Fatal(err)
		}
		for _, v := range Variants {
			t.Run(v.String(), func(t *testing.T) {
				res, err := Search(context.Background(), grid, v, grid.StartState())
				if err != nil {
					t.Fatal(err)
				}
				if !res.Found {
					t.Fatalf("no path on an obstacle-free %dx%d grid", size, size)
				}
				validatePath(t, grid, res.Path)
				if res.Metrics.NodesExpanded < 1 {
					t.Errorf("NodesExpanded = %d, want >= 1", res.Metrics.NodesExpanded)
				}
				if res.Metrics.MaxFrontier < 1 {
					t.Errorf("MaxFrontier = %d, want >= 1", res.Metrics.MaxFrontier)
				}
			})
		}
	}
}

func TestAStarOptimalOnOpenGrid(t *testing.T) {
	for _, size := range []int{2, 4, 9} {
		grid, err := Generate(size, 0, 1)
		if err != nil {
			t.Fatal(err)
		}
		astar, err := AStarSearch(context.Background(), grid, grid.StartState())
		if err != nil {
			t.Fatal(err)
		}
		ucs, err := UniformCostSearch(context.Background(), grid, grid.StartState())
		if err != nil {
			t.Fatal(err)
		}
		wantSteps := 2 * (size - 1)
		if got := len(astar.Path) - 1; got != wantSteps {
			t.Errorf("size %d: A* path has %d steps, want %d", size, got, wantSteps)
		}
		if got := len(ucs.Path) - 1; got != wantSteps {
			t.Errorf("size %d: UCS path has %d steps, want %d", size, got, wantSteps)
		}
		if astar.TotalCost != float64(wantSteps) {
			t.Errorf("size %d: A* cost %v, want %v", size, astar.TotalCost, float64(wantSteps))
		}
	}
}

func TestSearchWalledOffGoal(t *testing.T) {
	grid := mustParse(t, []string{
		"...",
		"..#",
		".#.",
	})
	for _, v := range Variants {
		t.Run(v.String(), func(t *testing.T) {
			res, err := Search(context.Background(), grid, v, grid.StartState())
			if err != nil {
				t.Fatalf("unreachable goal must not be an error, got %v", err)
			}
			if res.Found {
				t.Fatalf("found a path through a walled-off goal: %v", res.Path)
			}
			if res.Path != nil {
				t.Errorf("Path = %v on a failed search, want nil", res.Path)
			}
			if res.Metrics.NodesExpanded <= 0 {
				t.Errorf("NodesExpanded = %d on failure, want > 0", res.Metrics.NodesExpanded)
			}
			if res.Metrics.MaxFrontier < 1 {
				t.Errorf("MaxFrontier = %d on failure, want >= 1", res.Metrics.MaxFrontier)
			}
		})
	}
}

func TestSearchStartIsGoal(t *testing.T) {
	grid, err := Generate(1, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	res, err := AStarSearch(context.Background(), grid, grid.StartState())
	if err != nil {
		t.Fatal(err)
	}
	if !res.Found || len(res.Path) != 1 {
		t.Fatalf("Result = %+v, want the single-state path", res)
	}
	if res.TotalCost != 0 {
		t.Errorf("TotalCost = %v, want 0", res.TotalCost)
	}
	if res.Metrics.NodesExpanded != 0 {
		t.Errorf("NodesExpanded = %d, want 0 when start == goal", res.Metrics.NodesExpanded)
	}
}

func TestSearchDeterministic(t *testing.T) {
	for _, v := range Variants {
		t.Run(v.String(), func(t *testing.T) {
			grid, err := Generate(10, 0.3, 21)
			if err != nil {
				t.Fatal(err)
			}
			first, err := Search(context.Background(), grid, v, grid.StartState())
			if err != nil {
				t.Fatal(err)
			}
			second, err := Search(context.Background(), grid, v, grid.StartState())
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(first, second) {
				t.Errorf("two runs over the same grid disagree:\n%+v\n%+v", first, second)
			}
		})
	}
}

func TestSearchSeedReproducibility(t *testing.T) {
	a, err := Generate(10, 0.3, 5)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(10, 0.3, 5)
	if err != nil {
		t.Fatal(err)
	}
	resA, err := AStarSearch(context.Background(), a, a.StartState())
	if err != nil {
		t.Fatal(err)
	}
	resB, err := AStarSearch(context.Background(), b, b.StartState())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(resA, resB) {
		t.Errorf("identical seeds produced different search outcomes:\n%+v\n%+v", resA, resB)
	}
}

func TestExpansionLimit(t *testing.T) {
	grid, err := Generate(10, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	res, err := AStarSearch(context.Background(), grid, grid.StartState(), WithMaxExpansions(1))
	if !errors.Is(err, ErrExpansionLimit) {
		t.Fatalf("err = %v, want ErrExpansionLimit", err)
	}
	if res.Found {
		t.Error("Found = true after hitting the expansion limit")
	}
	if res.Metrics.NodesExpanded != 1 {
		t.Errorf("NodesExpanded = %d, want 1", res.Metrics.NodesExpanded)
	}
}

func TestSearchCancelledContext(t *testing.T) {
	grid, err := Generate(10, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := AStarSearch(ctx, grid, grid.StartState())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if res.Found {
		t.Error("Found = true on a cancelled search")
	}
}

func TestCompareVariants(t *testing.T) {
	grid, err := Generate(8, 0.2, 17)
	if err != nil {
		t.Fatal(err)
	}
	results := Compare(context.Background(), grid, grid.StartState(), Variants[:])
	if len(results) != len(Variants) {
		t.Fatalf("got %d results, want %d", len(results), len(Variants))
	}
	for i, r := range results {
		if r.Variant != Variants[i] {
			t.Errorf("result %d is for %v, want %v", i, r.Variant, Variants[i])
		}
		if r.Err != nil {
			t.Errorf("%v: unexpected error %v", r.Variant, r.Err)
		}
		// Concurrent runs must match the serial ones exactly.
		serial, err := Search(context.Background(), grid, r.Variant, grid.StartState())
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(r.Result, serial) {
			t.Errorf("%v: concurrent result differs from serial:\n%+v\n%+v", r.Variant, r.Result, serial)
		}
	}
}

func TestGreedyHeuristic(t *testing.T) {
	grid, err := Generate(3, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	// (0,0) on an open 3x3: Manhattan 4, distances (0,2,2,0), so the
	// penalty is 1 + 1/3 + 1/3 + 1 = 8/3.
	want := 4 + 0.5*(8.0/3.0)
	got := greedyHeuristic(grid, grid.StartState())
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("greedyHeuristic = %v, want %v", got, want)
	}
}

func TestFrontierTieBreakFIFO(t *testing.T) {
	a := &node{priority: 1, seq: 0}
	b := &node{priority: 1, seq: 1}
	c := &node{priority: 0.5, seq: 2}
	f := frontier{a, b, c}
	if !f.Less(2, 0) {
		t.Error("lower priority must win regardless of sequence")
	}
	if !f.Less(0, 1) || f.Less(1, 0) {
		t.Error("equal priorities must order by insertion sequence")
	}
}

func TestParseVariant(t *testing.T) {
	for _, v := range Variants {
		got, err := ParseVariant(v.String())
		if err != nil {
			t.Errorf("ParseVariant(%q): %v", v.String(), err)
		}
		if got != v {
			t.Errorf("ParseVariant(%q) = %v, want %v", v.String(), got, v)
		}
	}
	if _, err := ParseVariant("dijkstra"); err == nil {
		t.Error("ParseVariant accepted an unknown name")
	}
}
