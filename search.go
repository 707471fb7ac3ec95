package mazesearch

import (
	"container/heap"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Variant selects which instantiation of the search engine runs.
type Variant int

const (
	// BestFirst orders the frontier by the Manhattan heuristic alone and
	// never tracks path cost. Fast, not optimal.
	BestFirst Variant = iota
	// AStar orders by accumulated cost plus the Manhattan heuristic.
	// Optimal here because step cost is uniform and Manhattan never
	// overestimates on a 4-connected grid.
	AStar
	// GreedyBestFirst orders by Manhattan plus an obstacle-proximity
	// penalty derived from the state's feature vector. Exploratory, not
	// optimal.
	GreedyBestFirst
	// UniformCost orders by accumulated cost alone; equivalent to AStar
	// with an always-zero heuristic.
	UniformCost
)

// Variants lists all four instantiations in a fixed order.
var Variants = [4]Variant{BestFirst, AStar, GreedyBestFirst, UniformCost}

func (v Variant) String() string {
	switch v {
	case BestFirst:
		return "best-first"
	case AStar:
		return "astar"
	case GreedyBestFirst:
		return "greedy"
	case UniformCost:
		return "uniform-cost"
	}
	return fmt.Sprintf("variant(%d)", int(v))
}

// ParseVariant maps a name (as printed by String, plus a few aliases) back
// to a Variant.
func ParseVariant(name string) (Variant, error) {
	switch name {
	case "best-first", "bestfirst", "bfs":
		return BestFirst, nil
	case "astar", "a*":
		return AStar, nil
	case "greedy", "greedy-best-first":
		return GreedyBestFirst, nil
	case "uniform-cost", "ucs":
		return UniformCost, nil
	}
	return 0, fmt.Errorf("unknown search variant %q", name)
}

// Metrics counts the work a single search did. It is populated whether or
// not a path was found.
type Metrics struct {
	// NodesExpanded is the number of states popped and processed.
	NodesExpanded int
	// MaxFrontier is the largest frontier size observed at the top of an
	// iteration.
	MaxFrontier int
}

// Result is the outcome of one search.
type Result struct {
	// Path runs from the start state to the goal state inclusive. Nil when
	// Found is false.
	Path      []State
	TotalCost float64
	Found     bool
	Metrics   Metrics
}

// ErrExpansionLimit is returned when a search exceeds the cap set with
// WithMaxExpansions.
var ErrExpansionLimit = errors.New("expansion limit reached")

// Options defines parameters for the search.
type Options struct {
	// MaxExpansions bounds how many nodes a search may expand; 0 means
	// unlimited. An extension point for large or dense grids, not part of
	// the core contract.
	MaxExpansions int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithMaxExpansions caps the number of node expansions before the search
// gives up with ErrExpansionLimit.
func WithMaxExpansions(n int) Option {
	return func(options *Options) { options.MaxExpansions = n }
}

// strategy is what distinguishes the four variants: the heuristic, the
// priority key, and whether accumulated cost is tracked and improved.
type strategy struct {
	trackCost bool
	heuristic func(*Grid, State) float64
	priority  func(*node) float64
}

func (v Variant) strategy() strategy {
	switch v {
	case BestFirst:
		return strategy{
			heuristic: manhattanHeuristic,
			priority:  func(n *node) float64 { return n.h },
		}
	case AStar:
		return strategy{
			trackCost: true,
			heuristic: manhattanHeuristic,
			priority:  (*node).fCost,
		}
	case GreedyBestFirst:
		return strategy{
			heuristic: greedyHeuristic,
			priority:  func(n *node) float64 { return n.h },
		}
	case UniformCost:
		return strategy{
			trackCost: true,
			heuristic: zeroHeuristic,
			priority:  func(n *node) float64 { return n.g },
		}
	}
	panic(fmt.Sprintf("mazesearch: unknown variant %d", int(v)))
}

func manhattanHeuristic(g *Grid, s State) float64 { return g.Manhattan(s.Cell) }

func zeroHeuristic(*Grid, State) float64 { return 0 }

// greedyHeuristic adds an obstacle-proximity penalty to the Manhattan
// distance: each direction contributes 1/(distance+1), so hugging obstacles
// raises the estimate.
func greedyHeuristic(g *Grid, s State) float64 {
	d := s.Distances
	penalty := 0.0
	for _, dist := range [4]int{d.Up, d.Right, d.Down, d.Left} {
		penalty += 1.0 / float64(dist+1)
	}
	return g.Manhattan(s.Cell) + 0.5*penalty
}

// Search runs the given variant from start on grid. The returned error is
// nil both when a path is found and when the goal is unreachable; an
// unreachable goal is reported through Result.Found with Metrics intact.
// Errors are reserved for context cancellation and the expansion limit.
func Search(ctx context.Context, grid *Grid, variant Variant, start State, options ...Option) (Result, error) {
	searchOptions := Options{}
	for _, option := range options {
		option(&searchOptions)
	}
	if !grid.inBounds(start.Cell) {
		panic(fmt.Sprintf("mazesearch: start cell %v outside %dx%d grid", start.Cell, grid.size, grid.size))
	}
	return runSearch(ctx, grid, variant.strategy(), start, searchOptions)
}

// BestFirstSearch runs the Best-First variant. See Search.
func BestFirstSearch(ctx context.Context, grid *Grid, start State, options ...Option) (Result, error) {
	return Search(ctx, grid, BestFirst, start, options...)
}

// AStarSearch runs the A* variant. See Search.
func AStarSearch(ctx context.Context, grid *Grid, start State, options ...Option) (Result, error) {
	return Search(ctx, grid, AStar, start, options...)
}

// GreedyBestFirstSearch runs the Greedy Best-First variant. See Search.
func GreedyBestFirstSearch(ctx context.Context, grid *Grid, start State, options ...Option) (Result, error) {
	return Search(ctx, grid, GreedyBestFirst, start, options...)
}

// UniformCostSearch runs the Uniform-Cost variant. See Search.
func UniformCostSearch(ctx context.Context, grid *Grid, start State, options ...Option) (Result, error) {
	return Search(ctx, grid, UniformCost, start, options...)
}

func runSearch(ctx context.Context, grid *Grid, st strategy, start State, o Options) (Result, error) {
	var metrics Metrics
	var seq uint64

	openSet := make(frontier, 0, 64)
	heap.Init(&openSet)
	push := func(n *node) {
		if n.g < 0 || n.h < 0 {
			panic(fmt.Sprintf("mazesearch: negative cost g=%v h=%v for state %v", n.g, n.h, n.state))
		}
		n.priority = st.priority(n)
		n.seq = seq
		seq++
		heap.Push(&openSet, n)
	}
	push(&node{state: start, h: st.heuristic(grid, start)})

	explored := make(map[State]struct{})
	var gScores map[State]float64
	if st.trackCost {
		gScores = map[State]float64{start: 0}
	}

	for openSet.Len() > 0 {
		if openSet.Len() > metrics.MaxFrontier {
			metrics.MaxFrontier = openSet.Len()
		}
		select {
		case <-ctx.Done():
			return Result{Metrics: metrics}, ctx.Err()
		default:
		}

		current := heap.Pop(&openSet).(*node)

		if grid.IsGoal(current.state.Cell) {
			path := pathTo(current)
			return Result{
				Path:      path,
				TotalCost: pathCost(grid, path),
				Found:     true,
				Metrics:   metrics,
			}, nil
		}

		// Stale duplicate from an earlier, costlier push.
		if _, seen := explored[current.state]; seen {
			continue
		}
		if o.MaxExpansions > 0 && metrics.NodesExpanded >= o.MaxExpansions {
			return Result{Metrics: metrics}, ErrExpansionLimit
		}
		explored[current.state] = struct{}{}
		metrics.NodesExpanded++

		for _, cell := range grid.Successors(current.state.Cell) {
			next := grid.StateAt(cell)
			if st.trackCost {
				stepCost := grid.StepCost(current.state.Cell, cell)
				if stepCost < 0 {
					panic(fmt.Sprintf("mazesearch: negative step cost %v from %v to %v", stepCost, current.state.Cell, cell))
				}
				tentative := current.g + stepCost
				if best, known := gScores[next]; !known || tentative < best {
					gScores[next] = tentative
					push(&node{
						state:  next,
						parent: current,
						g:      tentative,
						h:      st.heuristic(grid, next),
					})
				}
			} else if _, seen := explored[next]; !seen {
				push(&node{
					state:  next,
					parent: current,
					h:      st.heuristic(grid, next),
				})
			}
		}
	}

	// Frontier exhausted: the goal is unreachable. Not an error.
	return Result{Metrics: metrics}, nil
}

// pathCost sums StepCost along consecutive pairs of the path.
func pathCost(grid *Grid, path []State) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += grid.StepCost(path[i-1].Cell, path[i].Cell)
	}
	return total
}

// VariantResult pairs one variant with its outcome in a Compare run.
type VariantResult struct {
	Variant Variant
	Result  Result
	Err     error
	Elapsed time.Duration
}

// Compare runs each variant in its own goroutine over the same grid and
// start state. The grid is read-only during search, so sharing it is safe;
// every search still owns its frontier and explored set exclusively.
// Results come back in the order the variants were given.
func Compare(ctx context.Context, grid *Grid, start State, variants []Variant, options ...Option) []VariantResult {
	results := make([]VariantResult, len(variants))
	var wg sync.WaitGroup
	for i, v := range variants {
		wg.Add(1)
		go func(i int, v Variant) {
			defer wg.Done()
			started := time.Now()
			res, err := Search(ctx, grid, v, start, options...)
			results[i] = VariantResult{Variant: v, Result: res, Err: err, Elapsed: time.Since(started)}
		}(i, v)
	}
	wg.Wait()
	return results
}
