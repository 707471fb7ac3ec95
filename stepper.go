package mazesearch

import (
	"container/heap"
	"fmt"
)

// StepSnapshot exposes the per-iteration state of a stepped search.
type StepSnapshot struct {
	// Current is the state expanded (or found to be the goal) by this step.
	// Zero-valued when the step only discovered that the frontier is empty.
	Current   State
	Open      map[State]bool
	Closed    map[State]bool
	Done      bool
	Found     bool
	Path      []State
	StepIndex int
	Metrics   Metrics
}

// Stepper drives a single search one expansion at a time, with the same
// semantics as Search. Useful for debugging tools that want to watch the
// frontier evolve.
type Stepper struct {
	grid  *Grid
	strat strategy
	opts  Options

	openSet  frontier
	explored map[State]struct{}
	gScores  map[State]float64
	seq      uint64

	metrics Metrics
	steps   int
	done    bool
	found   bool
	path    []State
}

// NewStepper prepares a stepped search of the given variant from start.
func NewStepper(grid *Grid, variant Variant, start State, options ...Option) *Stepper {
	opts := Options{}
	for _, option := range options {
		option(&opts)
	}
	if !grid.inBounds(start.Cell) {
		panic(fmt.Sprintf("mazesearch: start cell %v outside %dx%d grid", start.Cell, grid.size, grid.size))
	}

	s := &Stepper{
		grid:     grid,
		strat:    variant.strategy(),
		opts:     opts,
		openSet:  make(frontier, 0, 64),
		explored: make(map[State]struct{}),
	}
	if s.strat.trackCost {
		s.gScores = map[State]float64{start: 0}
	}
	heap.Init(&s.openSet)
	s.push(&node{state: start, h: s.strat.heuristic(grid, start)})
	return s
}

func (s *Stepper) push(n *node) {
	if n.g < 0 || n.h < 0 {
		panic(fmt.Sprintf("mazesearch: negative cost g=%v h=%v for state %v", n.g, n.h, n.state))
	}
	n.priority = s.strat.priority(n)
	n.seq = s.seq
	s.seq++
	heap.Push(&s.openSet, n)
}

// Done reports whether the search has finished, successfully or not.
func (s *Stepper) Done() bool { return s.done }

// Metrics returns the counters accumulated so far.
func (s *Stepper) Metrics() Metrics { return s.metrics }

// Path returns the final path once the goal was reached, nil otherwise.
func (s *Stepper) Path() []State { return s.path }

// Step advances the search by one node expansion and returns a snapshot.
// Stale frontier duplicates are skipped inside a single call, so each
// returned snapshot reflects real work. Once the search is done further
// calls return the terminal snapshot unchanged.
func (s *Stepper) Step() (StepSnapshot, error) {
	if s.done {
		return s.snapshot(State{}), nil
	}

	for s.openSet.Len() > 0 {
		if s.openSet.Len() > s.metrics.MaxFrontier {
			s.metrics.MaxFrontier = s.openSet.Len()
		}

		current := heap.Pop(&s.openSet).(*node)

		if s.grid.IsGoal(current.state.Cell) {
			s.done = true
			s.found = true
			s.path = pathTo(current)
			s.steps++
			return s.snapshot(current.state), nil
		}
		if _, seen := s.explored[current.state]; seen {
			continue
		}
		if s.opts.MaxExpansions > 0 && s.metrics.NodesExpanded >= s.opts.MaxExpansions {
			s.done = true
			return s.snapshot(current.state), ErrExpansionLimit
		}
		s.explored[current.state] = struct{}{}
		s.metrics.NodesExpanded++
		s.steps++

		for _, cell := range s.grid.Successors(current.state.Cell) {
			next := s.grid.StateAt(cell)
			if s.strat.trackCost {
				tentative := current.g + s.grid.StepCost(current.state.Cell, cell)
				if best, known := s.gScores[next]; !known || tentative < best {
					s.gScores[next] = tentative
					s.push(&node{state: next, parent: current, g: tentative, h: s.strat.heuristic(s.grid, next)})
				}
			} else if _, seen := s.explored[next]; !seen {
				s.push(&node{state: next, parent: current, h: s.strat.heuristic(s.grid, next)})
			}
		}
		return s.snapshot(current.state), nil
	}

	// Frontier exhausted without reaching the goal.
	s.done = true
	return s.snapshot(State{}), nil
}

func (s *Stepper) snapshot(current State) StepSnapshot {
	open := make(map[State]bool, s.openSet.Len())
	for _, n := range s.openSet {
		open[n.state] = true
	}
	closed := make(map[State]bool, len(s.explored))
	for st := range s.explored {
		closed[st] = true
	}
	var path []State
	if s.found {
		path = append(path, s.path...)
	}
	return StepSnapshot{
		Current:   current,
		Open:      open,
		Closed:    closed,
		Done:      s.done,
		Found:     s.found,
		Path:      path,
		StepIndex: s.steps,
		Metrics:   s.metrics,
	}
}
