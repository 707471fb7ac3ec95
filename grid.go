package mazesearch

import (
	"fmt"
	"math/rand"
	"strings"
)

// successorOffsets enumerates neighbor offsets in the fixed expansion order:
// right, down, left, up. Explored-set insertion order, and therefore
// tie-break behavior, depends on this order staying stable.
var successorOffsets = [4]Cell{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// Grid is a square obstacle maze. It is immutable after construction, so it
// may be shared read-only across concurrent searches.
type Grid struct {
	size      int
	obstacles []bool // row-major, true = blocked
	start     Cell
	goal      Cell
}

// Generate builds a size x size grid with floor(size*size*obstacleRatio)
// obstacles placed uniformly without replacement, never on the start (0,0)
// or the goal (size-1,size-1) corner. The placement count is capped at
// size*size-2 so a ratio of 1 stays legal: every other cell fills up and the
// goal is simply unreachable.
//
// The same seed always reproduces the same obstacle set.
func Generate(size int, obstacleRatio float64, seed int64) (*Grid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("grid size must be positive, got %d", size)
	}
	if obstacleRatio < 0 || obstacleRatio > 1 {
		return nil, fmt.Errorf("obstacle ratio must be in [0,1], got %v", obstacleRatio)
	}

	g := &Grid{
		size:      size,
		obstacles: make([]bool, size*size),
		start:     Cell{0, 0},
		goal:      Cell{size - 1, size - 1},
	}

	count := int(float64(size*size) * obstacleRatio)
	if free := size*size - 2; count > free {
		if free < 0 {
			free = 0
		}
		count = free
	}

	rng := rand.New(rand.NewSource(seed))
	for placed := 0; placed < count; {
		c := Cell{rng.Intn(size), rng.Intn(size)}
		if c == g.start || c == g.goal || g.obstacles[g.index(c)] {
			continue
		}
		g.obstacles[g.index(c)] = true
		placed++
	}
	return g, nil
}

// ParseGrid builds a grid from an ASCII layout, one string per row, where
// '#' marks an obstacle and any other byte a free cell. The layout must be
// square and leave the start and goal corners free. Useful for tests and
// hand-authored scenarios; the inverse of String.
func ParseGrid(rows []string) (*Grid, error) {
	size := len(rows)
	if size == 0 {
		return nil, fmt.Errorf("grid layout is empty")
	}
	g := &Grid{
		size:      size,
		obstacles: make([]bool, size*size),
		start:     Cell{0, 0},
		goal:      Cell{size - 1, size - 1},
	}
	for r, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("row %d has %d cells, want %d", r, len(row), size)
		}
		for c := 0; c < size; c++ {
			if row[c] == '#' {
				g.obstacles[r*size+c] = true
			}
		}
	}
	if g.obstacles[g.index(g.start)] {
		return nil, fmt.Errorf("start cell %v must be free", g.start)
	}
	if g.obstacles[g.index(g.goal)] {
		return nil, fmt.Errorf("goal cell %v must be free", g.goal)
	}
	return g, nil
}

// Size returns the grid's side length.
func (g *Grid) Size() int { return g.size }

// Start returns the start corner (0,0).
func (g *Grid) Start() Cell { return g.start }

// Goal returns the goal corner (size-1,size-1).
func (g *Grid) Goal() Cell { return g.goal }

func (g *Grid) index(c Cell) int { return c.Row*g.size + c.Col }

func (g *Grid) inBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

// IsObstacle reports whether c is blocked. Out-of-bounds cells are treated
// as blocked.
func (g *Grid) IsObstacle(c Cell) bool {
	return !g.inBounds(c) || g.obstacles[g.index(c)]
}

// Obstacles returns the blocked cells in row-major order. The slice is a
// fresh copy on every call; mutating it leaves the grid untouched.
func (g *Grid) Obstacles() []Cell {
	cells := make([]Cell, 0, len(g.obstacles)/4)
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if g.obstacles[r*g.size+c] {
				cells = append(cells, Cell{r, c})
			}
		}
	}
	return cells
}

// IsGoal reports whether c is the goal corner.
func (g *Grid) IsGoal(c Cell) bool { return c == g.goal }

// Successors returns the in-bounds, obstacle-free neighbors of c in the
// fixed order right, down, left, up.
func (g *Grid) Successors(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range successorOffsets {
		n := Cell{c.Row + d.Row, c.Col + d.Col}
		if g.inBounds(n) && !g.obstacles[g.index(n)] {
			out = append(out, n)
		}
	}
	return out
}

// FeatureVector counts, for each of the four directions, the consecutive
// free cells starting one step away from c before the first obstacle or the
// grid edge.
func (g *Grid) FeatureVector(c Cell) FeatureVector {
	return FeatureVector{
		Up:    g.scanFree(c, Cell{-1, 0}),
		Right: g.scanFree(c, Cell{0, 1}),
		Down:  g.scanFree(c, Cell{1, 0}),
		Left:  g.scanFree(c, Cell{0, -1}),
	}
}

func (g *Grid) scanFree(from, delta Cell) int {
	n := 0
	c := Cell{from.Row + delta.Row, from.Col + delta.Col}
	for g.inBounds(c) && !g.obstacles[g.index(c)] {
		n++
		c = Cell{c.Row + delta.Row, c.Col + delta.Col}
	}
	return n
}

// StateAt returns the full search state for c: its position plus the derived
// feature vector.
func (g *Grid) StateAt(c Cell) State {
	return State{Cell: c, Distances: g.FeatureVector(c)}
}

// StartState returns the search state of the start corner.
func (g *Grid) StartState() State { return g.StateAt(g.start) }

// Manhattan returns the Manhattan distance from c to the goal. On a
// 4-connected unit-cost grid this never overestimates the true remaining
// cost, which is what makes A* optimal here.
func (g *Grid) Manhattan(c Cell) float64 {
	dr := c.Row - g.goal.Row
	if dr < 0 {
		dr = -dr
	}
	dc := c.Col - g.goal.Col
	if dc < 0 {
		dc = -dc
	}
	return float64(dr + dc)
}

// StepCost returns the cost of moving between two adjacent cells. Every move
// costs 1 on this grid; the signature takes both endpoints so a non-uniform
// cost model can slot in without touching the engine.
func (g *Grid) StepCost(from, to Cell) float64 {
	return 1.0
}

// String renders the obstacle bitmap with 'S' and 'G' marking the start and
// goal corners, one row per line. Intended for logs and test failures.
func (g *Grid) String() string {
	var b strings.Builder
	for r := 0; r < g.size; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < g.size; c++ {
			cell := Cell{r, c}
			switch {
			case cell == g.start:
				b.WriteByte('S')
			case cell == g.goal:
				b.WriteByte('G')
			case g.obstacles[g.index(cell)]:
				b.WriteByte('#')
			default:
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
