package mazesearch

// Cell identifies a grid square by row and column, 0-indexed from the
// top-left corner. Immutable once constructed.
type Cell struct {
	Row int
	Col int
}

// FeatureVector holds, for each cardinal direction, the number of
// consecutive free cells starting one step away from a cell before the
// first obstacle or the grid edge.
type FeatureVector struct {
	Up    int
	Right int
	Down  int
	Left  int
}

// State is the search-space identity of a cell: its position plus its
// derived obstacle distances. Explored sets and cost maps key on the whole
// value, not just the Cell, so a cost or heuristic function may depend on
// the distances without breaking deduplication.
type State struct {
	Cell      Cell
	Distances FeatureVector
}
