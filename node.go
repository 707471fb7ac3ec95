package mazesearch

// node is a frontier entry. Parent links only point backward toward the
// root, so the nodes of one search form a tree rooted at the start node.
type node struct {
	state    State
	parent   *node
	g        float64 // accumulated path cost from the start
	h        float64 // heuristic estimate to the goal
	priority float64 // the variant's key: h, g+h or g
	seq      uint64  // insertion order, breaks priority ties
	index    int
}

// fCost is the classic A* key, derived rather than stored.
func (n *node) fCost() float64 { return n.g + n.h }

// frontier is a min-heap over priority. Ties break by insertion sequence,
// so equal-key pops come out FIFO and runs are reproducible.
type frontier []*node

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
	f[i].index = i
	f[j].index = j
}

func (f *frontier) Push(x any) {
	n := x.(*node)
	n.index = len(*f)
	*f = append(*f, n)
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*f = old[:n-1]
	return item
}

// pathTo walks parent links from n back to the root and reverses, so the
// result runs start to goal. It never mutates the nodes it visits.
func pathTo(n *node) []State {
	path := make([]State, 0, 16)
	for ; n != nil; n = n.parent {
		path = append(path, n.state)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
