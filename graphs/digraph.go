package graphs

import "sort"

// Digraph is a directed multigraph over integer node IDs.
//
// Storage mirrors a nested adjacency map: succ[from][to] = multiplicity.
// Parallel edges are counted, not identified; the algorithms in this
// package only ever need connectivity and degree, never edge identity.
type Digraph struct {
	nodes map[int]struct{}
	succ  map[int]map[int]int
	pred  map[int]map[int]int
	edges int
}

// NewDigraph creates an empty Digraph.
// Complexity: O(1)
func NewDigraph() *Digraph {
	return &Digraph{
		nodes: make(map[int]struct{}),
		succ:  make(map[int]map[int]int),
		pred:  make(map[int]map[int]int),
	}
}

// AddNode inserts node id. Idempotent.
// Complexity: O(1)
func (g *Digraph) AddNode(id int) {
	g.nodes[id] = struct{}{}
}

// AddEdge inserts a directed edge from → to, adding absent endpoints.
// Parallel edges accumulate multiplicity.
// Complexity: O(1)
func (g *Digraph) AddEdge(from, to int) {
	g.AddNode(from)
	g.AddNode(to)
	if g.succ[from] == nil {
		g.succ[from] = make(map[int]int)
	}
	g.succ[from][to]++
	if g.pred[to] == nil {
		g.pred[to] = make(map[int]int)
	}
	g.pred[to][from]++
	g.edges++
}

// HasNode reports whether node id exists.
func (g *Digraph) HasNode(id int) bool {
	_, ok := g.nodes[id]

	return ok
}

// HasEdge reports whether at least one edge from → to exists.
func (g *Digraph) HasEdge(from, to int) bool {
	return g.succ[from][to] > 0
}

// NodeCount returns the number of nodes. O(1).
func (g *Digraph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges, counting multiplicity. O(1).
func (g *Digraph) EdgeCount() int {
	return g.edges
}

// Nodes returns all node IDs in ascending order.
// Complexity: O(V·logV)
func (g *Digraph) Nodes() []int {
	ids := make([]int, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// Neighbors returns the sorted union of successors and predecessors of id,
// ignoring edge direction. A self-loop contributes id itself once.
// Complexity: O(d·logd)
func (g *Digraph) Neighbors(id int) []int {
	seen := make(map[int]struct{})
	for to := range g.succ[id] {
		seen[to] = struct{}{}
	}
	for from := range g.pred[id] {
		seen[from] = struct{}{}
	}
	out := make([]int, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}
