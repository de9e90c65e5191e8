package graphs

import "sort"

// InducedSubgraph returns the subgraph of g on the given node set: every
// listed node that exists in g is kept, and an edge survives iff both of
// its endpoints are kept. Unknown IDs are ignored.
//
// Complexity: O(V + E) time, O(V + E) memory.
func InducedSubgraph(g *Digraph, ids []int) *Digraph {
	keep := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if g.HasNode(id) {
			keep[id] = struct{}{}
		}
	}

	sub := NewDigraph()
	for id := range keep {
		sub.AddNode(id)
	}
	for from, tos := range g.succ {
		if _, ok := keep[from]; !ok {
			continue
		}
		for to, mult := range tos {
			if _, ok := keep[to]; !ok {
				continue
			}
			for i := 0; i < mult; i++ {
				sub.AddEdge(from, to)
			}
		}
	}

	return sub
}

// WeaklyConnectedComponents partitions g into its weakly-connected
// components: maximal node sets mutually reachable when edge direction is
// ignored. Each component is sorted ascending, and components are ordered
// by their smallest member, so output is fully deterministic.
//
// Complexity: O(V + E) time, O(V) memory.
func WeaklyConnectedComponents(g *Digraph) [][]int {
	seen := make(map[int]struct{}, len(g.nodes))
	var comps [][]int

	for _, start := range g.Nodes() {
		if _, ok := seen[start]; ok {
			continue
		}
		// BFS to collect the component, direction-blind.
		queue := []int{start}
		seen[start] = struct{}{}
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, v := range g.Neighbors(u) {
				if _, ok := seen[v]; !ok {
					seen[v] = struct{}{}
					queue = append(queue, v)
				}
			}
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}

	return comps
}
