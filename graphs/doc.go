// Package graphs provides a minimal directed multigraph over integer node
// IDs, plus the structural algorithms the wiring-diagram engine consumes:
// induced subgraphs and weakly-connected components.
//
// The Digraph is deliberately small: nodes are plain ints, edges carry no
// payload beyond multiplicity, and every query that surfaces a collection
// (Nodes, Neighbors, WeaklyConnectedComponents) returns sorted results for
// deterministic iteration.
//
// Core operations:
//
//	NewDigraph()                    // empty graph, O(1)
//	AddNode(id)                     // idempotent, O(1)
//	AddEdge(from, to)               // auto-adds endpoints, O(1)
//	HasNode(id) / HasEdge(from, to) // O(1)
//	Nodes() []int                   // sorted, O(V·logV)
//	Neighbors(id) []int             // sorted in∪out neighbors, O(d·logd)
//	InducedSubgraph(g, ids)         // O(V + E)
//	WeaklyConnectedComponents(g)    // BFS over undirected view, O(V + E)
//
// Errors: none. All operations are total; absent nodes simply yield empty
// results.
package graphs
