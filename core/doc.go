// Package core provides the in-memory route graph consumed by the
// shortest-path engine.
//
// The Graph G = (V,E) is a directed multigraph stored as an adjacency list:
//
//	adjacency[from] = []Edge{{To: to, Weight: w}, ...}
//
// Vertices are airport codes. They are created implicitly the first time
// they are named as a source or a destination and are never removed, so
// every vertex reachable by traversal has an entry in the adjacency map
// (possibly with an empty edge list).
//
// Core Methods:
//
//	AddEdge(from, to string, weight int64) error // O(1) amortized
//	HasVertex(id string) bool                    // O(1)
//	Neighbors(id string) []Edge                  // O(d), copy of the list
//	EachNeighbor(id string, fn func(Edge))       // O(d), no copy
//	Vertices() []string                          // O(V·log V), sorted
//	VertexCount() int                            // O(1)
//	EdgeCount() int                              // O(1)
//	Edges(fn func(from string, e Edge) bool)     // O(V·log V + E)
//
// Parallel edges are kept: adding A→B twice stores two edges, and the
// shortest-path engine naturally relaxes through the lighter one.
//
// Graph is not safe for concurrent mutation. It is built once by a single
// ingestion pass and treated as read-only afterwards.
package core
