package core

import (
	"fmt"
	"sort"
)

// AddEdge appends Edge{To: to, Weight: weight} to from's adjacency list.
//
// Both endpoints are registered as vertices: from gets the new edge, to gets
// an (initially empty) list if it has never been seen. Repeated calls with the
// same arguments add parallel edges; nothing is deduplicated.
//
// Errors:
//   - ErrEmptyVertexID if from or to is "".
//   - ErrNegativeWeight if weight < 0.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if weight < 0 {
		return fmt.Errorf("%w: %s→%s weight=%d", ErrNegativeWeight, from, to, weight)
	}

	g.adjacency[from] = append(g.adjacency[from], Edge{To: to, Weight: weight})
	if _, ok := g.adjacency[to]; !ok {
		g.adjacency[to] = nil
	}
	g.edgeCount++

	return nil
}

// HasVertex reports whether id has been named as a source or destination.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.adjacency[id]

	return ok
}

// Neighbors returns a copy of id's outgoing edges in insertion order.
// Unknown vertices and vertices without outgoing edges both yield nil.
// Complexity: O(d) where d = out-degree of id.
func (g *Graph) Neighbors(id string) []Edge {
	edges := g.adjacency[id]
	if len(edges) == 0 {
		return nil
	}
	out := make([]Edge, len(edges))
	copy(out, edges)

	return out
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V·log V)
func (g *Graph) Vertices() []string {
	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of distinct vertices.
func (g *Graph) VertexCount() int { return len(g.adjacency) }

// EdgeCount returns the number of stored edges, parallel edges included.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Edges calls fn for every stored edge, visiting sources in sorted order and
// each source's edges in insertion order. Iteration stops when fn returns false.
// Complexity: O(V·log V + E)
func (g *Graph) Edges(fn func(from string, e Edge) bool) {
	for _, from := range g.Vertices() {
		for _, e := range g.adjacency[from] {
			if !fn(from, e) {
				return
			}
		}
	}
}

// EachNeighbor calls fn for each outgoing edge of id in insertion order
// without copying the adjacency list. Unknown vertices produce no calls.
func (g *Graph) EachNeighbor(id string, fn func(e Edge)) {
	for _, e := range g.adjacency[id] {
		fn(e)
	}
}
