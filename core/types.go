package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a source or destination ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrNegativeWeight indicates an attempt to store an edge with weight < 0.
	// Shortest-path relaxation is only valid for non-negative weights.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Edge is an outgoing connection stored in its source vertex's adjacency list.
//
// An Edge carries no back-reference to its source; ownership belongs to the
// list it lives in. Edges are values and are never modified after insertion.
type Edge struct {
	// To is the destination vertex ID.
	To string

	// Weight is the non-negative cost of travelling along the edge.
	Weight int64
}

// Graph is a directed, weighted multigraph keyed by vertex ID.
//
// adjacency maps each known vertex to its outgoing edges in insertion order.
// edgeCount tracks the total number of stored edges, parallel edges included.
type Graph struct {
	adjacency map[string][]Edge
	edgeCount int
}

// NewGraph returns an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[string][]Edge),
	}
}
