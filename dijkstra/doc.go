// Package dijkstra computes single-source shortest distances over a
// core.Graph whose edge weights are non-negative.
//
// Overview:
//
//   - Dijkstra(g, Source(id)) returns a map from every vertex reachable
//     from id (id included) to the minimum total edge weight of a path to it.
//   - Vertices that cannot be reached are absent from the map. There is no
//     "infinity" value in the result.
//   - A source that the graph has never seen yields {id: 0}.
//
// Algorithm:
//
//   - A binary min-heap keyed by tentative distance drives relaxation.
//   - Improvements push a new (vertex, distance) entry instead of updating
//     the heap in place ("lazy deletion"). When an entry is popped whose
//     distance is greater than the best recorded one it is stale and is
//     skipped.
//   - Ties between equal distances are broken by heap order. Ties never
//     change the final distances, only the order in which vertices settle.
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E), the heap may hold one entry per successful relaxation.
//
// Options:
//
//   - Source(id):         starting vertex, required.
//   - WithMaxDistance(d): leave out vertices farther than d (d ≥ 0).
//
// Errors (sentinel):
//
//   - ErrEmptySource if no source was given.
//   - ErrNilGraph    if g is nil.
//
// Example usage:
//
//	dist, err := dijkstra.Dijkstra(g, dijkstra.Source("BBA"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(dist["SCL"])
package dijkstra
