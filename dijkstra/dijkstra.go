package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/airpaths/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex
// reachable from it in g.
//
// Returns:
//
//   - dist: vertex ID → minimum cumulative weight. Contains the source
//     (distance 0) and every reachable vertex; unreachable vertices are absent.
//   - err:  ErrEmptySource or ErrNilGraph on invalid input, nil otherwise.
//
// The graph is only read. Each call builds a fresh map, so calling Dijkstra
// twice on an unmodified graph yields equal results.
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, error) {
	// 1) Build options.
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate input. Source first, then graph.
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Run.
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, g.VertexCount()),
		pq:      make(nodePQ, 0, g.VertexCount()),
	}
	r.init()
	r.process()

	return r.dist, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph      // read-only input
	options Options          // resolved configuration
	dist    map[string]int64 // best known distance; absent means +∞
	pq      nodePQ           // lazy min-heap of tentative distances
}

// init records the source at distance 0 and seeds the heap with it.
func (r *runner) init() {
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process pops the closest entry until the heap is empty. An entry whose
// distance is greater than the recorded best is stale and is skipped.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if item.dist > r.dist[item.id] {
			continue
		}
		r.relax(item.id, item.dist)
	}
}

// relax tries to improve every neighbour of u, whose distance is d.
func (r *runner) relax(u string, d int64) {
	r.g.EachNeighbor(u, func(e core.Edge) {
		// d ≤ MaxDistance, so the subtraction cannot overflow. This also keeps
		// d + e.Weight from wrapping past math.MaxInt64.
		if e.Weight > r.options.MaxDistance-d {
			return
		}
		newDist := d + e.Weight
		// Strict "<" so equal distances do not push duplicates.
		if cur, ok := r.dist[e.To]; ok && newDist >= cur {
			return
		}
		r.dist[e.To] = newDist
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: newDist})
	})
}

// nodeItem is a heap entry: a vertex and the tentative distance it was pushed with.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
