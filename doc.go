// Package airpaths computes shortest flight-route distances from one
// airport to every airport reachable from it.
//
// What it does:
//
//	routes file ──▶ routes.Load ──▶ core.Graph ──▶ dijkstra.Dijkstra ──▶ report.Write
//
// Each route row becomes a directed edge with a random distance in
// [300, 1000] km (see package weight). The engine returns the minimum total
// distance to each reachable airport; unreachable airports are left out.
//
// Under the hood, everything is organized under small subpackages:
//
//	core/     — route multigraph (adjacency list, implicit vertices)
//	dijkstra/ — single-source shortest distances, lazy-deletion heap
//	weight/   — injectable edge-weight generators
//	routes/   — delimited route-file loader
//	report/   — plain-text distance report
//	config/   — defaults, YAML config file, validation
//	cli/      — cobra command tying it all together
//
// Quick ASCII example:
//
//	    A ──5──▶ B
//	     ╲       │
//	      10     2
//	        ╲    ▼
//	         ▶── C
//
//	from A: {A:0, B:5, C:7}; the two-hop route beats the direct one.
//
//	go install github.com/katalvlaran/airpaths/cmd/airpaths@latest
package airpaths
