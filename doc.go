// Package pathfind computes minimum-weight routes over weighted graphs
// with uniform-cost search (Dijkstra) or heuristic-guided search (A*).
//
// Layout:
//
//	core/       — Graph: adjacency lists, node positions, RW-locked
//	frontier/   — min-priority queue with (key, id) tie-break
//	heuristic/  — Euclidean and Manhattan estimates, tag parsing
//	route/      — Result record, path reconstruction, timing
//	dijkstra/   — uniform-cost search with early termination
//	astar/      — guided search with open/closed sets
//	graphio/    — JSON/YAML graph and grid input
//	gridgraph/  — occupancy grids as positioned graphs
//	config/     — viper-backed settings
//	server/     — HTTP API
//	cli/        — cobra commands behind cmd/pathfind
//
// Quick example:
//
//	    A──1──B
//	     \    │
//	      5   2
//	       \  │
//	         C
//
//	g, _ := pathfind.BuildGraph(spec)
//	res, _ := pathfind.ShortestPath(g, "A", "C") // [A B C], distance 3
//
// A search that finds nothing returns (nil, nil); errors are reserved for
// malformed input and unknown heuristic tags.
package pathfind
