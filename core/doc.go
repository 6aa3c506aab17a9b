// Package core provides the in-memory weighted Graph used by every search
// package in pathfind.
//
// The Graph G = (V, A) stores:
//
//   - Nodes keyed by an opaque, non-empty string ID.
//   - An optional planar Position (X, Y) per node, read only by heuristics.
//   - Ordered outgoing arcs per node: adjacency[from] = []Arc{{To, Weight}, …}.
//     Insertion order is preserved; parallel arcs are allowed.
//
// Construction rules:
//
//	– AddNode(id, x, y)
//	    Inserts the node or overwrites its position. Existing arcs are kept.
//
//	– AddEdge(from, to, weight, opts...)
//	    Auto-creates missing endpoints at (0,0), then appends from→to and,
//	    unless WithOneWay() is given, the mirror arc to→from. Adding the same
//	    edge twice yields two parallel arcs.
//
//	– Weights must be finite and non-negative (ErrBadWeight, ErrNegativeWeight).
//	  WithUncheckedWeights() restores the permissive behavior for callers that
//	  validate upstream; Dijkstra and A* results are undefined on negative arcs.
//
// Queries:
//
//	Neighbors(id)   // outgoing arcs, empty for an unknown node (not an error)
//	HasNode(id)     // O(1)
//	Position(id)    // (Position, ok)
//	Nodes()         // sorted IDs, deterministic
//	NodeCount(), ArcCount()
//
// Concurrency:
//
//   - All methods are guarded by a single sync.RWMutex.
//   - Searches only read the graph, so one Graph may back many concurrent
//     searches. Mutating a graph while a search runs over it is unsupported.
//
// Complexity:
//
//   - AddNode, AddEdge, HasNode, Position, Neighbors: O(1) amortized.
//   - Nodes: O(V log V) for sorting.
package core
