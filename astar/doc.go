// Package astar implements guided shortest-path search (A*) over a *core.Graph.
//
// Nodes are expanded in order of f = g + h, where g is the accumulated cost
// from the start and h is a heuristic estimate of the remaining cost
// (heuristic.KindEuclidean or heuristic.KindManhattan).
//
// Bookkeeping:
//
//   - gScore / fScore tables, missing entries meaning +∞.
//   - An open set: nodes currently eligible for expansion.
//   - A closed set: nodes already expanded, never expanded again.
//   - A frontier.Frontier keyed by fScore with lexicographic ID tie-break.
//
// Lazy invalidation:
//
//   - Every improvement of a non-closed node pushes a fresh (f, id) entry.
//     Older entries for the same node stay in the heap; when one of them is
//     popped after the node has left the open set it is skipped as stale.
//
// Results:
//
//   - (*route.Result, nil): path found; Algorithm is "astar_<heuristic>".
//   - (nil, nil): start or end absent, or the frontier drained without
//     reaching end.
//   - (nil, heuristic.ErrInvalidHeuristic): unknown selector; no search runs.
//   - (nil, ErrNilGraph): nil graph.
//
// Optimality:
//
//   - Guaranteed when h is admissible and consistent. Euclidean is admissible
//     whenever every arc weight is at least the straight-line distance between
//     its endpoints; this is the caller's responsibility and is not checked.
//   - Nodes without a recorded position get h = 0 (see package heuristic).
//
// Complexity:
//
//   - Time:  O((V + E) log V) worst case; usually far fewer expansions than
//     dijkstra when h is informative.
//   - Space: O(V + E).
package astar
