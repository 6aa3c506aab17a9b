// Package dijkstra implements uniform-cost search (Dijkstra's algorithm) over
// a *core.Graph with non-negative arc weights.
//
// Overview:
//
//   - ShortestPath finds a minimum-weight path between two nodes and stops as
//     soon as the target is finalized (early termination).
//   - Distances runs the same loop without a target and reports the
//     single-source distance table.
//   - Both rely on frontier.Frontier: a (key, id) min-heap whose equal-key
//     ties are broken by the lexicographically smaller node ID, so equal-cost
//     paths always resolve the same way.
//
// Lazy decrease-key:
//
//   - Every improvement pushes a new entry; superseded entries stay in the
//     heap and are skipped when popped because their node is already visited.
//
// Results:
//
//   - (*route.Result, nil): path found; Algorithm is route.Dijkstra.
//   - (nil, nil): start or end absent from the graph, or end unreachable.
//     This is a normal outcome, not an error.
//   - (nil, ErrNilGraph): the graph pointer is nil.
//
// Negative weights:
//
//   - core.Graph rejects them by default. Graphs built WithUncheckedWeights()
//     may contain them; results on such graphs are undefined.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (distance/predecessor tables, O(E) heap entries).
//
// Thread safety:
//
//   - Each call owns its tables and frontier. Concurrent calls on one graph
//     are safe as long as the graph is not mutated.
package dijkstra
