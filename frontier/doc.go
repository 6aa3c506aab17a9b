// Package frontier provides the priority queue shared by the dijkstra and
// astar searches.
//
// Ordering:
//
//   - Entries are (Key, ID) pairs ordered by Key ascending.
//   - Equal keys are broken by ID, lexicographically smaller first. The order
//     is total, so pops are fully deterministic for a given push sequence.
//
// Lazy invalidation contract:
//
//   - Pop returns the globally minimal entry still stored in the heap.
//   - An entry is invalidated by a later, better Push for the same ID; the old
//     entry is NOT removed. Consumers recognise stale entries at pop time
//     (a visited set in dijkstra, an open-set flag in astar) and skip them.
//   - This replaces decrease-key: a node may be present several times.
//
// Complexity:
//
//   - Push / Pop: O(log N), N ≤ V + E under lazy invalidation.
//   - Len / Peek: O(1).
//
// A Frontier is owned by exactly one search and is not safe for concurrent use.
package frontier
