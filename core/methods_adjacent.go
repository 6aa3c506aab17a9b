// File: methods_adjacent.go
// Role: Neighborhood query used by the search loops.
//
// Determinism:
//   - Neighbors() preserves arc insertion order.
package core

// Neighbors returns the outgoing arcs of id in insertion order.
//
// Behavior highlights:
//   - Unknown or empty id yields an empty (nil) slice, not an error.
//   - The result is a snapshot copied under the read lock; callers may
//     modify or append to it without touching the graph.
//
// Complexity:
//   - Time O(d), Space O(d) for out-degree d.
func (g *Graph) Neighbors(id string) []Arc {
	g.mu.RLock()
	defer g.mu.RUnlock()
	arcs := g.adjacency[id]
	if len(arcs) == 0 {
		return nil
	}
	out := make([]Arc, len(arcs))
	copy(out, arcs)

	return out
}
