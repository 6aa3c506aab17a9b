// File: methods_nodes.go
// Role: Node lifecycle & queries: AddNode, HasNode, Position, Nodes, NodeCount.
//
// Determinism:
//   - Nodes() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.
package core

import "sort"

// AddNode inserts a node at (x, y), or moves an existing node to (x, y).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyNodeID).
//   - Stage 2: Under the write lock, create the adjacency bucket if missing and
//     record the position.
//
// Behavior highlights:
//   - Re-adding a node overwrites its position but never clears its arcs.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddNode(id string, x, y float64) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.addNodeLocked(id, x, y)

	return nil
}

// addNodeLocked performs AddNode under an already held write lock.
func (g *Graph) addNodeLocked(id string, x, y float64) {
	if _, exists := g.adjacency[id]; !exists {
		g.adjacency[id] = nil
	}
	g.positions[id] = Position{X: x, Y: y}
}

// HasNode reports whether the node exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// Position returns the recorded coordinate of id.
// ok is false when the node is unknown or has no recorded position.
// Complexity: O(1).
func (g *Graph) Position(id string) (Position, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	p, ok := g.positions[id]

	return p, ok
}

// Nodes returns all node IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	out := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		out = append(out, id)
	}
	g.mu.RUnlock()
	sort.Strings(out)

	return out
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}
