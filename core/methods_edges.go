// File: methods_edges.go
// Role: Edge insertion (AddEdge) and arc accounting (ArcCount).
//
// Concurrency:
//   - AddEdge holds the write lock for validation, endpoint creation and
//     arc insertion, so a rejected edge never leaves half-created endpoints.
package core

import (
	"fmt"
	"math"
)

// AddEdge appends the arc from→to and, unless WithOneWay() is given, to→from.
//
// Steps:
//  1. Validate IDs (ErrEmptyNodeID).
//  2. Validate weight unless WithUncheckedWeights(): NaN/±Inf ⇒ ErrBadWeight,
//     weight < 0 ⇒ ErrNegativeWeight.
//  3. Apply EdgeOption values on top of the bidirectional default.
//  4. Under the write lock, create missing endpoints at (0,0).
//  5. Append from→to; if bidirectional append to→from.
//
// No deduplication is performed: the same edge added twice yields parallel arcs.
// A bidirectional self-loop stores two arcs on the same node.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64, opts ...EdgeOption) error {
	// 1) Input validation
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}
	if !g.uncheckedWeights {
		if math.IsNaN(weight) || math.IsInf(weight, 0) {
			return fmt.Errorf("%w: edge %s→%s weight=%v", ErrBadWeight, from, to, weight)
		}
		if weight < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%v", ErrNegativeWeight, from, to, weight)
		}
	}

	// 2) Resolve per-edge options
	cfg := edgeConfig{bidirectional: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 3) Ensure endpoints exist with the default position
	if _, ok := g.adjacency[from]; !ok {
		g.addNodeLocked(from, 0, 0)
	}
	if _, ok := g.adjacency[to]; !ok {
		g.addNodeLocked(to, 0, 0)
	}

	// 4) Link arcs
	g.adjacency[from] = append(g.adjacency[from], Arc{To: to, Weight: weight})
	g.arcCount++
	if cfg.bidirectional {
		g.adjacency[to] = append(g.adjacency[to], Arc{To: from, Weight: weight})
		g.arcCount++
	}

	return nil
}

// ArcCount returns the total number of stored arcs (a bidirectional edge counts twice).
// Complexity: O(1).
func (g *Graph) ArcCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.arcCount
}
