// Package heuristic provides the distance estimators used by guided search.
//
// Both estimators read node positions from a *core.Graph:
//
//	Euclidean(a, b) = √((xb−xa)² + (yb−ya)²)
//	Manhattan(a, b) = |xb−xa| + |yb−ya|
//
// Fallback: if either node has no recorded position the estimate is 0, which
// degrades guided search to uniform-cost behavior for that estimate.
//
// Admissibility is the caller's responsibility. Euclidean never overestimates
// when every arc weight is at least the straight-line distance between its
// endpoints; Manhattan additionally needs weights ≥ the Manhattan distance
// (true on 4-connected unit grids, not in general).
package heuristic

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/pathfind/core"
)

// ErrInvalidHeuristic indicates an unrecognized heuristic tag.
var ErrInvalidHeuristic = errors.New("heuristic: invalid heuristic, use 'euclidean' or 'manhattan'")

// Kind is a heuristic selector tag.
type Kind string

const (
	// KindEuclidean selects the straight-line distance.
	KindEuclidean Kind = "euclidean"
	// KindManhattan selects the sum of absolute coordinate differences.
	KindManhattan Kind = "manhattan"
)

// Func estimates the remaining cost from node to goal in g.
type Func func(g *core.Graph, node, goal string) float64

// Kinds lists every supported selector in a stable order.
func Kinds() []Kind { return []Kind{KindEuclidean, KindManhattan} }

// Parse maps a tag to its Kind; any other value yields ErrInvalidHeuristic.
func Parse(tag string) (Kind, error) {
	switch k := Kind(tag); k {
	case KindEuclidean, KindManhattan:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidHeuristic, tag)
	}
}

// Valid reports whether k is a supported selector.
func (k Kind) Valid() bool {
	return k == KindEuclidean || k == KindManhattan
}

// Func returns the estimator for k, or nil if k is not valid.
func (k Kind) Func() Func {
	switch k {
	case KindEuclidean:
		return Euclidean
	case KindManhattan:
		return Manhattan
	default:
		return nil
	}
}

// Euclidean returns the straight-line distance between node and goal,
// or 0 when either position is unknown.
func Euclidean(g *core.Graph, node, goal string) float64 {
	a, b, ok := positions(g, node, goal)
	if !ok {
		return 0
	}

	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Manhattan returns |dx|+|dy| between node and goal,
// or 0 when either position is unknown.
func Manhattan(g *core.Graph, node, goal string) float64 {
	a, b, ok := positions(g, node, goal)
	if !ok {
		return 0
	}

	return math.Abs(b.X-a.X) + math.Abs(b.Y-a.Y)
}

// positions fetches both coordinates; ok is false if either is missing.
func positions(g *core.Graph, node, goal string) (core.Position, core.Position, bool) {
	if g == nil {
		return core.Position{}, core.Position{}, false
	}
	a, okA := g.Position(node)
	b, okB := g.Position(goal)

	return a, b, okA && okB
}
