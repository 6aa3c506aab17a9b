// File: types.go
// Role: Graph, Arc, Position, options and sentinel errors; NewGraph constructor.
//
// Errors:
//
//	ErrEmptyNodeID    - node ID is the empty string.
//	ErrNegativeWeight - edge weight < 0 on a graph that checks weights.
//	ErrBadWeight      - edge weight is NaN or ±Inf.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrBadWeight indicates an edge weight that is not a finite number.
	ErrBadWeight = errors.New("core: edge weight must be a finite number")
)

// Position is a planar coordinate attached to a node.
type Position struct {
	X float64
	Y float64
}

// Arc is one outgoing connection of a node.
type Arc struct {
	// To is the neighbor node ID.
	To string

	// Weight is the traversal cost of the arc.
	Weight float64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithUncheckedWeights disables the finite / non-negative weight checks in AddEdge.
func WithUncheckedWeights() GraphOption {
	return func(g *Graph) { g.uncheckedWeights = true }
}

// WithCapacity pre-sizes the node maps for n nodes.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n <= 0 {
			return
		}
		g.adjacency = make(map[string][]Arc, n)
		g.positions = make(map[string]Position, n)
	}
}

// edgeConfig collects per-edge settings applied by EdgeOption values.
type edgeConfig struct {
	bidirectional bool
}

// EdgeOption configures a single AddEdge call.
type EdgeOption func(*edgeConfig)

// WithOneWay adds only the from→to arc.
func WithOneWay() EdgeOption {
	return func(c *edgeConfig) { c.bidirectional = false }
}

// WithBidirectional sets whether the mirror arc to→from is added (default true).
func WithBidirectional(bidirectional bool) EdgeOption {
	return func(c *edgeConfig) { c.bidirectional = bidirectional }
}

// Graph is the weighted, positioned graph searched by dijkstra and astar.
//
// adjacency holds every node as a key, including nodes without arcs.
// positions holds a coordinate for every node added through AddNode or
// auto-created by AddEdge.
type Graph struct {
	mu sync.RWMutex // guards everything below

	uncheckedWeights bool // skip weight validation in AddEdge

	adjacency map[string][]Arc    // node ID → outgoing arcs in insertion order
	positions map[string]Position // node ID → planar coordinate
	arcCount  int                 // total number of stored arcs
}

// NewGraph creates an empty Graph. By default weights are validated.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[string][]Arc),
		positions: make(map[string]Position),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
