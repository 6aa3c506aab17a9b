package graphio

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/pathfind/core"
)

// ErrMalformedInput reports a node without id or an edge without from/to.
var ErrMalformedInput = errors.New("graphio: malformed input")

// Build constructs a *core.Graph from spec.
//
// Steps:
//  1. Add every node with its coordinates (x, y default to 0).
//  2. Add every edge with resolved defaults (weight 1.0, bidirectional).
//     Endpoints not listed in nodes are created at (0, 0).
//
// The first malformed entry aborts the build; the error names its index.
func Build(spec *GraphSpec, opts ...core.GraphOption) (*core.Graph, error) {
	if spec == nil {
		return nil, errors.Wrap(ErrMalformedInput, "graph is nil")
	}

	g := core.NewGraph(append([]core.GraphOption{core.WithCapacity(len(spec.Nodes))}, opts...)...)
	for i, n := range spec.Nodes {
		if n.ID == "" {
			return nil, errors.Wrapf(ErrMalformedInput, "node %d: missing 'id'", i)
		}
		if err := g.AddNode(n.ID, n.X, n.Y); err != nil {
			return nil, errors.Wrapf(err, "node %d", i)
		}
	}

	for i, e := range spec.Edges {
		switch {
		case e.From == "":
			return nil, errors.Wrapf(ErrMalformedInput, "edge %d: missing 'from'", i)
		case e.To == "":
			return nil, errors.Wrapf(ErrMalformedInput, "edge %d: missing 'to'", i)
		}
		err := g.AddEdge(e.From, e.To, e.WeightOrDefault(), core.WithBidirectional(e.IsBidirectional()))
		if err != nil {
			return nil, errors.Wrapf(err, "edge %d (%s -> %s)", i, e.From, e.To)
		}
	}

	return g, nil
}
