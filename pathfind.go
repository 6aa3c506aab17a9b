package pathfind

import (
	"sort"

	"github.com/katalvlaran/pathfind/astar"
	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/dijkstra"
	"github.com/katalvlaran/pathfind/graphio"
	"github.com/katalvlaran/pathfind/heuristic"
	"github.com/katalvlaran/pathfind/route"
)

// BuildGraph constructs a graph from a decoded spec.
// Fails with graphio.ErrMalformedInput on a node without id or an edge
// without from/to.
func BuildGraph(spec *graphio.GraphSpec, opts ...core.GraphOption) (*core.Graph, error) {
	return graphio.Build(spec, opts...)
}

// ShortestPath runs uniform-cost search from start to end.
// A nil result with a nil error means no path.
func ShortestPath(g *core.Graph, start, end string) (*route.Result, error) {
	return dijkstra.ShortestPath(g, start, end)
}

// ShortestPathGuided runs A* with the heuristic named by tag
// ("euclidean" or "manhattan"). Unknown tags fail with
// heuristic.ErrInvalidHeuristic before any search work.
func ShortestPathGuided(g *core.Graph, start, end, tag string) (*route.Result, error) {
	return astar.ShortestPathTag(g, start, end, tag)
}

// Comparison holds the results of every algorithm that found a path,
// keyed by algorithm tag.
type Comparison map[route.Algorithm]*route.Result

// Empty reports whether no algorithm found a path.
func (c Comparison) Empty() bool { return len(c) == 0 }

// Algorithms returns the tags present in c in sorted order.
func (c Comparison) Algorithms() []route.Algorithm {
	out := make([]route.Algorithm, 0, len(c))
	for a := range c {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Compare runs Dijkstra and A* with every known heuristic on the same
// endpoints. Algorithms that find no path are left out.
func Compare(g *core.Graph, start, end string) (Comparison, error) {
	cmp := make(Comparison, 1+len(heuristic.Kinds()))

	res, err := dijkstra.ShortestPath(g, start, end)
	if err != nil {
		return nil, err
	}
	if res != nil {
		cmp[res.Algorithm] = res
	}

	for _, k := range heuristic.Kinds() {
		res, err = astar.ShortestPath(g, start, end, k)
		if err != nil {
			return nil, err
		}
		if res != nil {
			cmp[res.Algorithm] = res
		}
	}

	return cmp, nil
}
