package dijkstra

import (
	"math"
	"time"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/frontier"
	"github.com/katalvlaran/pathfind/route"
)

// ShortestPath returns the minimum-weight path from start to end.
//
// Steps:
//  1. Nil graph ⇒ ErrNilGraph; absent start or end ⇒ (nil, nil).
//  2. dist[v] = +∞, dist[start] = 0; push (0, start).
//  3. Pop the minimum; skip if visited; otherwise finalize it and count it.
//  4. Stop once end is finalized; else relax its outgoing arcs.
//  5. dist[end] = +∞ ⇒ (nil, nil); otherwise rebuild the path from predecessors.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func ShortestPath(g *core.Graph, start, end string) (*route.Result, error) {
	began := time.Now()

	// 1) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(start) || !g.HasNode(end) {
		return nil, nil
	}

	// 2) Run until end is finalized
	r := newRunner(g, start, end)
	r.process()

	// 3) Unreachable target
	if math.IsInf(r.distance(end), 1) {
		return nil, nil
	}

	return &route.Result{
		Path:            route.Reconstruct(r.prev, start, end),
		Distance:        r.dist[end],
		NodesExplored:   r.explored,
		ExecutionTimeMs: route.Since(began),
		Algorithm:       route.Dijkstra,
	}, nil
}

// Distances returns the minimum distance from source to every node reachable
// from it. Unreachable nodes are absent from the map.
//
// Errors:
//   - ErrEmptySource, ErrNilGraph, ErrSourceNotFound.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Distances(g *core.Graph, source string) (map[string]float64, error) {
	if source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, ErrSourceNotFound
	}

	// An empty target never matches a node ID, so the loop drains the frontier.
	r := newRunner(g, source, "")
	r.process()

	return r.dist, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g        *core.Graph        // read-only input graph
	target   string             // stop once this node is finalized ("" = never)
	dist     map[string]float64 // best-known distance; missing means +∞
	prev     map[string]string  // predecessor on the best-known path
	visited  map[string]bool    // finalized nodes
	pq       *frontier.Frontier // lazy min-heap of (distance, node)
	explored int                // number of finalized nodes
}

// newRunner seeds the tables with the source at distance 0.
func newRunner(g *core.Graph, source, target string) *runner {
	n := g.NodeCount()
	r := &runner{
		g:       g,
		target:  target,
		dist:    make(map[string]float64, n),
		prev:    make(map[string]string, n),
		visited: make(map[string]bool, n),
		pq:      frontier.New(n),
	}
	r.dist[source] = 0
	r.pq.Push(0, source)

	return r
}

// distance returns dist[v], or +∞ when v was never reached.
func (r *runner) distance(v string) float64 {
	if d, ok := r.dist[v]; ok {
		return d
	}

	return math.Inf(1)
}

// process is the main loop: pop, skip stale, finalize, stop at target, relax.
func (r *runner) process() {
	for {
		item, ok := r.pq.Pop()
		if !ok {
			return
		}
		u := item.ID

		// Stale entry: u was finalized through a cheaper entry.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true
		r.explored++

		if u == r.target {
			return
		}

		r.relax(u)
	}
}

// relax improves neighbors of the finalized node u.
// Only strict improvements are recorded, so the first predecessor found at a
// given distance is kept.
func (r *runner) relax(u string) {
	du := r.dist[u]
	for _, arc := range r.g.Neighbors(u) {
		nd := du + arc.Weight
		if nd >= r.distance(arc.To) {
			continue
		}
		r.dist[arc.To] = nd
		r.prev[arc.To] = u
		r.pq.Push(nd, arc.To)
	}
}
