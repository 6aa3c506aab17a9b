package astar

import (
	"errors"
	"math"
	"time"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/frontier"
	"github.com/katalvlaran/pathfind/heuristic"
	"github.com/katalvlaran/pathfind/route"
)

// ErrNilGraph indicates that a nil *core.Graph was passed.
var ErrNilGraph = errors.New("astar: graph is nil")

// ShortestPathTag parses tag with heuristic.Parse and runs ShortestPath.
// Unknown tags fail with heuristic.ErrInvalidHeuristic before any search work.
func ShortestPathTag(g *core.Graph, start, end, tag string) (*route.Result, error) {
	kind, err := heuristic.Parse(tag)
	if err != nil {
		return nil, err
	}

	return ShortestPath(g, start, end, kind)
}

// ShortestPath returns the minimum-weight path from start to end guided by kind.
//
// Steps:
//  1. Invalid kind ⇒ ErrInvalidHeuristic; nil graph ⇒ ErrNilGraph;
//     absent start or end ⇒ (nil, nil).
//  2. g[start] = 0, f[start] = h(start); push (f[start], start); open = {start}.
//  3. Pop; skip if not open (stale); leave open; count as explored.
//  4. Popped end ⇒ rebuild path, distance g[end].
//  5. Close the node; for each non-closed neighbor with a strictly better
//     tentative g, record predecessor, g and f, push (f, neighbor), mark open.
//  6. Frontier exhausted ⇒ (nil, nil).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func ShortestPath(g *core.Graph, start, end string, kind heuristic.Kind) (*route.Result, error) {
	began := time.Now()

	// 1) Validate inputs
	h := kind.Func()
	if h == nil {
		_, err := heuristic.Parse(string(kind))
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(start) || !g.HasNode(end) {
		return nil, nil
	}

	// 2) Search
	s := newSearch(g, start, end, h)
	if !s.run() {
		return nil, nil
	}

	return &route.Result{
		Path:            route.Reconstruct(s.prev, start, end),
		Distance:        s.gScore[end],
		NodesExplored:   s.explored,
		ExecutionTimeMs: route.Since(began),
		Algorithm:       route.AStar(kind),
	}, nil
}

// search holds the mutable state for a single A* run.
type search struct {
	g        *core.Graph
	end      string
	h        heuristic.Func
	gScore   map[string]float64 // cost from start; missing means +∞
	fScore   map[string]float64 // gScore + h; missing means +∞
	prev     map[string]string  // predecessor on the best-known path
	open     map[string]bool    // nodes eligible for expansion
	closed   map[string]bool    // nodes already expanded
	pq       *frontier.Frontier // lazy min-heap of (fScore, node)
	explored int
}

// newSearch seeds the tables with the start node.
func newSearch(g *core.Graph, start, end string, h heuristic.Func) *search {
	n := g.NodeCount()
	s := &search{
		g:      g,
		end:    end,
		h:      h,
		gScore: make(map[string]float64, n),
		fScore: make(map[string]float64, n),
		prev:   make(map[string]string, n),
		open:   make(map[string]bool, n),
		closed: make(map[string]bool, n),
		pq:     frontier.New(n),
	}
	s.gScore[start] = 0
	s.fScore[start] = h(g, start, end)
	s.pq.Push(s.fScore[start], start)
	s.open[start] = true

	return s
}

// cost returns gScore[v], or +∞ when v was never reached.
func (s *search) cost(v string) float64 {
	if c, ok := s.gScore[v]; ok {
		return c
	}

	return math.Inf(1)
}

// run expands nodes until end is popped (true) or the frontier drains (false).
func (s *search) run() bool {
	for {
		item, ok := s.pq.Pop()
		if !ok {
			return false
		}
		current := item.ID

		// Stale entry: superseded by a better push, or already expanded.
		if !s.open[current] {
			continue
		}
		delete(s.open, current)
		s.explored++

		if current == s.end {
			return true
		}

		s.closed[current] = true
		s.expand(current)
	}
}

// expand relaxes every non-closed neighbor of current.
func (s *search) expand(current string) {
	gc := s.gScore[current]
	for _, arc := range s.g.Neighbors(current) {
		if s.closed[arc.To] {
			continue
		}
		tentative := gc + arc.Weight
		if tentative >= s.cost(arc.To) {
			continue
		}
		s.prev[arc.To] = current
		s.gScore[arc.To] = tentative
		s.fScore[arc.To] = tentative + s.h(s.g, arc.To, s.end)
		// Superseding push: any older entry for arc.To becomes stale.
		s.pq.Push(s.fScore[arc.To], arc.To)
		s.open[arc.To] = true
	}
}
