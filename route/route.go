// Package route defines the Result record shared by the search packages,
// together with path reconstruction and timing helpers.
//
// A Result is produced once per successful search and is not mutated
// afterwards. "No path" is never a Result: searches return a nil *Result.
package route

import (
	"math"
	"time"

	"github.com/katalvlaran/pathfind/heuristic"
)

// Algorithm identifies the search that produced a Result.
type Algorithm string

const (
	// Dijkstra tags uniform-cost search results.
	Dijkstra Algorithm = "dijkstra"
	// AStarEuclidean tags guided search with the Euclidean heuristic.
	AStarEuclidean Algorithm = "astar_euclidean"
	// AStarManhattan tags guided search with the Manhattan heuristic.
	AStarManhattan Algorithm = "astar_manhattan"
)

// AStar returns the tag for guided search with heuristic k.
func AStar(k heuristic.Kind) Algorithm { return Algorithm("astar_" + string(k)) }

// TimePrecision is the number of decimals kept in ExecutionTimeMs.
const TimePrecision = 4

// Result is the outcome of one successful search.
type Result struct {
	// Path lists node IDs from start to end inclusive.
	Path []string `json:"path" yaml:"path"`

	// Distance is the sum of traversed arc weights.
	Distance float64 `json:"distance" yaml:"distance"`

	// NodesExplored counts finalized (popped and committed) nodes.
	NodesExplored int `json:"nodes_explored" yaml:"nodes_explored"`

	// ExecutionTimeMs is the wall-clock duration of the search call.
	ExecutionTimeMs float64 `json:"execution_time_ms" yaml:"execution_time_ms"`

	// Algorithm names the producing search.
	Algorithm Algorithm `json:"algorithm" yaml:"algorithm"`
}

// Reconstruct walks predecessor links back from end to start and returns the
// path in forward order. A node without a predecessor ends the walk, so the
// result always starts at start when end was reached from it. The walk is
// bounded by len(prev)+1 steps, so a corrupt predecessor cycle cannot hang it.
//
// Complexity: O(len(path)).
func Reconstruct(prev map[string]string, start, end string) []string {
	path := []string{end}
	for cur := end; cur != start; {
		p, ok := prev[cur]
		if !ok || len(path) > len(prev) {
			break
		}
		path = append(path, p)
		cur = p
	}
	// reverse in place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Milliseconds converts d to milliseconds rounded to TimePrecision decimals.
func Milliseconds(d time.Duration) float64 {
	ms := float64(d) / float64(time.Millisecond)
	scale := math.Pow10(TimePrecision)

	return math.Round(ms*scale) / scale
}

// Since returns Milliseconds(time.Since(start)).
func Since(start time.Time) float64 { return Milliseconds(time.Since(start)) }
