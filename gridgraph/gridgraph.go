package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathfind/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		Threshold:       opts.PassableThreshold,
		TerrainCost:     opts.TerrainCost,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Passable reports whether (x,y) is inside the grid and not a wall.
// Complexity: O(1).
func (gg *GridGraph) Passable(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.Threshold
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// NodeID formats the graph node identifier for cell (x,y).
func NodeID(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

// ToGraph converts passable cells into a positioned *core.Graph.
// Each passable cell (x,y) becomes node "x,y" at Position{x, y}; each
// passable neighbor gets a one-way arc whose reverse is added when the
// neighbor itself is visited, so unit grids end up fully symmetric.
// Complexity: O(W×H×d) time, O(W×H + E) memory.
func (gg *GridGraph) ToGraph() (*core.Graph, error) {
	g := core.NewGraph(core.WithCapacity(gg.Width * gg.Height))

	// 1) Nodes with positions
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Passable(x, y) {
				continue
			}
			if err := g.AddNode(NodeID(x, y), float64(x), float64(y)); err != nil {
				return nil, err
			}
		}
	}

	// 2) Arcs to passable neighbors
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Passable(x, y) {
				continue
			}
			from := NodeID(x, y)
			for _, d := range gg.NeighborOffsets() {
				nx, ny := x+d[0], y+d[1]
				if !gg.Passable(nx, ny) {
					continue
				}
				if err := g.AddEdge(from, NodeID(nx, ny), gg.stepCost(d, nx, ny), core.WithOneWay()); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// stepCost returns the weight of moving by offset d into cell (nx,ny).
func (gg *GridGraph) stepCost(d [2]int, nx, ny int) float64 {
	step := 1.0
	if d[0] != 0 && d[1] != 0 {
		step = math.Sqrt2
	}
	if gg.TerrainCost {
		step *= float64(gg.CellValues[ny][nx])
	}

	return step
}
