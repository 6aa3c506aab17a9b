package gridgraph

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid conversion.
type GridOptions struct {
	// PassableThreshold specifies the minimum cell value considered passable.
	PassableThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// TerrainCost multiplies each step by the destination cell value.
	TerrainCost bool
}

// DefaultGridOptions returns GridOptions with default settings:
// PassableThreshold=1 (values ≥1 are passable), Conn=Conn4, unit step costs.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		PassableThreshold: 1,
		Conn:              Conn4,
	}
}

// GridGraph is an immutable rectangular grid of cell values.
// CellValues[y][x] holds the original input value.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	Threshold       int
	TerrainCost     bool
	neighborOffsets [][2]int
}
