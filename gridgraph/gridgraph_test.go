package gridgraph_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGridGraph and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, gridgraph.DefaultGridOptions())
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNewGridGraph_DeepCopy verifies that later input mutation does not leak in.
func TestNewGridGraph_DeepCopy(t *testing.T) {
	grid := [][]int{{1, 1}, {1, 1}}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	grid[0][0] = 0
	assert.True(t, gg.Passable(0, 0))
}

// TestInBounds checks InBounds and Passable on a 3×2 grid.
func TestInBounds(t *testing.T) {
	grid := [][]int{
		{0, 1, 0},
		{1, 0, 1},
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, gg.InBounds(xy[0], xy[1]), "InBounds(%v)", xy)
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, gg.InBounds(xy[0], xy[1]), "InBounds(%v)", xy)
	}
	assert.True(t, gg.Passable(1, 0))
	assert.False(t, gg.Passable(0, 0))
	assert.False(t, gg.Passable(5, 5))
}

//----------------------------------------------------------------------------//
// ToGraph Tests
//----------------------------------------------------------------------------//

// TestToGraph_Conn4 verifies nodes, positions and orthogonal-only arcs.
func TestToGraph_Conn4(t *testing.T) {
	grid := [][]int{{1, 0}, {1, 1}}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	g, err := gg.ToGraph()
	require.NoError(t, err)

	assert.Equal(t, []string{"0,0", "0,1", "1,1"}, g.Nodes())
	p, ok := g.Position("1,1")
	require.True(t, ok)
	assert.Equal(t, core.Position{X: 1, Y: 1}, p)

	// 0,0—0,1 and 0,1—1,1 in both directions; no diagonal 0,0—1,1.
	assert.Equal(t, 4, g.ArcCount())
	assert.Equal(t, []core.Arc{{To: "0,1", Weight: 1}}, g.Neighbors("0,0"))
}

// TestToGraph_Conn8 verifies diagonal arcs with √2 weight.
func TestToGraph_Conn8(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	gg, err := gridgraph.NewGridGraph([][]int{{1, 0}, {1, 1}}, opts)
	require.NoError(t, err)
	g, err := gg.ToGraph()
	require.NoError(t, err)

	assert.Contains(t, g.Neighbors("0,0"), core.Arc{To: "1,1", Weight: math.Sqrt2})
	assert.Contains(t, g.Neighbors("1,1"), core.Arc{To: "0,0", Weight: math.Sqrt2})
	assert.Equal(t, 6, g.ArcCount())
}

// TestToGraph_TerrainCost verifies that entering a cell costs its value.
func TestToGraph_TerrainCost(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.TerrainCost = true
	gg, err := gridgraph.NewGridGraph([][]int{{1, 5}}, opts)
	require.NoError(t, err)
	g, err := gg.ToGraph()
	require.NoError(t, err)

	assert.Equal(t, []core.Arc{{To: "1,0", Weight: 5}}, g.Neighbors("0,0"))
	assert.Equal(t, []core.Arc{{To: "0,0", Weight: 1}}, g.Neighbors("1,0"))
}

// TestToGraph_NegativeTerrain verifies that a negative step cost surfaces core's error.
func TestToGraph_NegativeTerrain(t *testing.T) {
	opts := gridgraph.GridOptions{PassableThreshold: -10, TerrainCost: true}
	gg, err := gridgraph.NewGridGraph([][]int{{1, -2}}, opts)
	require.NoError(t, err)
	_, err = gg.ToGraph()
	assert.ErrorIs(t, err, core.ErrNegativeWeight)
}

func TestNeighborOffsets(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	gg, err := gridgraph.NewGridGraph([][]int{{1}}, opts)
	require.NoError(t, err)
	assert.Len(t, gg.NeighborOffsets(), 4)

	opts.Conn = gridgraph.Conn8
	gg, err = gridgraph.NewGridGraph([][]int{{1}}, opts)
	require.NoError(t, err)
	offsets := gg.NeighborOffsets()
	assert.Len(t, offsets, 8)
	assert.Contains(t, offsets, [2]int{1, 1})
	assert.NotContains(t, offsets, [2]int{0, 0})
}
