package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/gridgraph"
)

// TestLowerBound_Uniform: on a uniform grid the bound is the Manhattan distance.
func TestLowerBound_Uniform(t *testing.T) {
	g, err := gridgraph.NewGrid([][]int{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	cost, ok := g.LowerBound(g.TopLeft(), g.BottomRight())
	require.True(t, ok)
	assert.Equal(t, int64(4), cost)

	cost, ok = g.LowerBound(g.TopLeft(), g.TopLeft())
	require.True(t, ok)
	assert.Zero(t, cost)
}

// TestLowerBound_Detour: the cheap route winds around an expensive block.
func TestLowerBound_Detour(t *testing.T) {
	g, err := gridgraph.NewGrid([][]int{
		{0, 9, 1, 1},
		{1, 9, 1, 9},
		{1, 1, 1, 9},
	}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	// (0,0)→(1,0)→(2,0)→(2,1)→(2,2)→(1,2)→(0,2)→(0,3) = 1+1+1+1+1+1+1.
	cost, ok := g.LowerBound(g.TopLeft(), gridgraph.Coordinate{Row: 0, Col: 3})
	require.True(t, ok)
	assert.Equal(t, int64(7), cost)
}

// TestLowerBound_Unreachable covers disconnected ragged rows and off-grid endpoints.
func TestLowerBound_Unreachable(t *testing.T) {
	g, err := gridgraph.NewGrid([][]int{
		{1, 1, 1},
		{},
		{1, 1, 1},
	}, gridgraph.GridOptions{})
	require.NoError(t, err)

	_, ok := g.LowerBound(g.TopLeft(), g.BottomRight())
	assert.False(t, ok, "an empty row splits the grid in two")

	_, ok = g.LowerBound(g.TopLeft(), gridgraph.Coordinate{Row: 5, Col: 5})
	assert.False(t, ok)
}
