package gridgraph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/gridgraph"
	"github.com/katalvlaran/lvpath/nodegraph"
	"github.com/katalvlaran/lvpath/score"
	"github.com/katalvlaran/lvpath/search"
)

func endpoints(t *testing.T, gg *gridgraph.GridGraph, sx, sy, gx, gy int) (nodegraph.NodeID, nodegraph.NodeID) {
	t.Helper()
	s, err := gg.NodeAt(sx, sy)
	require.NoError(t, err)
	g, err := gg.NodeAt(gx, gy)
	require.NoError(t, err)
	return s, g
}

// Grid:
//
//	1 1 1
//	0 0 1
//	1 1 1
var hook = [][]int{
	{1, 1, 1},
	{0, 0, 1},
	{1, 1, 1},
}

func TestSearch_AroundWall(t *testing.T) {
	gg, err := gridgraph.New(hook, conn4())
	require.NoError(t, err)
	s, g := endpoints(t, gg, 0, 0, 0, 2)

	res, err := search.FindPath(gg.Graph(), s, g, search.WithHeuristic(score.Manhattan(1)))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []nodegraph.NodeID{0, 1, 2, 5, 8, 7, 6}, res.Path)
	assert.Equal(t, 6.0, res.Cost)

	gg, err = gridgraph.New(hook, gridgraph.DefaultOptions())
	require.NoError(t, err)
	res, err = search.FindPath(gg.Graph(), s, g, search.WithHeuristic(score.Octile()))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.InDelta(t, 2+2*math.Sqrt2, res.Cost, 1e-9)
}

func TestSearch_DiagonalHeuristicMatchesDijkstra(t *testing.T) {
	opts := gridgraph.DefaultOptions()
	opts.DiagonalCost = 1
	gg, err := gridgraph.Random(30, 20, 0.3, 99, opts)
	require.NoError(t, err)

	regions := gg.Regions()
	require.NotEmpty(t, regions)
	largest := regions[0]
	for _, r := range regions {
		if len(r) > len(largest) {
			largest = r
		}
	}
	s, g := largest[0], largest[len(largest)-1]

	plain, err := search.FindPath(gg.Graph(), s, g)
	require.NoError(t, err)
	astar, err := search.FindPath(gg.Graph(), s, g, search.WithHeuristic(score.Chebyshev()))
	require.NoError(t, err)

	require.True(t, plain.Found)
	require.True(t, astar.Found)
	assert.Equal(t, plain.Cost, astar.Cost)
	assert.LessOrEqual(t, astar.Expanded, plain.Expanded)
}

func TestSearch_AcrossRegionsFails(t *testing.T) {
	gg, err := gridgraph.New(islands, conn4())
	require.NoError(t, err)
	s, g := endpoints(t, gg, 1, 0, 3, 2)

	res, err := search.FindPath(gg.Graph(), s, g)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Empty(t, res.Path)
}
