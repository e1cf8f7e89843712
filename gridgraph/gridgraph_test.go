package gridgraph_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/gridgraph"
	"github.com/katalvlaran/lvpath/nodegraph"
)

func conn4() gridgraph.Options {
	opts := gridgraph.DefaultOptions()
	opts.Conn = gridgraph.Conn4
	return opts
}

func TestNew_Validation(t *testing.T) {
	_, err := gridgraph.New(nil, gridgraph.DefaultOptions())
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)

	_, err = gridgraph.New([][]int{{}}, gridgraph.DefaultOptions())
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)

	_, err = gridgraph.New([][]int{{1, 1}, {1}}, gridgraph.DefaultOptions())
	assert.ErrorIs(t, err, gridgraph.ErrNonRectangular)

	bad := map[string]func(o *gridgraph.Options){
		"negative cardinal": func(o *gridgraph.Options) { o.CardinalCost = -1 },
		"NaN diagonal":      func(o *gridgraph.Options) { o.DiagonalCost = math.NaN() },
		"zero spacing":      func(o *gridgraph.Options) { o.Spacing = 0 },
		"unknown conn":      func(o *gridgraph.Options) { o.Conn = 7 },
	}
	for name, mutate := range bad {
		t.Run(name, func(t *testing.T) {
			opts := gridgraph.DefaultOptions()
			mutate(&opts)
			_, err := gridgraph.New([][]int{{1}}, opts)
			assert.ErrorIs(t, err, gridgraph.ErrBadOptions)
		})
	}
}

func TestNew_Topology(t *testing.T) {
	values := [][]int{
		{1, 1, 1},
		{1, 1, 1},
	}

	gg, err := gridgraph.New(values, conn4())
	require.NoError(t, err)
	assert.Equal(t, 6, gg.Graph().Len())
	// 4 horizontal + 3 vertical neighbour pairs, both directions.
	assert.Equal(t, 14, gg.Graph().EdgeCount())

	gg, err = gridgraph.New(values, gridgraph.DefaultOptions())
	require.NoError(t, err)
	// plus 2 diagonal pairs per 2×2 block.
	assert.Equal(t, 22, gg.Graph().EdgeCount())
}

func TestNew_EdgeCosts(t *testing.T) {
	opts := gridgraph.DefaultOptions()
	opts.CardinalCost, opts.DiagonalCost = 10, 14
	gg, err := gridgraph.New([][]int{{1, 1}, {1, 1}}, opts)
	require.NoError(t, err)

	n, err := gg.Graph().Node(0)
	require.NoError(t, err)
	costs := map[nodegraph.NodeID]float64{}
	for e := range n.Edges() {
		costs[e.Target] = e.Cost
	}
	assert.Equal(t, map[nodegraph.NodeID]float64{1: 10, 2: 10, 3: 14}, costs)
}

func TestNew_Walls(t *testing.T) {
	gg, err := gridgraph.New([][]int{{1, 0}, {1, 1}}, conn4())
	require.NoError(t, err)

	wall, err := gg.Graph().Node(1)
	require.NoError(t, err)
	assert.False(t, wall.Walkable)
	assert.Equal(t, nodegraph.ColorWall, wall.Color)
	assert.Equal(t, 2, wall.Degree(), "walls keep their edges")

	open, err := gg.Graph().Node(0)
	require.NoError(t, err)
	assert.True(t, open.Walkable)
	assert.Equal(t, nodegraph.ColorDefault, open.Color)
}

func TestNew_Threshold(t *testing.T) {
	opts := gridgraph.DefaultOptions()
	opts.WalkableThreshold = 5
	gg, err := gridgraph.New([][]int{{4, 5, 9}}, opts)
	require.NoError(t, err)

	var walkable []bool
	for _, n := range gg.Graph().Nodes() {
		walkable = append(walkable, n.Walkable)
	}
	assert.Equal(t, []bool{false, true, true}, walkable)
}

func TestNew_DeepCopy(t *testing.T) {
	values := [][]int{{1, 1}}
	gg, err := gridgraph.New(values, gridgraph.DefaultOptions())
	require.NoError(t, err)

	values[0][0] = 0
	assert.Equal(t, 1, gg.CellValues[0][0])
}

func TestCoordinates(t *testing.T) {
	opts := gridgraph.DefaultOptions()
	opts.Spacing = 2
	gg, err := gridgraph.New([][]int{{1, 1, 1}, {1, 1, 7}}, opts)
	require.NoError(t, err)

	id, err := gg.NodeAt(2, 1)
	require.NoError(t, err)
	assert.Equal(t, nodegraph.NodeID(5), id)

	x, y := gg.Coordinate(id)
	assert.Equal(t, [2]int{2, 1}, [2]int{x, y})

	cell, err := gg.Cell(id)
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Cell{X: 2, Y: 1, Value: 7}, cell)

	n, err := gg.Graph().Node(id)
	require.NoError(t, err)
	assert.Equal(t, orb.Point{4, 2}, n.Position())

	_, err = gg.NodeAt(3, 0)
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
	_, err = gg.NodeAt(0, -1)
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
	_, err = gg.Cell(6)
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
	_, err = gg.Cell(nodegraph.NoNode)
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)

	assert.True(t, gg.InBounds(0, 0))
	assert.False(t, gg.InBounds(-1, 0))
}

func TestSetWall(t *testing.T) {
	gg, err := gridgraph.New([][]int{{1, 1, 1}}, conn4())
	require.NoError(t, err)

	require.NoError(t, gg.SetWall(1, 0, true))
	n, _ := gg.Graph().Node(1)
	assert.False(t, n.Walkable)
	assert.Equal(t, nodegraph.ColorWall, n.Color)
	assert.Equal(t, 1, gg.CellValues[0][1], "cell value untouched")

	require.NoError(t, gg.SetWall(1, 0, false))
	assert.True(t, n.Walkable)
	assert.Equal(t, nodegraph.ColorDefault, n.Color)

	assert.ErrorIs(t, gg.SetWall(5, 5, true), gridgraph.ErrOutOfBounds)
}
