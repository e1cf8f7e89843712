package render_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/cmd/lvpath/internal/render"
	"github.com/katalvlaran/lvpath/gridgraph"
	"github.com/katalvlaran/lvpath/nodegraph"
	"github.com/katalvlaran/lvpath/score"
	"github.com/katalvlaran/lvpath/search"
)

// plain renders without escape codes.
func plain() *render.Renderer {
	return render.New(lipgloss.NewRenderer(io.Discard))
}

func hookGrid(t *testing.T) (*gridgraph.GridGraph, search.Result, nodegraph.NodeID, nodegraph.NodeID) {
	t.Helper()
	opts := gridgraph.DefaultOptions()
	opts.Conn = gridgraph.Conn4
	gg, err := gridgraph.New([][]int{
		{1, 1, 1},
		{0, 0, 1},
		{1, 1, 1},
	}, opts)
	require.NoError(t, err)

	start, _ := gg.NodeAt(0, 0)
	goal, _ := gg.NodeAt(0, 2)
	res, err := search.FindPath(gg.Graph(), start, goal,
		search.WithHeuristic(score.Manhattan(1)),
		search.WithHighlight(nodegraph.ColorPath))
	require.NoError(t, err)
	require.True(t, res.Found)

	return gg, res, start, goal
}

func TestRows(t *testing.T) {
	gg, _, start, goal := hookGrid(t)

	rows := plain().Rows(gg, start, goal)
	assert.Equal(t, []string{"S**", "##*", "G**"}, rows)
}

func TestRows_UntouchedCellsAreBlank(t *testing.T) {
	gg, err := gridgraph.New([][]int{{1, 1, 0}}, gridgraph.DefaultOptions())
	require.NoError(t, err)

	rows := plain().Rows(gg, 0, nodegraph.NoNode)
	assert.Equal(t, []string{"S #"}, rows)
}

func TestGrid_Framed(t *testing.T) {
	gg, _, start, goal := hookGrid(t)

	out := plain().Grid(gg, start, goal)
	assert.Contains(t, out, "│S**│")
	assert.Contains(t, out, "╭───╮")
}

func TestSummary(t *testing.T) {
	_, res, _, _ := hookGrid(t)

	out := plain().Summary(res)
	assert.Contains(t, out, "cost     6.000")
	assert.Contains(t, out, "steps    6")

	out = plain().Summary(search.Result{Expanded: 3})
	assert.Contains(t, out, "no path")
	assert.Contains(t, out, "expanded 3")
}

func TestReport(t *testing.T) {
	gg, res, _, _ := hookGrid(t)

	rep := render.NewReport(gg, res)
	assert.True(t, rep.Found)
	assert.Equal(t, 6.0, rep.Cost)
	assert.Equal(t, [][2]int{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}, {1, 2}, {0, 2}}, rep.Path)

	var buf bytes.Buffer
	require.NoError(t, render.WriteJSON(&buf, render.NewReport(gg, search.Result{Expanded: 2})))
	assert.JSONEq(t, `{"found":false,"expanded":2,"path":[]}`, buf.String())
}
