package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/nodegraph"
	"github.com/katalvlaran/lvpath/search"
)

func TestStepper_ExpandsInPriorityOrder(t *testing.T) {
	s := buildScenario(t)
	st, err := search.NewStepper(s.g, s.a, s.d, search.WithTraceColors())
	require.NoError(t, err)
	assert.Equal(t, nodegraph.NoNode, st.Current())
	assert.False(t, st.Done())

	// Start is already open before any step.
	na, _ := s.g.Node(s.a)
	assert.Equal(t, nodegraph.ColorOpen, na.Color)

	var order []nodegraph.NodeID
	for !st.Done() {
		_, err := st.Step()
		require.NoError(t, err)
		order = append(order, st.Current())

		cur, _ := s.g.Node(st.Current())
		assert.Equal(t, nodegraph.ColorClosed, cur.Color)
	}
	assert.Equal(t, []nodegraph.NodeID{s.a, s.b, s.c, s.d}, order)

	res := st.Result()
	assert.True(t, res.Found)
	assert.Equal(t, 3.0, res.Cost)

	// Further steps are no-ops.
	done, err := st.Step()
	assert.True(t, done)
	assert.NoError(t, err)
	assert.Equal(t, res, st.Result())
}

func TestStepper_PartialResult(t *testing.T) {
	s := buildScenario(t)
	st, err := search.NewStepper(s.g, s.a, s.d)
	require.NoError(t, err)

	done, err := st.Step()
	require.NoError(t, err)
	assert.False(t, done)

	res := st.Result()
	assert.False(t, res.Found)
	assert.Equal(t, 1, res.Expanded)

	// Neighbours of A are scored live on the nodes.
	nb, _ := s.g.Node(s.b)
	nc, _ := s.g.Node(s.c)
	assert.Equal(t, 1.0, nb.GScore)
	assert.Equal(t, 4.0, nc.GScore)
	assert.Equal(t, s.a, nc.Previous)

	// Second step expands B and improves C through it.
	_, err = st.Step()
	require.NoError(t, err)
	assert.Equal(t, 2.0, nc.GScore)
	assert.Equal(t, s.b, nc.Previous)
}

func TestStepper_ErrorIsSticky(t *testing.T) {
	s := buildScenario(t)
	st, err := search.NewStepper(s.g, s.a, s.d, search.WithMaxSteps(1))
	require.NoError(t, err)

	_, err = st.Step()
	require.NoError(t, err)
	done, err := st.Step()
	assert.True(t, done)
	assert.ErrorIs(t, err, search.ErrStepBudget)

	done, err = st.Step()
	assert.True(t, done)
	assert.ErrorIs(t, err, search.ErrStepBudget)
	assert.False(t, st.Result().Found)
}

func TestNewStepper_InvalidInput(t *testing.T) {
	_, err := search.NewStepper(nil, 0, 0)
	assert.ErrorIs(t, err, search.ErrNilGraph)
}
