package search_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/nodegraph"
)

// scenario holds the four-node graph used across tests:
//
//	A→B(1), A→C(4), B→C(1), B→D(5), C→D(1), plus an isolated E.
type scenario struct {
	g             *nodegraph.Graph
	a, b, c, d, e nodegraph.NodeID
}

func buildScenario(t testing.TB) scenario {
	t.Helper()
	g := nodegraph.NewGraph()
	s := scenario{
		g: g,
		a: g.AddNode(orb.Point{0, 0}),
		b: g.AddNode(orb.Point{1, 0}),
		c: g.AddNode(orb.Point{1, 1}),
		d: g.AddNode(orb.Point{2, 1}),
		e: g.AddNode(orb.Point{9, 9}),
	}
	mustEdge(t, g, s.a, s.b, 1)
	mustEdge(t, g, s.a, s.c, 4)
	mustEdge(t, g, s.b, s.c, 1)
	mustEdge(t, g, s.b, s.d, 5)
	mustEdge(t, g, s.c, s.d, 1)

	return s
}

func mustEdge(t testing.TB, g *nodegraph.Graph, from, to nodegraph.NodeID, cost float64) {
	t.Helper()
	require.NoError(t, g.AddEdge(from, to, cost))
}

// buildGrid creates a w×h grid with unit spacing. Cardinal moves cost 1,
// diagonal moves cost √2 when diag is set. blocked cells are non-walkable.
// Returns the graph and a lookup from (x,y) to id.
func buildGrid(t testing.TB, w, h int, diag bool, blocked map[[2]int]bool) (*nodegraph.Graph, func(x, y int) nodegraph.NodeID) {
	t.Helper()
	g := nodegraph.NewGraph(nodegraph.WithCapacity(w * h))
	at := func(x, y int) nodegraph.NodeID { return nodegraph.NodeID(y*w + x) }
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.AddNode(orb.Point{float64(x), float64(y)}, nodegraph.WithWalkable(!blocked[[2]int{x, y}]))
		}
	}
	offsets := [][3]float64{{1, 0, 1}, {0, 1, 1}}
	if diag {
		offsets = append(offsets, [3]float64{1, 1, math.Sqrt2}, [3]float64{-1, 1, math.Sqrt2})
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for _, o := range offsets {
				nx, ny := x+int(o[0]), y+int(o[1])
				if nx < 0 || nx >= w || ny >= h {
					continue
				}
				require.NoError(t, g.Connect(at(x, y), at(nx, ny), o[2]))
			}
		}
	}

	return g, at
}

// buildRandom creates n nodes at random positions and m random directed
// edges whose cost is at least the Euclidean length, so Euclidean(1) is
// admissible.
func buildRandom(t testing.TB, rng *rand.Rand, n, m int) *nodegraph.Graph {
	t.Helper()
	g := nodegraph.NewGraph()
	pts := make([]orb.Point, n)
	for i := range pts {
		pts[i] = orb.Point{rng.Float64() * 100, rng.Float64() * 100}
		g.AddNode(pts[i])
	}
	for i := 0; i < m; i++ {
		u, v := rng.Intn(n), rng.Intn(n)
		dx, dy := pts[u].X()-pts[v].X(), pts[u].Y()-pts[v].Y()
		length := math.Sqrt(dx*dx + dy*dy)
		mustEdge(t, g, nodegraph.NodeID(u), nodegraph.NodeID(v), length*(1+rng.Float64()))
	}

	return g
}

// bellmanFord returns exact shortest distances from src over walkable nodes.
func bellmanFord(g *nodegraph.Graph, src nodegraph.NodeID) []float64 {
	nodes := g.Nodes()
	dist := make([]float64, len(nodes))
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[src] = 0
	for round := 0; round < len(nodes); round++ {
		changed := false
		for _, n := range nodes {
			if math.IsInf(dist[n.ID()], 1) || !n.Walkable {
				continue
			}
			for e := range n.Edges() {
				if !nodes[e.Target].Walkable {
					continue
				}
				if d := dist[n.ID()] + e.Cost; d < dist[e.Target] {
					dist[e.Target] = d
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	return dist
}
