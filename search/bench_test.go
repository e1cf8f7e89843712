package search_test

import (
	"testing"

	"github.com/katalvlaran/lvpath/score"
	"github.com/katalvlaran/lvpath/search"
)

// BenchmarkFindPath_Grid100 measures corner-to-corner searches on an open
// 100×100 8-connected grid (10k nodes, ~80k edges).
func BenchmarkFindPath_Grid100(b *testing.B) {
	g, at := buildGrid(b, 100, 100, true, nil)
	start, goal := at(0, 0), at(99, 99)

	b.Run("Dijkstra", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := search.FindPath(g, start, goal); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("Octile", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := search.FindPath(g, start, goal, search.WithHeuristic(score.Octile())); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("Isolated", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := search.FindPath(g, start, goal, search.WithIsolatedState()); err != nil {
				b.Fatal(err)
			}
		}
	})
}
