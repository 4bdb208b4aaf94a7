package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// BenchmarkFindPath_Open measures corner-to-corner search on an empty 500×500 grid.
func BenchmarkFindPath_Open(b *testing.B) {
	const n = 500
	gg := mustGrid(b, freeGrid(n, n))
	start, goal := gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: n - 1, Col: n - 1}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.FindPath(gg, start, goal)
	}
}

// BenchmarkFindPath_Random measures search on a 500×500 grid with ~25% obstacles.
func BenchmarkFindPath_Random(b *testing.B) {
	const n = 500
	rng := rand.New(rand.NewSource(42))
	values := freeGrid(n, n)
	for r := range values {
		for c := range values[r] {
			if rng.Intn(4) == 0 {
				values[r][c] = 1
			}
		}
	}
	values[0][0], values[n-1][n-1] = 0, 0
	gg := mustGrid(b, values)
	start, goal := gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: n - 1, Col: n - 1}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.FindPath(gg, start, goal)
	}
}
