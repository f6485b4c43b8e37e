package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/gridgraph"
)

// randomGrid builds an n×n grid with values in [0,4]; about a fifth are walls.
func randomGrid(n int) [][]int {
	r := rand.New(rand.NewSource(42))
	grid := make([][]int, n)
	for y := 0; y < n; y++ {
		row := make([]int, n)
		for x := 0; x < n; x++ {
			row[x] = r.Intn(5)
		}
		grid[y] = row
	}
	grid[0][0], grid[n-1][n-1] = 1, 1

	return grid
}

// BenchmarkConnectedComponents measures ConnectedComponents on a 1000×1000 grid.
// Complexity: O(W×H×d)
func BenchmarkConnectedComponents(b *testing.B) {
	gg, err := gridgraph.NewGridGraph(randomGrid(1000), gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedComponents()
	}
}

// BenchmarkSearchTerrain measures a corner-to-corner terrain search on a
// 300×300 grid with diagonal moves.
func BenchmarkSearchTerrain(b *testing.B) {
	const n = 300
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	opts.Cost = gridgraph.Terrain
	gg, err := gridgraph.NewGridGraph(randomGrid(n), opts)
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}
	start, end := gridgraph.Cell{}, gridgraph.Cell{X: n - 1, Y: n - 1}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.SearchTo(start, end, gg.NeighborFunc())
	}
}
