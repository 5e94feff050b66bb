package dijkstra_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/gridgraph"
)

func benchGrid(b *testing.B, n int) *gridgraph.Grid {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	values := make([][]int, n)
	for y := range values {
		values[y] = make([]int, n)
		for x := range values[y] {
			values[y][x] = 1 + rng.Intn(9)
		}
	}
	g, err := gridgraph.NewGrid(values, gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}

	return g
}

// BenchmarkSearch_Bounded measures Policy A on a 141×141 grid.
// Complexity: O(S log S), S = 141²×4×4
func BenchmarkSearch_Bounded(b *testing.B) {
	g := benchGrid(b, 141)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Search(context.Background(), g, dijkstra.WithPolicy(dijkstra.BoundedRun{Max: 3}))
	}
}

// BenchmarkSearch_MinMax measures Policy B on a 141×141 grid.
// Complexity: O(S log S), S = 141²×4×11
func BenchmarkSearch_MinMax(b *testing.B) {
	g := benchGrid(b, 141)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Search(context.Background(), g, dijkstra.WithPolicy(dijkstra.MinMaxRun{Min: 4, Max: 10}))
	}
}
