package gridbfs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/algoreplay/grid"
	"github.com/katalvlaran/algoreplay/gridbfs"
)

// randomGrid builds a deterministic n×n grid drawing states from pick.
func randomGrid(b *testing.B, n int, pick func(r *rand.Rand) grid.CellState) grid.Grid {
	b.Helper()
	r := rand.New(rand.NewSource(42))
	states := make([][]grid.CellState, n)
	for row := range states {
		states[row] = make([]grid.CellState, n)
		for col := range states[row] {
			states[row][col] = pick(r)
		}
	}
	g, err := grid.New(states)
	if err != nil {
		b.Fatalf("setup grid.New failed: %v", err)
	}
	return g
}

// BenchmarkIslandsGrid records a 20×20 grid with roughly half land.
// Every Step copies the grid, so cost is O((W×H)²).
func BenchmarkIslandsGrid(b *testing.B) {
	g := randomGrid(b, 20, func(r *rand.Rand) grid.CellState {
		return grid.CellState(r.Intn(2))
	})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gridbfs.IslandsGrid(g)
	}
}

// BenchmarkSpreadGrid records a 20×20 grid with a few sources among fresh cells.
func BenchmarkSpreadGrid(b *testing.B) {
	g := randomGrid(b, 20, func(r *rand.Rand) grid.CellState {
		switch v := r.Intn(20); {
		case v == 0:
			return grid.Marked
		case v < 4:
			return grid.Empty
		default:
			return grid.Open
		}
	})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gridbfs.SpreadGrid(g)
	}
}
