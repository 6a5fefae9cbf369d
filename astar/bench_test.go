package astar_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// BenchmarkFindPath measures a corner-to-corner request on a 200×200 grid
// with 20% random obstacles (corners cleared).
// Complexity: O(N log N) per request.
func BenchmarkFindPath(b *testing.B) {
	const n = 200
	rng := rand.New(rand.NewSource(42))
	g, err := gridgraph.NewGrid(n, n, gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}
	for i := 0; i < g.Len(); i++ {
		if rng.Float64() < 0.2 {
			g.At(i).Class = gridgraph.Obstacle
		}
	}
	g.SetClass(0, 0, gridgraph.Walkable)
	g.SetClass(n-1, n-1, gridgraph.Walkable)

	for _, tc := range []struct {
		name string
		opts []astar.Option
	}{
		{"Conn4", nil},
		{"Conn8", []astar.Option{astar.WithDiagonals()}},
		{"Conn8Smoothed", []astar.Option{astar.WithDiagonals(), astar.WithSmoothing(0.25)}},
	} {
		b.Run(tc.name, func(b *testing.B) {
			p, err := astar.NewPlanner(g, tc.opts...)
			if err != nil {
				b.Fatal(err)
			}
			from, to := g.CellToWorld(0, 0), g.CellToWorld(n-1, n-1)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = p.FindPath(context.Background(), from, to)
			}
		})
	}
}
