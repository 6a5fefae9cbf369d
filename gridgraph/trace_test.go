package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

func trace(g *gridgraph.Grid, a, b gridgraph.Vec2) []gridgraph.Point {
	var out []gridgraph.Point
	g.Trace(a, b, func(c *gridgraph.Cell) bool {
		out = append(out, c.Point())
		return true
	})
	return out
}

func TestTrace(t *testing.T) {
	g, err := gridgraph.NewGrid(4, 4, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	tests := []struct {
		name string
		a, b gridgraph.Vec2
		want []gridgraph.Point
	}{
		{"single cell", gridgraph.Vec2{X: 1.5, Y: 1.5}, gridgraph.Vec2{X: 1.2, Y: 1.8},
			[]gridgraph.Point{{X: 1, Y: 1}}},
		{"horizontal backwards", gridgraph.Vec2{X: 2.5, Y: 0.5}, gridgraph.Vec2{X: 0.5, Y: 0.5},
			[]gridgraph.Point{{X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}}},
		{"shallow", gridgraph.Vec2{X: 0.5, Y: 0.5}, gridgraph.Vec2{X: 2.5, Y: 1.5},
			[]gridgraph.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}}},
		// passes exactly through the corner at (1,2)
		{"steep", gridgraph.Vec2{X: 0.5, Y: 0.5}, gridgraph.Vec2{X: 1.5, Y: 3.5},
			[]gridgraph.Point{
				{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 1, Y: 3},
			}},
		{"through corners", gridgraph.Vec2{X: 0.5, Y: 0.5}, gridgraph.Vec2{X: 2.5, Y: 2.5},
			[]gridgraph.Point{
				{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1},
				{X: 2, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2},
			}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, trace(g, tc.a, tc.b))
		})
	}
}

func TestTrace_StopsEarly(t *testing.T) {
	g, err := gridgraph.Parse([]string{"..#.."}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	var seen []gridgraph.Point
	g.Trace(gridgraph.Vec2{X: 0.5, Y: 0.5}, gridgraph.Vec2{X: 4.5, Y: 0.5}, func(c *gridgraph.Cell) bool {
		seen = append(seen, c.Point())
		return c.Class != gridgraph.Obstacle
	})
	assert.Equal(t, []gridgraph.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, seen)
}
