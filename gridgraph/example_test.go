package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// ExampleGrid_Regions splits a map into areas a walker cannot leave.
func ExampleGrid_Regions() {
	g, _ := gridgraph.Parse([]string{
		"..#..",
		"..#..",
		"#####",
	}, gridgraph.DefaultGridOptions())

	for _, r := range g.Regions(gridgraph.Conn4) {
		x, y := g.Coordinate(r[0])
		fmt.Printf("region at (%d,%d): %d cells\n", x, y, len(r))
	}
	// Output:
	// region at (0,0): 4 cells
	// region at (3,0): 4 cells
}

// ExampleGrid_ClosestWalkable snaps an endpoint that landed in a wall.
func ExampleGrid_ClosestWalkable() {
	g, _ := gridgraph.Parse([]string{
		"..#..",
		"..#..",
	}, gridgraph.DefaultGridOptions())

	c, err := g.ClosestWalkable(g.Index(2, 0))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("(%d,%d)\n", c.X, c.Y)
	// Output: (1,0)
}

// ExampleGrid_WorldToCell maps world positions onto a grid whose corner
// sits at (-1,2) with half-unit cells.
func ExampleGrid_WorldToCell() {
	g, _ := gridgraph.NewGrid(4, 4, gridgraph.GridOptions{CellSize: 0.5, Origin: gridgraph.Vec2{X: -1, Y: 2}})

	c := g.WorldToCell(gridgraph.Vec2{X: -0.2, Y: 3.1})
	fmt.Printf("cell (%d,%d) center %.2f,%.2f\n", c.X, c.Y, c.World.X, c.World.Y)
	// Output: cell (1,2) center -0.25,3.25
}
