// Package gridgraph defines the cell arena, classification, options and
// world-space types shared by the search packages.
package gridgraph

import "math"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// Classification is the traversal class of a cell.
type Classification uint8

const (
	// Walkable cells cost the plain step distance.
	Walkable Classification = iota
	// Slow cells are traversable at a penalty.
	Slow
	// Obstacle cells are never entered by a search.
	Obstacle
)

// String returns the lower-case name of the classification.
func (c Classification) String() string {
	switch c {
	case Walkable:
		return "walkable"
	case Slow:
		return "slow"
	case Obstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// Glyph returns the single-character form used by Parse and the renderers.
func (c Classification) Glyph() rune {
	switch c {
	case Slow:
		return '~'
	case Obstacle:
		return '#'
	default:
		return '.'
	}
}

// ClassFromGlyph is the inverse of Glyph.
func ClassFromGlyph(r rune) (Classification, bool) {
	switch r {
	case '.':
		return Walkable, true
	case '~':
		return Slow, true
	case '#':
		return Obstacle, true
	}
	return Walkable, false
}

// Vec2 is a point or displacement in world space.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v*k.
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }

// Lerp interpolates from v to o by t in [0,1].
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Cell is one grid square. X, Y and World never change after the grid is
// built; Class is rewritten by refreshes; G, H, Parent and the heap index
// are scratch space owned by whichever search is running.
type Cell struct {
	X, Y  int
	Class Classification
	World Vec2 // center of the cell in world space

	G      float64 // accumulated cost from the start
	H      float64 // heuristic estimate to the goal
	Parent int     // arena index of the predecessor; -1 none, own index for the start

	idx     int // arena index, fixed
	heapIdx int
}

// F returns G+H, the open-set priority.
func (c *Cell) F() float64 { return c.G + c.H }

// Index returns the cell's position in the grid arena.
func (c *Cell) Index() int { return c.idx }

// Point returns the grid coordinate of the cell.
func (c *Cell) Point() Point { return Point{c.X, c.Y} }

// HeapIndex implements pqueue.Item.
func (c *Cell) HeapIndex() int { return c.heapIdx }

// SetHeapIndex implements pqueue.Item.
func (c *Cell) SetHeapIndex(i int) { c.heapIdx = i }

// Reset clears the search scratch fields.
func (c *Cell) Reset() {
	c.G = 0
	c.H = 0
	c.Parent = -1
	c.heapIdx = -1
}

// Classifier decides the class of the area around a world position. It is
// the obstacle/terrain scan that Refresh delegates to.
type Classifier interface {
	Classify(pos Vec2, radius float64) Classification
}

// ClassifierFunc adapts a plain function to Classifier.
type ClassifierFunc func(pos Vec2, radius float64) Classification

// Classify calls f.
func (f ClassifierFunc) Classify(pos Vec2, radius float64) Classification { return f(pos, radius) }

// GridOptions contains the geometry of a grid.
type GridOptions struct {
	// CellSize is the world-space edge length of one cell.
	CellSize float64
	// Origin is the world position of the grid's minimum corner (cell 0,0).
	Origin Vec2
}

// DefaultGridOptions returns CellSize=1 with the origin at (0,0).
func DefaultGridOptions() GridOptions {
	return GridOptions{CellSize: 1}
}

// Grid is a fixed-size arena of cells in row-major order. Dimensions and
// geometry are immutable; classifications and search scratch are not.
// A Grid is not safe for concurrent mutation.
type Grid struct {
	Width, Height int
	CellSize      float64
	Origin        Vec2

	cells []Cell
}
