package physics

import (
	"fmt"
	"math"
	"sync"

	"github.com/jakecoffman/cp"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// World is a set of static obstacle and slow-zone shapes.
type World struct {
	mu    sync.Mutex
	space *cp.Space
	count [2]int
}

// New returns an empty world.
func New() *World {
	return &World{space: cp.NewSpace()}
}

// Len returns the number of shapes of kind k.
func (w *World) Len(k Kind) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count[k]
}

// AddBox adds an axis-aligned box spanning lo..hi.
func (w *World) AddBox(k Kind, lo, hi gridgraph.Vec2) error {
	if hi.X <= lo.X || hi.Y <= lo.Y {
		return fmt.Errorf("%w: box %v..%v", ErrDegenerateShape, lo, hi)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	bb := cp.BB{L: lo.X, B: lo.Y, R: hi.X, T: hi.Y}
	w.add(k, cp.NewBox2(w.space.StaticBody, bb, 0))
	return nil
}

// AddCircle adds a circle of radius r around center.
func (w *World) AddCircle(k Kind, center gridgraph.Vec2, r float64) error {
	if r <= 0 {
		return fmt.Errorf("%w: circle radius %g", ErrDegenerateShape, r)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.add(k, cp.NewCircle(w.space.StaticBody, r, vec(center)))
	return nil
}

func (w *World) add(k Kind, shape *cp.Shape) {
	shape.SetFilter(k.filter())
	w.space.AddShape(shape)
	w.count[k]++
}

// Classify reports Obstacle if a disc of the given radius around pos
// overlaps an obstacle shape, otherwise Slow if it overlaps a slow zone,
// otherwise Walkable.
func (w *World) Classify(pos gridgraph.Vec2, radius float64) gridgraph.Classification {
	w.mu.Lock()
	defer w.mu.Unlock()
	p := vec(pos)
	if info := w.space.PointQueryNearest(p, radius, obstacleFilter); info.Shape != nil {
		return gridgraph.Obstacle
	}
	if info := w.space.PointQueryNearest(p, radius, slowFilter); info.Shape != nil {
		return gridgraph.Slow
	}
	return gridgraph.Walkable
}

// SegmentBlocked reports whether a disc of the given radius moving from
// one point to the other touches an obstacle. Slow zones never block.
//
// Candidates come from a bounding-box query grown by radius; each one is
// then swept individually, since the space-level segment query prunes its
// tree with the bare segment and misses shapes reached only by the disc.
func (w *World) SegmentBlocked(from, to gridgraph.Vec2, radius float64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	a, b := vec(from), vec(to)
	bb := cp.BB{
		L: math.Min(a.X, b.X) - radius,
		B: math.Min(a.Y, b.Y) - radius,
		R: math.Max(a.X, b.X) + radius,
		T: math.Max(a.Y, b.Y) + radius,
	}
	hit := false
	w.space.BBQuery(bb, obstacleFilter, func(shape *cp.Shape, _ interface{}) {
		if hit {
			return
		}
		var info cp.SegmentQueryInfo
		hit = shape.SegmentQuery(a, b, radius, &info)
	}, nil)
	return hit
}

// FromGrid builds a world whose shapes cover the obstacle and slow cells
// of g. Contiguous cells of the same class are merged greedily into
// rectangles, widest first, so large walls become a few boxes.
//
// Complexity: O(W·H) plus the merged area.
func FromGrid(g *gridgraph.Grid) *World {
	w := New()
	done := make([]bool, g.Len())
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			idx := g.Index(x, y)
			if done[idx] {
				continue
			}
			class := g.At(idx).Class
			if class == gridgraph.Walkable {
				done[idx] = true
				continue
			}

			// 1) extend right while the class matches
			rw := 1
			for x+rw < g.Width {
				i := g.Index(x+rw, y)
				if done[i] || g.At(i).Class != class {
					break
				}
				rw++
			}

			// 2) extend down while the whole row matches
			rh := 1
		rows:
			for y+rh < g.Height {
				for xi := x; xi < x+rw; xi++ {
					i := g.Index(xi, y+rh)
					if done[i] || g.At(i).Class != class {
						break rows
					}
				}
				rh++
			}

			// 3) emit one box and mark its cells
			lo := gridgraph.Vec2{
				X: g.Origin.X + float64(x)*g.CellSize,
				Y: g.Origin.Y + float64(y)*g.CellSize,
			}
			hi := lo.Add(gridgraph.Vec2{X: float64(rw) * g.CellSize, Y: float64(rh) * g.CellSize})
			kind := KindObstacle
			if class == gridgraph.Slow {
				kind = KindSlow
			}
			_ = w.AddBox(kind, lo, hi) // cell sizes are positive
			for yy := y; yy < y+rh; yy++ {
				for xx := x; xx < x+rw; xx++ {
					done[g.Index(xx, yy)] = true
				}
			}
		}
	}
	return w
}

func vec(v gridgraph.Vec2) cp.Vector { return cp.Vector{X: v.X, Y: v.Y} }
