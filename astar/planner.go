package astar

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/pqueue"
)

// ctxCheckInterval is how many pops pass between cancellation checks.
const ctxCheckInterval = 256

// Planner answers path requests over one shared grid. Requests are
// serialized: the search writes its scratch state into the grid's cells,
// so only one may run per grid at a time.
type Planner struct {
	mu     sync.Mutex
	grid   *gridgraph.Grid
	opts   Options
	metric Metric
	log    *slog.Logger

	open *pqueue.Heap[*gridgraph.Cell]
	nbrs []int
}

// NewPlanner builds a planner over g. The open-set heap is allocated once
// with room for every cell of the grid.
// Returns ErrNilGrid if g is nil.
func NewPlanner(g *gridgraph.Grid, opts ...Option) (*Planner, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Planner{
		grid:   g,
		opts:   cfg,
		metric: cfg.resolveMetric(),
		log:    logger,
		open:   pqueue.New[*gridgraph.Cell](g.Len(), lessCell),
		nbrs:   make([]int, 0, 8),
	}, nil
}

// Grid returns the grid the planner searches.
func (p *Planner) Grid() *gridgraph.Grid { return p.grid }

// Options returns the effective configuration.
func (p *Planner) Options() Options { return p.opts }

// Metric returns the metric in use after MetricAuto resolution.
func (p *Planner) Metric() Metric { return p.metric }

// Refresh re-classifies the grid through cl while holding the request lock,
// so it never interleaves with a running search.
func (p *Planner) Refresh(cl gridgraph.Classifier, radius float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.grid.Refresh(cl, radius)
}

// Stamp classifies the footprint of a dynamic obstacle, the block of
// (2·halfW+1)×(2·halfH+1) cells centered on the cell under center, while
// holding the request lock. It returns the stamped cell indices.
func (p *Planner) Stamp(center gridgraph.Vec2, halfW, halfH int, c gridgraph.Classification) []int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.grid.StampRect(center, halfW, halfH, c)
}

// RequestPath plans a route between two world positions and returns its
// waypoints. An empty result means no route exists (or none could be
// found within the iteration budget); callers should hold position.
func (p *Planner) RequestPath(from, to gridgraph.Vec2) []Waypoint {
	res, err := p.FindPath(context.Background(), from, to)
	if err != nil {
		return []Waypoint{}
	}
	return res.Waypoints
}

// FindPath plans a route between two world positions.
//
// Steps:
//  1. Resolve both points to cells (clamped to the grid).
//  2. Snap obstacle endpoints to the closest non-obstacle cell.
//  3. Reset the search scratch of every cell.
//  4. Best-first search ordered by (F, H).
//  5. Retrace parent links into a start→goal cell path.
//  6. Smooth into line-of-sight waypoints when enabled.
//
// Errors: ErrNoWalkableCell (wrapped) when an endpoint cannot be snapped,
// ErrNoPath, ErrBudgetExceeded, or ctx.Err() on cancellation.
func (p *Planner) FindPath(ctx context.Context, from, to gridgraph.Vec2) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	g := p.grid
	start, err := p.snap("start", g.WorldToCell(from))
	if err != nil {
		return nil, err
	}
	goal, err := p.snap("goal", g.WorldToCell(to))
	if err != nil {
		return nil, err
	}

	if p.opts.RegionCheck {
		labels := g.RegionLabels(p.opts.Conn)
		if labels[start.Index()] != labels[goal.Index()] {
			p.log.Debug("astar: endpoints in different regions",
				"start", start.Point(), "goal", goal.Point())
			return nil, fmt.Errorf("%w: %v and %v are not connected", ErrNoPath, start.Point(), goal.Point())
		}
	}

	g.ResetSearch()
	expanded, err := p.search(ctx, start, goal)
	if err != nil {
		p.log.Debug("astar: search failed",
			"start", start.Point(), "goal", goal.Point(), "expanded", expanded, "err", err)
		return nil, err
	}

	cells := p.retrace(start, goal)
	res := &Result{
		Cells:    cells,
		Cost:     goal.G,
		Expanded: expanded,
		Start:    start.Point(),
		Goal:     goal.Point(),
	}
	raw := make([]gridgraph.Vec2, len(cells))
	for i, c := range cells {
		raw[i] = g.CellToWorld(c.X, c.Y)
	}
	if p.opts.Smoothing {
		smoothed := p.smooth(raw)
		p.log.Debug("astar: smoothed path", "raw", len(raw), "smoothed", len(smoothed))
		raw = smoothed
	}
	res.Waypoints = make([]Waypoint, len(raw))
	for i, w := range raw {
		res.Waypoints[i] = Waypoint{Position: w}
	}
	p.log.Debug("astar: path found",
		"start", res.Start, "goal", res.Goal, "cells", len(cells), "cost", res.Cost, "expanded", expanded)

	return res, nil
}

// snap returns c, or the closest non-obstacle cell when c is an obstacle.
func (p *Planner) snap(which string, c *gridgraph.Cell) (*gridgraph.Cell, error) {
	if c.Class != gridgraph.Obstacle {
		return c, nil
	}
	s, err := p.grid.ClosestWalkable(c.Index())
	if err != nil {
		return nil, fmt.Errorf("astar: %s %v: %w", which, c.Point(), err)
	}
	p.log.Debug("astar: snapped endpoint", "endpoint", which, "from", c.Point(), "to", s.Point())
	return s, nil
}

// search runs the best-first loop and returns the number of expanded cells.
// On success the goal's Parent chain leads back to start.
func (p *Planner) search(ctx context.Context, start, goal *gridgraph.Cell) (int, error) {
	g := p.grid
	open := p.open
	open.Clear()
	closed := mapset.New[int]()

	start.Parent = start.Index()
	start.H = p.heuristic(start, goal)
	open.Add(start)

	expanded := 0
	for open.Len() > 0 {
		if p.opts.MaxIterations > 0 && expanded >= p.opts.MaxIterations {
			return expanded, fmt.Errorf("%w: %d expansions", ErrBudgetExceeded, expanded)
		}
		if expanded%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return expanded, err
			}
		}

		cur := open.RemoveFirst()
		closed.Put(cur.Index())
		expanded++
		if cur == goal {
			return expanded, nil
		}

		p.nbrs = g.Neighbors(cur.Index(), p.opts.Conn, p.nbrs[:0])
		for _, ni := range p.nbrs {
			if closed.Has(ni) {
				continue
			}
			nb := g.At(ni)
			if nb.Class == gridgraph.Obstacle {
				continue
			}

			cost := cur.G + p.stepCost(cur, nb)
			inOpen := open.Contains(nb)
			if inOpen && cost >= nb.G {
				continue
			}
			nb.G = cost
			nb.H = p.heuristic(nb, goal)
			nb.Parent = cur.Index()
			if inOpen {
				open.UpdateItem(nb)
			} else {
				open.Add(nb)
			}
		}
	}

	return expanded, fmt.Errorf("%w: %v to %v", ErrNoPath, start.Point(), goal.Point())
}

// stepCost is the metric distance between adjacent cells, scaled when the
// destination is slow terrain. OctileLegacy only shapes the estimate;
// steps under it are priced as Octile so no move is ever free or negative.
func (p *Planner) stepCost(from, to *gridgraph.Cell) float64 {
	m := p.metric
	if m == OctileLegacy {
		m = Octile
	}
	d := m.Distance(from.X-to.X, from.Y-to.Y)
	if to.Class == gridgraph.Slow {
		d *= p.opts.SlowMultiplier
	}
	return d
}

func (p *Planner) heuristic(c, goal *gridgraph.Cell) float64 {
	return math.Max(0, p.metric.Distance(c.X-goal.X, c.Y-goal.Y))
}

// retrace walks parent links from goal to the self-parented start and
// returns the path in start→goal order.
func (p *Planner) retrace(start, goal *gridgraph.Cell) []gridgraph.Point {
	var path []gridgraph.Point
	cur := goal
	for steps := 0; steps <= p.grid.Len(); steps++ {
		path = append(path, cur.Point())
		if cur == start || cur.Parent == cur.Index() || cur.Parent < 0 {
			break
		}
		cur = p.grid.At(cur.Parent)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// lessCell orders the open set by F, then by H so that among equal totals
// the cell believed closer to the goal is expanded first.
func lessCell(a, b *gridgraph.Cell) bool {
	fa, fb := a.F(), b.F()
	if fa != fb {
		return fa < fb
	}
	return a.H < b.H
}
