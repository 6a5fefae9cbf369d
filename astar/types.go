// Package astar defines the configuration, metrics, results and sentinel
// errors of the grid planner.
package astar

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors returned by the planner.
var (
	// ErrNilGrid indicates NewPlanner was given a nil grid.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrNoPath indicates the open set emptied before the goal was reached.
	ErrNoPath = errors.New("astar: no path between endpoints")

	// ErrNoWalkableCell indicates an endpoint could not be snapped because
	// every cell is an obstacle.
	ErrNoWalkableCell = gridgraph.ErrNoWalkableCell

	// ErrBudgetExceeded indicates the search stopped at MaxIterations pops.
	ErrBudgetExceeded = errors.New("astar: iteration budget exceeded")

	// ErrBadSlowMultiplier indicates a slow-terrain multiplier below 1.
	ErrBadSlowMultiplier = errors.New("astar: slow multiplier must be >= 1")

	// ErrBadSmoothingRadius indicates a non-positive smoothing radius.
	ErrBadSmoothingRadius = errors.New("astar: smoothing radius must be positive")

	// ErrBadMaxIterations indicates a negative iteration budget.
	ErrBadMaxIterations = errors.New("astar: max iterations must be non-negative")

	// ErrBadMetric indicates an unknown metric name.
	ErrBadMetric = errors.New("astar: unknown metric")
)

// Metric selects the distance function used for both step cost and
// heuristic. Using the same function for both keeps the heuristic
// consistent with the costs it estimates.
type Metric int

const (
	// MetricAuto picks Manhattan under Conn4 and Custom under Conn8.
	MetricAuto Metric = iota
	// Manhattan is |dx|+|dy|.
	Manhattan
	// Euclidean is sqrt(dx²+dy²).
	Euclidean
	// Chebyshev is max(|dx|,|dy|).
	Chebyshev
	// Octile is max + (√2−1)·min.
	Octile
	// Custom is the integer octile convention: 14 per diagonal, 10 per straight step.
	Custom
	// OctileLegacy is max(dx,dy) + (√2−1) + min(dx,dy) over signed deltas.
	// It reproduces estimates from older tooling and is not a proper metric:
	// the planner uses it (floored at 0) only as the heuristic and prices
	// steps as Octile.
	OctileLegacy
)

var metricNames = map[Metric]string{
	MetricAuto:   "auto",
	Manhattan:    "manhattan",
	Euclidean:    "euclidean",
	Chebyshev:    "chebyshev",
	Octile:       "octile",
	Custom:       "custom",
	OctileLegacy: "octile-legacy",
}

// String returns the lower-case metric name.
func (m Metric) String() string {
	if s, ok := metricNames[m]; ok {
		return s
	}
	return fmt.Sprintf("metric(%d)", int(m))
}

// ParseMetric is the inverse of String; matching is case-insensitive and
// the empty string means MetricAuto.
func ParseMetric(s string) (Metric, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return MetricAuto, nil
	}
	for m, name := range metricNames {
		if name == s {
			return m, nil
		}
	}
	return MetricAuto, fmt.Errorf("%w: %q", ErrBadMetric, s)
}

// SegmentCaster reports whether a disc of the given radius swept from one
// world point to another hits solid geometry. It is the collision query
// path smoothing uses on top of grid sampling.
type SegmentCaster interface {
	SegmentBlocked(from, to gridgraph.Vec2, radius float64) bool
}

// Options configures a Planner.
//
// Conn            – 4- or 8-directional adjacency.
// Metric          – distance for step cost and heuristic (MetricAuto by adjacency).
// SlowMultiplier  – step cost factor for entering a Slow cell (≥ 1).
// Smoothing       – reduce the cell path to line-of-sight waypoints.
// SmoothingRadius – clearance radius passed to Caster while smoothing.
// Caster          – optional geometric collision check for smoothing.
// MaxIterations   – pop budget per search; 0 means unlimited.
// RegionCheck     – reject unreachable goals with a flood fill before searching.
// Logger          – receives debug records; nil discards.
type Options struct {
	Conn            gridgraph.Connectivity
	Metric          Metric
	SlowMultiplier  float64
	Smoothing       bool
	SmoothingRadius float64
	Caster          SegmentCaster
	MaxIterations   int
	RegionCheck     bool
	Logger          *slog.Logger
}

// Option represents a functional option for configuring a Planner.
type Option func(*Options)

// DefaultOptions returns the planner defaults:
//   - Conn:            Conn4
//   - Metric:          MetricAuto
//   - SlowMultiplier:  2
//   - Smoothing:       off, SmoothingRadius 0.25
//   - MaxIterations:   0 (unlimited)
func DefaultOptions() Options {
	return Options{
		Conn:            gridgraph.Conn4,
		Metric:          MetricAuto,
		SlowMultiplier:  2,
		SmoothingRadius: 0.25,
	}
}

// WithConnectivity selects 4- or 8-directional adjacency.
func WithConnectivity(c gridgraph.Connectivity) Option {
	return func(o *Options) { o.Conn = c }
}

// WithDiagonals is shorthand for WithConnectivity(gridgraph.Conn8).
func WithDiagonals() Option {
	return WithConnectivity(gridgraph.Conn8)
}

// WithMetric sets the distance metric.
func WithMetric(m Metric) Option {
	return func(o *Options) { o.Metric = m }
}

// WithSlowMultiplier sets the cost factor for entering Slow cells.
// Panics with ErrBadSlowMultiplier if m < 1.
func WithSlowMultiplier(m float64) Option {
	if !(m >= 1) {
		panic(ErrBadSlowMultiplier.Error())
	}
	return func(o *Options) { o.SlowMultiplier = m }
}

// WithSmoothing enables path smoothing with the given clearance radius.
// Panics with ErrBadSmoothingRadius if radius <= 0.
func WithSmoothing(radius float64) Option {
	if !(radius > 0) {
		panic(ErrBadSmoothingRadius.Error())
	}
	return func(o *Options) {
		o.Smoothing = true
		o.SmoothingRadius = radius
	}
}

// WithCaster installs the geometric collision check used by smoothing.
func WithCaster(c SegmentCaster) Option {
	return func(o *Options) { o.Caster = c }
}

// WithMaxIterations caps the number of cells a search may expand.
// Panics with ErrBadMaxIterations if n < 0.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic(ErrBadMaxIterations.Error())
	}
	return func(o *Options) { o.MaxIterations = n }
}

// WithRegionCheck makes every request flood-fill the grid first and fail
// fast with ErrNoPath when start and goal lie in different regions.
func WithRegionCheck() Option {
	return func(o *Options) { o.RegionCheck = true }
}

// WithLogger routes debug records to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// Waypoint is one point of a returned route.
type Waypoint struct {
	Position gridgraph.Vec2
}

// Result is the full outcome of a successful FindPath.
type Result struct {
	// Waypoints is the route handed to steering, smoothed when enabled.
	Waypoints []Waypoint
	// Cells is the raw cell-by-cell path, start and goal inclusive.
	Cells []gridgraph.Point
	// Cost is the accumulated G of the goal.
	Cost float64
	// Expanded counts cells popped from the open set.
	Expanded int
	// Start and Goal are the endpoints after snapping.
	Start, Goal gridgraph.Point
}
