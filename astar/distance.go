package astar

import (
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

const sqrt2m1 = math.Sqrt2 - 1

// Distance returns the metric's value for the displacement (dx, dy) in
// cells. All metrics except OctileLegacy ignore the sign of the deltas.
// MetricAuto is treated as Manhattan; the planner resolves it first.
func (m Metric) Distance(dx, dy int) float64 {
	if m == OctileLegacy {
		hi, lo := float64(max(dx, dy)), float64(min(dx, dy))
		return hi + sqrt2m1 + lo
	}

	ax, ay := math.Abs(float64(dx)), math.Abs(float64(dy))
	hi, lo := math.Max(ax, ay), math.Min(ax, ay)

	switch m {
	case Euclidean:
		return math.Hypot(ax, ay)
	case Chebyshev:
		return hi
	case Octile:
		return hi + sqrt2m1*lo
	case Custom:
		return 14*lo + 10*(hi-lo)
	default:
		return ax + ay
	}
}

// resolveMetric replaces MetricAuto with the adjacency's natural metric.
func (o Options) resolveMetric() Metric {
	if o.Metric != MetricAuto {
		return o.Metric
	}
	if o.Conn == gridgraph.Conn8 {
		return Custom
	}
	return Manhattan
}
