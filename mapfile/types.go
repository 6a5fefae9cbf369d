package mapfile

import (
	"errors"

	"github.com/katalvlaran/gridpath/gridgraph"
)

var (
	// ErrNoRows indicates a scenario without grid rows.
	ErrNoRows = errors.New("mapfile: scenario has no rows")
	// ErrBadMetric indicates an unknown metric name.
	ErrBadMetric = errors.New("mapfile: unknown metric")
	// ErrBadShape indicates a shape that is neither a box nor a circle, or
	// has no area.
	ErrBadShape = errors.New("mapfile: invalid shape")
	// ErrBadValue indicates a numeric setting outside its range.
	ErrBadValue = errors.New("mapfile: value out of range")
)

// Defaults applied to zero-valued settings.
const (
	DefaultCellSize        = 1.0
	DefaultSlowMultiplier  = 2.0
	DefaultSmoothingRadius = 0.25

	// DefaultClassifyFactor scales CellSize into the default classify radius.
	DefaultClassifyFactor = 0.25
)

// Shape is either a box (Min and Max set) or a circle (Center and Radius).
type Shape struct {
	Min    *gridgraph.Vec2 `yaml:"min,omitempty"`
	Max    *gridgraph.Vec2 `yaml:"max,omitempty"`
	Center *gridgraph.Vec2 `yaml:"center,omitempty"`
	Radius float64         `yaml:"radius,omitempty"`
}

// IsBox reports whether s is written in box form.
func (s Shape) IsBox() bool { return s.Min != nil || s.Max != nil }

// Smoothing holds the path smoothing settings.
type Smoothing struct {
	Enabled bool    `yaml:"enabled"`
	Radius  float64 `yaml:"radius,omitempty"`
}

// Scenario is the decoded form of a map file.
type Scenario struct {
	Name           string         `yaml:"name,omitempty"`
	CellSize       float64        `yaml:"cell_size,omitempty"`
	Origin         gridgraph.Vec2 `yaml:"origin"`
	Diagonal       bool           `yaml:"diagonal,omitempty"`
	Metric         string         `yaml:"metric,omitempty"`
	SlowMultiplier float64        `yaml:"slow_multiplier,omitempty"`
	Smoothing      Smoothing      `yaml:"smoothing"`
	MaxIterations  int            `yaml:"max_iterations,omitempty"`
	RegionCheck    bool           `yaml:"region_check,omitempty"`
	ClassifyRadius float64        `yaml:"classify_radius,omitempty"`
	Rows           []string       `yaml:"rows"`
	Obstacles      []Shape        `yaml:"obstacles,omitempty"`
	SlowZones      []Shape        `yaml:"slow_zones,omitempty"`
	Start          gridgraph.Vec2 `yaml:"start"`
	Goal           gridgraph.Vec2 `yaml:"goal"`
}
