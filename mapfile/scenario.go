package mapfile

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/physics"
)

// Load reads and parses the scenario at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mapfile: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a YAML scenario, fills defaults and validates it.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return nil, fmt.Errorf("mapfile: decode: %w", err)
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Encode writes s as YAML.
func (s *Scenario) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("mapfile: encode: %w", err)
	}
	return enc.Close()
}

func (s *Scenario) applyDefaults() {
	if s.CellSize == 0 {
		s.CellSize = DefaultCellSize
	}
	if s.SlowMultiplier == 0 {
		s.SlowMultiplier = DefaultSlowMultiplier
	}
	if s.Smoothing.Enabled && s.Smoothing.Radius == 0 {
		s.Smoothing.Radius = DefaultSmoothingRadius
	}
	if s.ClassifyRadius == 0 {
		s.ClassifyRadius = DefaultClassifyFactor * s.CellSize
	}
}

// Validate checks every setting without building anything.
func (s *Scenario) Validate() error {
	if len(s.Rows) == 0 {
		return ErrNoRows
	}
	if _, err := astar.ParseMetric(s.Metric); err != nil {
		return fmt.Errorf("%w: %q", ErrBadMetric, s.Metric)
	}
	switch {
	case s.CellSize <= 0:
		return fmt.Errorf("%w: cell_size %g", ErrBadValue, s.CellSize)
	case s.SlowMultiplier < 1:
		return fmt.Errorf("%w: slow_multiplier %g", ErrBadValue, s.SlowMultiplier)
	case s.Smoothing.Enabled && s.Smoothing.Radius <= 0:
		return fmt.Errorf("%w: smoothing.radius %g", ErrBadValue, s.Smoothing.Radius)
	case s.MaxIterations < 0:
		return fmt.Errorf("%w: max_iterations %d", ErrBadValue, s.MaxIterations)
	case s.ClassifyRadius < 0:
		return fmt.Errorf("%w: classify_radius %g", ErrBadValue, s.ClassifyRadius)
	}
	for i, sh := range s.Obstacles {
		if err := sh.validate(); err != nil {
			return fmt.Errorf("obstacles[%d]: %w", i, err)
		}
	}
	for i, sh := range s.SlowZones {
		if err := sh.validate(); err != nil {
			return fmt.Errorf("slow_zones[%d]: %w", i, err)
		}
	}
	return nil
}

func (sh Shape) validate() error {
	box := sh.Min != nil && sh.Max != nil
	circle := sh.Center != nil
	switch {
	case box && circle, !box && !circle, sh.IsBox() && !box:
		return fmt.Errorf("%w: need either min/max or center/radius", ErrBadShape)
	case box && (sh.Max.X <= sh.Min.X || sh.Max.Y <= sh.Min.Y):
		return fmt.Errorf("%w: empty box %v..%v", ErrBadShape, *sh.Min, *sh.Max)
	case circle && sh.Radius <= 0:
		return fmt.Errorf("%w: circle radius %g", ErrBadShape, sh.Radius)
	}
	return nil
}

// GridOptions returns the grid geometry of s.
func (s *Scenario) GridOptions() gridgraph.GridOptions {
	return gridgraph.GridOptions{CellSize: s.CellSize, Origin: s.Origin}
}

// Build returns the classified grid and the physics world of s. Every
// cell center is tested against the shapes with ClassifyRadius; a hit only
// ever makes a cell more restrictive than its row glyph.
func (s *Scenario) Build() (*gridgraph.Grid, *physics.World, error) {
	g, err := gridgraph.Parse(s.Rows, s.GridOptions())
	if err != nil {
		return nil, nil, fmt.Errorf("mapfile: rows: %w", err)
	}
	w := physics.FromGrid(g)
	if err = s.addShapes(w); err != nil {
		return nil, nil, err
	}
	if len(s.Obstacles)+len(s.SlowZones) > 0 {
		for i := 0; i < g.Len(); i++ {
			c := g.At(i)
			if k := w.Classify(c.World, s.ClassifyRadius); k > c.Class {
				c.Class = k
			}
		}
	}
	return g, w, nil
}

// Grid returns only the classified grid of s.
func (s *Scenario) Grid() (*gridgraph.Grid, error) {
	g, _, err := s.Build()
	return g, err
}

// World returns only the physics world of s.
func (s *Scenario) World() (*physics.World, error) {
	_, w, err := s.Build()
	return w, err
}

func (s *Scenario) addShapes(w *physics.World) error {
	add := func(k physics.Kind, sh Shape) error {
		if sh.IsBox() {
			return w.AddBox(k, *sh.Min, *sh.Max)
		}
		return w.AddCircle(k, *sh.Center, sh.Radius)
	}
	for i, sh := range s.Obstacles {
		if err := add(physics.KindObstacle, sh); err != nil {
			return fmt.Errorf("mapfile: obstacles[%d]: %w", i, err)
		}
	}
	for i, sh := range s.SlowZones {
		if err := add(physics.KindSlow, sh); err != nil {
			return fmt.Errorf("mapfile: slow_zones[%d]: %w", i, err)
		}
	}
	return nil
}

// Options translates the planner settings of s. caster, when non-nil, is
// installed for smoothing.
func (s *Scenario) Options(caster astar.SegmentCaster) []astar.Option {
	metric, _ := astar.ParseMetric(s.Metric) // validated on Parse
	opts := []astar.Option{
		astar.WithMetric(metric),
		astar.WithSlowMultiplier(s.SlowMultiplier),
		astar.WithMaxIterations(s.MaxIterations),
	}
	if s.Diagonal {
		opts = append(opts, astar.WithDiagonals())
	}
	if s.Smoothing.Enabled {
		opts = append(opts, astar.WithSmoothing(s.Smoothing.Radius))
	}
	if caster != nil {
		opts = append(opts, astar.WithCaster(caster))
	}
	if s.RegionCheck {
		opts = append(opts, astar.WithRegionCheck())
	}
	return opts
}

// Planner builds the grid and world of s and returns a planner configured
// from it, using the world as its smoothing caster.
func (s *Scenario) Planner(log *slog.Logger) (*astar.Planner, *physics.World, error) {
	g, w, err := s.Build()
	if err != nil {
		return nil, nil, err
	}
	opts := s.Options(w)
	if log != nil {
		opts = append(opts, astar.WithLogger(log.With("scenario", s.Name)))
	}
	p, err := astar.NewPlanner(g, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("mapfile: planner: %w", err)
	}
	return p, w, nil
}
