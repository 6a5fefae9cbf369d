package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/mapfile"
	"github.com/katalvlaran/gridpath/render"
)

// session holds the loaded scenario and the latest plan.
type session struct {
	path    string
	timeout time.Duration
	log     *slog.Logger

	scn     *mapfile.Scenario
	planner *astar.Planner
	goal    gridgraph.Vec2

	res *astar.Result
	err error
}

func newSession(path string, timeout time.Duration, log *slog.Logger) *session {
	return &session{path: path, timeout: timeout, log: log}
}

// load reads the scenario and plans from its start to its goal. On error
// the previous scenario stays in place.
func (s *session) load(ctx context.Context) error {
	scn, err := mapfile.Load(s.path)
	if err != nil {
		return err
	}
	p, _, err := scn.Planner(s.log)
	if err != nil {
		return err
	}
	s.scn, s.planner, s.goal = scn, p, scn.Goal
	s.log.Info("scenario loaded", "name", scn.Name,
		"size", fmt.Sprintf("%dx%d", p.Grid().Width, p.Grid().Height),
		"metric", p.Metric())
	s.plan(ctx)
	return nil
}

func (s *session) plan(ctx context.Context) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	s.res, s.err = s.planner.FindPath(ctx, s.scn.Start, s.goal)
	if s.err != nil {
		s.log.Warn("no path", "err", s.err)
		return
	}
	s.log.Debug("planned", "cost", s.res.Cost, "cells", len(s.res.Cells), "waypoints", len(s.res.Waypoints))
}

// moveGoal shifts the goal by whole cells, clamped to the grid, and
// re-plans.
func (s *session) moveGoal(ctx context.Context, dx, dy int) {
	g := s.planner.Grid()
	c := g.WorldToCell(s.goal)
	x := min(max(c.X+dx, 0), g.Width-1)
	y := min(max(c.Y+dy, 0), g.Height-1)
	s.goal = g.CellToWorld(x, y)
	s.plan(ctx)
}

func (s *session) title() string {
	name := s.scn.Name
	if name == "" {
		name = s.path
	}
	return name
}

func (s *session) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s\n%s%s\n", s.title(), render.String(s.planner.Grid(), s.res), render.Caption(s.res, s.err))
	return err
}
