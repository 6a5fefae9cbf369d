package main

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/render"
)

// runTUI shows the plan on a tcell screen. Arrow keys move the goal,
// r reloads the file, q or Esc quits.
func runTUI(ctx context.Context, s *session, changes <-chan string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(screen, events, done)

	th := render.DefaultTheme()
	status := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	draw := func() {
		screen.Clear()
		render.DrawText(screen, 0, 0, s.title(), status.Bold(true))
		render.Draw(screen, s.planner.Grid(), s.res, 0, 2, th)
		y := 3 + s.planner.Grid().Height
		render.DrawText(screen, 0, y, render.Caption(s.res, s.err), status)
		render.DrawText(screen, 0, y+1, "arrows: move goal  r: reload  q: quit", tcell.StyleDefault.Foreground(tcell.ColorGray))
		screen.Show()
	}
	reload := func() {
		if err := s.load(ctx); err != nil {
			s.log.Warn("reload failed, keeping previous scenario", "err", err)
		}
	}

	draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			reload()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
					return nil
				case ev.Key() == tcell.KeyUp:
					s.moveGoal(ctx, 0, -1)
				case ev.Key() == tcell.KeyDown:
					s.moveGoal(ctx, 0, 1)
				case ev.Key() == tcell.KeyLeft:
					s.moveGoal(ctx, -1, 0)
				case ev.Key() == tcell.KeyRight:
					s.moveGoal(ctx, 1, 0)
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
					return nil
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
					reload()
				}
			}
		}
		draw()
	}
}

type eventSource interface {
	PollEvent() tcell.Event
}

// pumpEvents forwards screen events until the screen is finalized or done
// is closed.
func pumpEvents(src eventSource, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := src.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
