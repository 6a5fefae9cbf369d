// Command gridpath plans a path through a YAML scenario and prints it, or
// shows it in the terminal with the goal movable by the arrow keys.
//
//	gridpath -map maps/courtyard.yaml
//	gridpath -map maps/warehouse.yaml -tui -watch
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/gridpath/watch"
)

func main() {
	mapPath := flag.String("map", "", "Path to the scenario YAML file")
	tui := flag.Bool("tui", false, "Show the grid in the terminal instead of printing it")
	watchFile := flag.Bool("watch", false, "Re-plan whenever the scenario file changes")
	debounce := flag.Duration("debounce", watch.DefaultDebounce, "Quiet period before a file change is picked up")
	timeout := flag.Duration("timeout", 5*time.Second, "Per-request planning timeout")
	verbose := flag.Bool("v", false, "Log debug records")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *mapPath == "" {
		fmt.Fprintln(os.Stderr, "gridpath: -map is required")
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := newSession(*mapPath, *timeout, log)
	if err := s.load(ctx); err != nil {
		log.Error("load scenario", "path", *mapPath, "err", err)
		os.Exit(1)
	}

	var changes <-chan string
	if *watchFile {
		w, err := watch.New([]string{*mapPath}, watch.WithDebounce(*debounce))
		if err != nil {
			log.Error("watch scenario", "path", *mapPath, "err", err)
			os.Exit(1)
		}
		defer w.Close()
		changes = w.Events
		go func() {
			for err := range w.Errors {
				log.Warn("watcher", "err", err)
			}
		}()
	}

	var err error
	if *tui {
		err = runTUI(ctx, s, changes)
	} else {
		err = runText(ctx, s, changes, os.Stdout)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error("gridpath", "err", err)
		os.Exit(1)
	}
}
