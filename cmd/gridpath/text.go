package main

import (
	"context"
	"io"
)

// runText prints the plan, then reprints it after every change until ctx
// ends. With a nil changes channel it prints once.
func runText(ctx context.Context, s *session, changes <-chan string, out io.Writer) error {
	if err := s.writeText(out); err != nil {
		return err
	}
	if changes == nil {
		return nil
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-changes:
			if !ok {
				return nil
			}
			if err := s.load(ctx); err != nil {
				s.log.Warn("reload failed, keeping previous scenario", "err", err)
				continue
			}
			if err := s.writeText(out); err != nil {
				return err
			}
		}
	}
}
