package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mrsobakin/armada/internal/clock"
	"github.com/mrsobakin/armada/internal/session"
)

// Feeds commands from `in` to the session, one per line, writing
// replies to `out`. The budget only runs while waiting for input.
//
// Returns nil once the fleet is sunk or `in` is exhausted, and the
// cancellation cause if `ctx` is done first.
func play(ctx context.Context, budget *clock.Budget, s *session.Session, in io.Reader, out io.Writer) error {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		var line string
		var ok bool

		budget.Resume()
		select {
		case <-ctx.Done():
			budget.Pause()
			return context.Cause(ctx)
		case line, ok = <-lines:
		}
		budget.Pause()

		if !ok {
			return nil
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		reply, err := s.Exec(line)
		if err != nil {
			fmt.Fprintln(out, "error:", err)
			continue
		}
		fmt.Fprintln(out, reply)

		if s.Phase() == session.PhaseOver {
			return nil
		}
	}
}

func printSummary(w io.Writer, stats session.Stats, spent time.Duration) {
	verdict := "fleet still afloat"
	if stats.Over {
		verdict = "fleet sunk"
	}

	fmt.Fprintf(w, "%s: %d shots, %d hits, %d of %d ships sunk, %d repeated, %d invalid, %s thinking\n",
		verdict, stats.Shots, stats.Hits, stats.Sinks, stats.Ships, stats.Repeated, stats.Invalid, spent.Round(time.Millisecond))
}
