package session

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mrsobakin/armada/internal/game/field"
)

// Executes a single text command and returns the reply.
//
//	place <category> <compass> <row> <column>  ok | rejected
//	random                                     ok
//	start                                      ok
//	fire <row> <column>                        invalid | repeated | miss | hit | kill
//	shot <row> <column>                        same as fire
//	get <counter>                              integer
//	win                                        yes | no
//	board                                      rendered shots
//	fleet                                      rendered ships
//	status                                     ship listing
func (s *Session) Exec(cmd string) (string, error) {
	args := strings.Fields(cmd)
	if len(args) == 0 {
		return "", fmt.Errorf("%w: empty command", ErrUnknownCommand)
	}

	switch args[0] {
	case "place":
		if len(args) != 5 {
			return "", malformed(cmd)
		}

		p, err := field.ParsePlacement(strings.Join(args[1:], " "))
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrMalformedCommand, err)
		}

		placed, err := s.Place(p.Category, p.Compass, p.Anchor)
		if err != nil {
			return "", err
		}
		if !placed {
			return "rejected", nil
		}
		return "ok", nil

	case "random":
		if len(args) != 1 {
			return "", malformed(cmd)
		}
		if err := s.Randomize(nil); err != nil {
			return "", err
		}
		return "ok", nil

	case "start":
		if len(args) != 1 {
			return "", malformed(cmd)
		}
		if err := s.Start(); err != nil {
			return "", err
		}
		return "ok", nil

	case "fire", "shot":
		if len(args) != 3 {
			return "", malformed(cmd)
		}

		row, rowErr := strconv.Atoi(args[1])
		column, columnErr := strconv.Atoi(args[2])
		if rowErr != nil || columnErr != nil {
			return "", malformed(cmd)
		}

		report, err := s.Fire(field.NewPosition(row, column))
		if err != nil {
			return "", err
		}
		return report.Result.String(), nil

	case "get":
		if len(args) != 2 {
			return "", malformed(cmd)
		}
		return s.counter(args[1])

	case "win", "board", "fleet", "status":
		if len(args) != 1 {
			return "", malformed(cmd)
		}

		switch args[0] {
		case "win":
			if s.Stats().Over {
				return "yes", nil
			}
			return "no", nil
		case "board":
			return render(s.Board)
		case "fleet":
			return render(s.Fleet)
		default:
			return render(s.Status)
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
}

func (s *Session) counter(name string) (string, error) {
	stats := s.Stats()

	var value int
	switch name {
	case "hits":
		value = stats.Hits
	case "sinks":
		value = stats.Sinks
	case "shots":
		value = stats.Shots
	case "repeated":
		value = stats.Repeated
	case "invalid":
		value = stats.Invalid
	case "remaining":
		value = stats.Remaining
	case "ships":
		value = stats.Ships
	default:
		return "", fmt.Errorf("%w: no counter %q", ErrMalformedCommand, name)
	}

	return strconv.Itoa(value), nil
}

func render(print func(io.Writer) error) (string, error) {
	var b strings.Builder
	if err := print(&b); err != nil {
		return "", err
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}

func malformed(cmd string) error {
	return fmt.Errorf("%w: %q", ErrMalformedCommand, cmd)
}
