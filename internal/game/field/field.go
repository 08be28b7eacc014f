package field

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"
)

type ShootResult int

const (
	Invalid ShootResult = iota
	Repeated
	Miss
	Hit
	Kill
)

func (r *ShootResult) FromString(str string) error {
	switch str {
	case "invalid":
		*r = Invalid
	case "repeated":
		*r = Repeated
	case "miss":
		*r = Miss
	case "hit":
		*r = Hit
	case "kill":
		*r = Kill
	default:
		return fmt.Errorf("invalid shoot result")
	}
	return nil
}

func (r ShootResult) String() string {
	switch r {
	case Invalid:
		return "invalid"
	case Repeated:
		return "repeated"
	case Miss:
		return "miss"
	case Hit:
		return "hit"
	case Kill:
		return "kill"
	default:
		return "unknown"
	}
}

func (r ShootResult) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *ShootResult) UnmarshalText(text []byte) error {
	return r.FromString(string(text))
}

// Kill is a hit that also sank the ship.
func (r ShootResult) IsHit() bool {
	return r == Hit || r == Kill
}

// A ship to be placed, as read from a layout.
type Placement struct {
	Category Category
	Compass  Compass
	Anchor   Position
}

func (p Placement) Ship() (*Ship, error) {
	return NewShip(p.Category, p.Compass, p.Anchor)
}

func (p Placement) String() string {
	return fmt.Sprintf("%s %s %d %d", strings.ToLower(p.Category.String()), p.Compass, p.Anchor.Row, p.Anchor.Column)
}

// Reads placements, one per line:
//
//	<category> <compass code> <row> <column>
//
// e.g. `caravel n 3 3`. Empty lines and lines starting with `#`
// are skipped. A malformed line or a read failure is yielded as
// an error, after which iteration stops.
func ParseShips(src io.Reader) iter.Seq2[Placement, error] {
	return func(yield func(Placement, error) bool) {
		lines := bufio.NewScanner(src)

		n := 0
		for lines.Scan() {
			n++

			line := strings.TrimSpace(lines.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}

			p, err := ParsePlacement(line)
			if err != nil {
				yield(p, fmt.Errorf("line %d: %w", n, err))
				return
			}

			if !yield(p, nil) {
				return
			}
		}

		if err := lines.Err(); err != nil {
			yield(Placement{}, fmt.Errorf("failed to read layout: %w", err))
		}
	}
}

func ParsePlacement(line string) (Placement, error) {
	var p Placement
	var category, compass string

	n, err := fmt.Sscanf(line, "%s %s %d %d", &category, &compass, &p.Anchor.Row, &p.Anchor.Column)
	if err != nil {
		return p, fmt.Errorf("malformed placement %q: %w", line, err)
	}
	if n != 4 {
		return p, fmt.Errorf("malformed placement %q", line)
	}

	if p.Category, err = ParseCategory(category); err != nil {
		return p, err
	}

	if err := p.Compass.FromString(compass); err != nil {
		return p, err
	}

	return p, nil
}
