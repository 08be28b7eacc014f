package field

import (
	"errors"
	"fmt"
	"iter"
	"math/rand/v2"
)

var (
	ErrPlacement    = errors.New("placement rejected")
	ErrNoRoomLeft   = errors.New("could not fit fleet on the board")
	randomFacings   = [...]Compass{North, South, East, West}
	maxShipAttempts = 1000
	maxFleetRetries = 100
)

// 1 Galleon, 1 Frigate, 2 Carracks, 3 Caravels, 3 Barges.
var StandardComposition = []Category{
	Galleon,
	Frigate,
	Carrack, Carrack,
	Caravel, Caravel, Caravel,
	Barge, Barge, Barge,
}

// Builds a fleet from a placement sequence, as yielded by ParseShips.
//
// If any placement is malformed or rejected by the fleet,
// returns an error wrapping ErrPlacement.
func LoadFleet(placements iter.Seq2[Placement, error]) (*Fleet, error) {
	f := NewFleet()

	i := 0
	for p, err := range placements {
		if err != nil {
			return nil, fmt.Errorf("%w: #%d: %w", ErrPlacement, i, err)
		}

		ship, err := p.Ship()
		if err != nil {
			return nil, fmt.Errorf("%w: #%d %q: %w", ErrPlacement, i, p, err)
		}

		if !f.AddShip(ship) {
			return nil, fmt.Errorf("%w: #%d %q", ErrPlacement, i, p)
		}
		i++
	}

	return f, nil
}

// Places ships of the given categories at random, in order.
func RandomFleet(r *rand.Rand, categories []Category) (*Fleet, error) {
	if len(categories) > MaxShips {
		return nil, fmt.Errorf("%w: %d ships requested, at most %d fit", ErrNoRoomLeft, len(categories), MaxShips)
	}

	for range maxFleetRetries {
		if f, ok := tryRandomFleet(r, categories); ok {
			return f, nil
		}
	}

	return nil, ErrNoRoomLeft
}

func tryRandomFleet(r *rand.Rand, categories []Category) (*Fleet, bool) {
	f := NewFleet()

	for _, c := range categories {
		placed := false

		for range maxShipAttempts {
			ship, err := NewShip(c, randomFacings[r.IntN(len(randomFacings))], NewPosition(r.IntN(BoardSize), r.IntN(BoardSize)))
			if err != nil {
				return nil, false
			}

			if f.AddShip(ship) {
				placed = true
				break
			}
		}

		if !placed {
			return nil, false
		}
	}

	return f, true
}
