package field

import (
	"fmt"
	"io"

	"github.com/dolthub/swiss"
)

const (
	BoardSize = 10
	MaxShips  = 10
)

type Fleet struct {
	ships []*Ship

	// Footprint position -> ship. Placement rules keep
	// footprints disjoint, so every position maps to at most one ship.
	occupancy *swiss.Map[Position, *Ship]
}

func NewFleet() *Fleet {
	return &Fleet{
		occupancy: swiss.NewMap[Position, *Ship](MaxShips * uint32(Galleon)),
	}
}

// Appends the ship if the fleet has room, the ship is fully on the
// board and it neither overlaps nor touches any ship already placed.
//
// A rejected ship leaves the fleet untouched.
func (f *Fleet) AddShip(ship *Ship) bool {
	if ship == nil || len(f.ships) >= MaxShips {
		return false
	}

	if !f.isInside(ship) || f.collides(ship) {
		return false
	}

	f.ships = append(f.ships, ship)
	for _, pos := range ship.Positions() {
		f.occupancy.Put(pos, ship)
	}

	return true
}

func (f *Fleet) isInside(ship *Ship) bool {
	return ship.TopMost() >= 0 && ship.LeftMost() >= 0 &&
		ship.BottomMost() < BoardSize && ship.RightMost() < BoardSize
}

func (f *Fleet) collides(ship *Ship) bool {
	for _, other := range f.ships {
		if ship.TooCloseTo(other) {
			return true
		}
	}
	return false
}

func (f *Fleet) Len() int {
	return len(f.ships)
}

// Snapshot of the ships in insertion order.
func (f *Fleet) Ships() []*Ship {
	ships := make([]*Ship, len(f.ships))
	copy(ships, f.ships)
	return ships
}

func (f *Fleet) ShipsLike(category Category) []*Ship {
	return f.filter(func(s *Ship) bool {
		return s.Category() == category
	})
}

func (f *Fleet) FloatingShips() []*Ship {
	return f.filter((*Ship).StillFloating)
}

func (f *Fleet) filter(keep func(*Ship) bool) []*Ship {
	ships := make([]*Ship, 0, len(f.ships))
	for _, s := range f.ships {
		if keep(s) {
			ships = append(ships, s)
		}
	}
	return ships
}

// Returns the ship occupying `pos`, or nil.
func (f *Fleet) ShipAt(pos Position) *Ship {
	ship, _ := f.occupancy.Get(pos)
	return ship
}

func (f *Fleet) PrintStatus(w io.Writer) error {
	if err := f.PrintAllShips(w); err != nil {
		return err
	}

	for c := Galleon; c >= Barge; c-- {
		if err := f.PrintShipsByCategory(w, c); err != nil {
			return err
		}
	}

	return f.PrintFloatingShips(w)
}

func (f *Fleet) PrintShipsByCategory(w io.Writer, category Category) error {
	return PrintShips(w, f.ShipsLike(category))
}

func (f *Fleet) PrintFloatingShips(w io.Writer) error {
	return PrintShips(w, f.FloatingShips())
}

func (f *Fleet) PrintAllShips(w io.Writer) error {
	return PrintShips(w, f.ships)
}

func PrintShips(w io.Writer, ships []*Ship) error {
	for _, s := range ships {
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}
