package game

import (
	"fmt"
	"io"

	"github.com/dolthub/swiss"

	"github.com/mrsobakin/armada/internal/game/field"
)

const (
	ShotMarker = 'X'
	ShipMarker = '#'
)

// A single play session against one fleet.
//
// Game borrows the fleet: ships are mutated by Fire, but
// the fleet itself is never modified. Game is not thread safe.
type Game struct {
	fleet *field.Fleet

	shots []field.Position
	fired *swiss.Map[field.Position, struct{}]

	hits          int
	sinks         int
	repeatedShots int
	invalidShots  int
}

func New(fleet *field.Fleet) *Game {
	return &Game{
		fleet: fleet,
		fired: swiss.NewMap[field.Position, struct{}](field.BoardSize * field.BoardSize),
	}
}

// Fires at `pos` and classifies the shot.
//
// Returns the ship at `pos`, if any, together with the result:
//   - Invalid: `pos` is off the board, nothing else changes.
//   - Repeated: `pos` was already fired at; only the repeat
//     counter changes.
//   - Miss: no ship at `pos`.
//   - Hit: the ship was hit and is still floating.
//   - Kill: the ship was hit and this shot sank it.
func (g *Game) Fire(pos field.Position) (*field.Ship, field.ShootResult) {
	if !pos.IsInside(field.BoardSize) {
		g.invalidShots++
		return nil, field.Invalid
	}

	if g.fired.Has(pos) {
		g.repeatedShots++
		return g.fleet.ShipAt(pos), field.Repeated
	}

	g.fired.Put(pos, struct{}{})
	g.shots = append(g.shots, pos)

	ship := g.fleet.ShipAt(pos)
	if ship == nil {
		return nil, field.Miss
	}

	g.hits++
	ship.Shoot(pos)

	if ship.StillFloating() {
		return ship, field.Hit
	}

	g.sinks++
	return ship, field.Kill
}

func (g *Game) Fleet() *field.Fleet {
	return g.fleet
}

// In-bounds, non-repeated shots, in firing order.
func (g *Game) Shots() []field.Position {
	shots := make([]field.Position, len(g.shots))
	copy(shots, g.shots)
	return shots
}

func (g *Game) ValidShots() int {
	return len(g.shots)
}

func (g *Game) InvalidShots() int {
	return g.invalidShots
}

func (g *Game) RepeatedShots() int {
	return g.repeatedShots
}

func (g *Game) Hits() int {
	return g.hits
}

func (g *Game) SunkShips() int {
	return g.sinks
}

// Recounted from the fleet on every call.
func (g *Game) RemainingShips() int {
	return len(g.fleet.FloatingShips())
}

// The game is over once a non-empty fleet has nothing left afloat.
func (g *Game) IsOver() bool {
	return g.fleet.Len() > 0 && g.RemainingShips() == 0
}

func (g *Game) PrintBoard(w io.Writer, positions []field.Position, marker rune) error {
	return field.RenderBoard(w, positions, marker)
}

func (g *Game) PrintValidShots(w io.Writer) error {
	return g.PrintBoard(w, g.shots, ShotMarker)
}

func (g *Game) PrintFleet(w io.Writer) error {
	var positions []field.Position
	for _, s := range g.fleet.Ships() {
		positions = append(positions, s.Positions()...)
	}

	return g.PrintBoard(w, positions, ShipMarker)
}

func (g *Game) String() string {
	return fmt.Sprintf(
		"shots %d, hits %d, sunk %d, repeated %d, invalid %d, remaining %d",
		len(g.shots), g.hits, g.sinks, g.repeatedShots, g.invalidShots, g.RemainingShips(),
	)
}
