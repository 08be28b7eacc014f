package field

// A board cell owned by a single ship.
//
// Identity is the embedded Position; flags are not part of it,
// so compare cells with `cell.Position == pos`.
type Cell struct {
	Position
	occupied bool
	hit      bool
}

func NewCell(pos Position) Cell {
	return Cell{Position: pos}
}

func (c *Cell) Occupy() {
	c.occupied = true
}

func (c *Cell) Shoot() {
	c.hit = true
}

func (c Cell) IsOccupied() bool {
	return c.occupied
}

func (c Cell) IsHit() bool {
	return c.hit
}
