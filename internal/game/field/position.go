package field

import "fmt"

type Position struct {
	Row, Column int
}

func NewPosition(row, column int) Position {
	return Position{Row: row, Column: column}
}

// Reports whether `other` is one of the 8 cells surrounding p.
// A position is never adjacent to itself.
func (p Position) IsAdjacentTo(other Position) bool {
	dr := abs(p.Row - other.Row)
	dc := abs(p.Column - other.Column)

	return dr <= 1 && dc <= 1 && p != other
}

// Same as IsAdjacentTo, but also true for p itself.
func (p Position) touches(other Position) bool {
	return p == other || p.IsAdjacentTo(other)
}

func (p Position) IsInside(size int) bool {
	return p.Row >= 0 && p.Column >= 0 && p.Row < size && p.Column < size
}

func (p Position) String() string {
	return fmt.Sprintf("row %d, column %d", p.Row, p.Column)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
