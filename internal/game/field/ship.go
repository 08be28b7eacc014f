package field

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidCategory = errors.New("invalid ship category")
	ErrUnknownCompass  = errors.New("unknown compass for multi-cell ship")
)

type Category int

const (
	Barge Category = iota + 1
	Caravel
	Carrack
	Frigate
	Galleon
)

var categoryNames = map[string]Category{
	"barge":   Barge,
	"caravel": Caravel,
	"carrack": Carrack,
	"frigate": Frigate,
	"galleon": Galleon,

	// Portuguese names.
	"barca":    Barge,
	"caravela": Caravel,
	"nau":      Carrack,
	"fragata":  Frigate,
	"galeao":   Galleon,
}

func ParseCategory(str string) (Category, error) {
	if c, ok := categoryNames[strings.ToLower(str)]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidCategory, str)
}

func (c Category) IsValid() bool {
	return c >= Barge && c <= Galleon
}

// Ship length, equal to the category ordinal.
func (c Category) Size() int {
	if !c.IsValid() {
		return 0
	}
	return int(c)
}

func (c Category) String() string {
	switch c {
	case Barge:
		return "Barge"
	case Caravel:
		return "Caravel"
	case Carrack:
		return "Carrack"
	case Frigate:
		return "Frigate"
	case Galleon:
		return "Galleon"
	default:
		return "Unknown"
	}
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

type Ship struct {
	category Category
	compass  Compass
	cells    []Cell
}

// Lays out a ship of the given category starting at `anchor`.
//
// Vertical facings (North, South) grow towards increasing rows,
// horizontal ones (East, West) towards increasing columns. A Barge
// occupies only its anchor, whatever the facing.
func NewShip(category Category, compass Compass, anchor Position) (*Ship, error) {
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCategory, category)
	}

	size := category.Size()
	if size > 1 && compass == Unknown {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCompass, category)
	}

	var dr, dc int
	if compass.IsVert() {
		dr = 1
	} else {
		dc = 1
	}

	cells := make([]Cell, size)
	for i := range cells {
		cells[i] = NewCell(NewPosition(anchor.Row+i*dr, anchor.Column+i*dc))
		cells[i].Occupy()
	}

	return &Ship{
		category: category,
		compass:  compass,
		cells:    cells,
	}, nil
}

func (s *Ship) Category() Category {
	return s.category
}

func (s *Ship) Size() int {
	return len(s.cells)
}

func (s *Ship) Compass() Compass {
	return s.compass
}

// The anchor, i.e. the first cell of the footprint.
func (s *Ship) Position() Position {
	return s.cells[0].Position
}

func (s *Ship) Positions() []Position {
	positions := make([]Position, len(s.cells))
	for i, c := range s.cells {
		positions[i] = c.Position
	}
	return positions
}

// Returns a copy of the footprint; mutating it does not affect the ship.
func (s *Ship) Cells() []Cell {
	cells := make([]Cell, len(s.cells))
	copy(cells, s.cells)
	return cells
}

func (s *Ship) TopMost() int {
	top := s.cells[0].Row
	for _, c := range s.cells[1:] {
		top = min(top, c.Row)
	}
	return top
}

func (s *Ship) BottomMost() int {
	bottom := s.cells[0].Row
	for _, c := range s.cells[1:] {
		bottom = max(bottom, c.Row)
	}
	return bottom
}

func (s *Ship) LeftMost() int {
	left := s.cells[0].Column
	for _, c := range s.cells[1:] {
		left = min(left, c.Column)
	}
	return left
}

func (s *Ship) RightMost() int {
	right := s.cells[0].Column
	for _, c := range s.cells[1:] {
		right = max(right, c.Column)
	}
	return right
}

// True while at least one cell is not hit.
func (s *Ship) StillFloating() bool {
	for _, c := range s.cells {
		if !c.IsHit() {
			return true
		}
	}
	return false
}

func (s *Ship) Occupies(pos Position) bool {
	return s.cellIndex(pos) >= 0
}

// Checks whether any cell of s is equal or adjacent to any cell of other.
func (s *Ship) TooCloseTo(other *Ship) bool {
	for _, c := range other.cells {
		if s.TooCloseToPosition(c.Position) {
			return true
		}
	}
	return false
}

func (s *Ship) TooCloseToPosition(pos Position) bool {
	for _, c := range s.cells {
		if c.touches(pos) {
			return true
		}
	}
	return false
}

// Marks the cell at `pos` as hit. No-op if the ship does not occupy `pos`.
func (s *Ship) Shoot(pos Position) {
	if i := s.cellIndex(pos); i >= 0 {
		s.cells[i].Shoot()
	}
}

func (s *Ship) cellIndex(pos Position) int {
	for i, c := range s.cells {
		if c.Position == pos {
			return i
		}
	}
	return -1
}

func (s *Ship) String() string {
	return fmt.Sprintf("%s [%d] facing %s at %s", s.category, s.Size(), s.compass, s.Position())
}
