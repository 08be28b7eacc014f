package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrsobakin/armada/internal/game/field"
)

func TestPosition(t *testing.T) {
	p := field.NewPosition(3, 5)
	assert.Equal(t, 3, p.Row)
	assert.Equal(t, 5, p.Column)

	assert.Equal(t, field.NewPosition(2, 8), field.NewPosition(2, 8))
	assert.NotEqual(t, field.NewPosition(1, 2), field.NewPosition(5, 9))

	str := field.NewPosition(7, 9).String()
	assert.Contains(t, str, "row 7")
	assert.Contains(t, str, "column 9")
}

func TestPosition_IsAdjacentTo(t *testing.T) {
	center := field.NewPosition(5, 5)

	for dr := -2; dr <= 2; dr++ {
		for dc := -2; dc <= 2; dc++ {
			other := field.NewPosition(5+dr, 5+dc)
			expected := max(dr, -dr) <= 1 && max(dc, -dc) <= 1 && (dr != 0 || dc != 0)

			assert.Equal(t, expected, center.IsAdjacentTo(other), "%s -> %s", center, other)
			assert.Equal(t, expected, other.IsAdjacentTo(center), "adjacency should be symmetric")
		}
	}
}

func TestPosition_IsInside(t *testing.T) {
	assert.True(t, field.NewPosition(0, 0).IsInside(field.BoardSize))
	assert.True(t, field.NewPosition(9, 9).IsInside(field.BoardSize))
	assert.False(t, field.NewPosition(-1, 5).IsInside(field.BoardSize))
	assert.False(t, field.NewPosition(5, -1).IsInside(field.BoardSize))
	assert.False(t, field.NewPosition(10, 0).IsInside(field.BoardSize))
	assert.False(t, field.NewPosition(0, 10).IsInside(field.BoardSize))
}

func TestCell(t *testing.T) {
	c := field.NewCell(field.NewPosition(4, 7))
	assert.False(t, c.IsOccupied())
	assert.False(t, c.IsHit())

	c.Occupy()
	assert.True(t, c.IsOccupied())

	c.Shoot()
	assert.True(t, c.IsHit())

	assert.Equal(t, field.NewPosition(4, 7), c.Position, "flags are not part of identity")
}

func TestCompass(t *testing.T) {
	codes := map[field.Compass]rune{
		field.North:   'n',
		field.South:   's',
		field.East:    'e',
		field.West:    'o',
		field.Unknown: 'u',
	}

	for c, code := range codes {
		assert.Equal(t, code, c.Code())
		assert.Equal(t, string(code), c.String())

		if c != field.Unknown {
			assert.Equal(t, c, field.CompassFromCode(code))
		}
	}

	for _, r := range []rune{'x', '?', ' ', 'u', 'N', 'w'} {
		assert.Equal(t, field.Unknown, field.CompassFromCode(r), "%q", r)
	}

	var c field.Compass
	require.NoError(t, c.FromString("o"))
	assert.Equal(t, field.West, c)

	assert.Error(t, c.FromString("north"))
	assert.Error(t, c.FromString(""))
}
