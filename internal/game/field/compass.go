package field

import "fmt"

type Compass int

const (
	Unknown Compass = iota
	North
	South
	East
	West
)

var compassCodes = [...]rune{
	Unknown: 'u',
	North:   'n',
	South:   's',
	East:    'e',
	West:    'o',
}

// Maps a single character code onto a Compass.
//
// Never fails: anything that is not one of the four
// facing codes decodes as Unknown.
func CompassFromCode(code rune) Compass {
	for c, r := range compassCodes {
		if c != int(Unknown) && r == code {
			return Compass(c)
		}
	}
	return Unknown
}

func (c *Compass) FromString(str string) error {
	runes := []rune(str)
	if len(runes) != 1 {
		return fmt.Errorf("invalid compass %q", str)
	}

	*c = CompassFromCode(runes[0])
	return nil
}

func (c Compass) Code() rune {
	if c < Unknown || c > West {
		return compassCodes[Unknown]
	}
	return compassCodes[c]
}

func (c Compass) String() string {
	return string(c.Code())
}

// Vertical facings lay ships out along rows, horizontal ones along columns.
func (c Compass) IsVert() bool {
	return c == North || c == South
}

func (c Compass) IsHor() bool {
	return c == East || c == West
}
