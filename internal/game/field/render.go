package field

import (
	"bufio"
	"fmt"
	"io"
)

const Blank = '.'

// Draws the BoardSize x BoardSize grid with `marker` on every
// position in `marked` and Blank everywhere else.
//
//	  0 1 2 3 4 5 6 7 8 9
//	0 . . . . . . . . . .
//	1 . # . . . . . . . .
//	...
//
// Positions off the board are ignored.
func RenderBoard(w io.Writer, marked []Position, marker rune) error {
	var grid [BoardSize][BoardSize]rune
	for r := range grid {
		for c := range grid[r] {
			grid[r][c] = Blank
		}
	}

	for _, pos := range marked {
		if pos.IsInside(BoardSize) {
			grid[pos.Row][pos.Column] = marker
		}
	}

	bw := bufio.NewWriter(w)

	fmt.Fprint(bw, " ")
	for c := range BoardSize {
		fmt.Fprintf(bw, " %d", c)
	}
	fmt.Fprintln(bw)

	for r, row := range grid {
		fmt.Fprintf(bw, "%d", r)
		for _, cell := range row {
			fmt.Fprintf(bw, " %c", cell)
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}
