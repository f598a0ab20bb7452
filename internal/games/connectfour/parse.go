package connectfour

import (
	"fmt"
	"strings"
)

// ParseBoard builds a board from Rows strings, top row first, in the format
// written by Board.String: '.' empty, 'B' PlayerOne, 'R' PlayerTwo.
// Spaces are ignored. Pieces must rest on the bottom or on another piece.
func ParseBoard(rows ...string) (Board, error) {
	var b Board
	if len(rows) != Rows {
		return b, fmt.Errorf("connectfour: board needs %d rows, got %d", Rows, len(rows))
	}

	for r, line := range rows {
		line = strings.ReplaceAll(line, " ", "")
		if len(line) != Cols {
			return b, fmt.Errorf("connectfour: row %d has %d cells, want %d", r, len(line), Cols)
		}
		for c, ch := range line {
			switch ch {
			case '.':
			case 'B', 'b':
				b.cells[r][c] = Cell{Owner: PlayerOne, Marked: true}
			case 'R', 'r':
				b.cells[r][c] = Cell{Owner: PlayerTwo, Marked: true}
			default:
				return b, fmt.Errorf("connectfour: row %d: unexpected %q", r, ch)
			}
		}
	}

	for c := 0; c < Cols; c++ {
		for r := 0; r < Rows-1; r++ {
			if b.cells[r][c].Marked && !b.cells[r+1][c].Marked {
				return b, fmt.Errorf("connectfour: piece at (%d,%d) is floating", r, c)
			}
		}
	}
	return b, nil
}
