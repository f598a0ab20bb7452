package connectfour

import (
	"fmt"
	"strings"
)

// Board dimensions. Row 0 is the top of the grid, Rows-1 the bottom.
const (
	Rows    = 6
	Cols    = 7
	ToWin   = 4
	Center  = Cols / 2
	MaxMove = Rows * Cols
)

// Board is the fixed 6x7 grid. It is a value type: assigning or passing a
// Board by value produces an independent deep copy.
type Board struct {
	cells [Rows][Cols]Cell
}

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{}
}

// InBounds reports whether (row, col) is on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// Get returns the cell at (row, col).
// The second result is false for out-of-range coordinates.
func (b *Board) Get(row, col int) (Cell, bool) {
	if !InBounds(row, col) {
		return Cell{}, false
	}
	return b.cells[row][col], true
}

// owner returns the owner at (row, col), PlayerNone when off the board.
func (b *Board) owner(row, col int) Player {
	if !InBounds(row, col) {
		return PlayerNone
	}
	return b.cells[row][col].Owner
}

// Place marks (row, col) for player. It does not apply gravity; callers
// pick the row with DropRow.
func (b *Board) Place(row, col int, player Player) error {
	if !InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) is off the board", ErrInvalidMove, row, col)
	}
	if !player.Valid() {
		return fmt.Errorf("%w: cannot place for %v", ErrInvalidMove, player)
	}
	if b.cells[row][col].Marked {
		return fmt.Errorf("%w: (%d,%d) already marked", ErrInternalConsistency, row, col)
	}
	b.cells[row][col] = Cell{Owner: player, Marked: true}
	return nil
}

// Unplace clears (row, col), undoing a speculative Place.
func (b *Board) Unplace(row, col int) error {
	if !InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) is off the board", ErrInvalidMove, row, col)
	}
	if !b.cells[row][col].Marked {
		return fmt.Errorf("%w: (%d,%d) already empty", ErrInternalConsistency, row, col)
	}
	b.cells[row][col] = Cell{}
	return nil
}

// DropRow returns the row a piece dropped into col would land in:
// the bottommost unmarked cell. ok is false for a full or invalid column.
func (b *Board) DropRow(col int) (row int, ok bool) {
	if col < 0 || col >= Cols {
		return -1, false
	}
	for r := Rows - 1; r >= 0; r-- {
		if !b.cells[r][col].Marked {
			return r, true
		}
	}
	return -1, false
}

// IsColumnFull reports whether the top cell of col is marked.
// Out-of-range columns count as full.
func (b *Board) IsColumnFull(col int) bool {
	if col < 0 || col >= Cols {
		return true
	}
	return b.cells[0][col].Marked
}

// IsTie reports whether every cell in the top row is marked.
// Pieces only ever land on the lowest empty cell of a column, so columns fill
// without gaps and a full top row means a full board.
func (b *Board) IsTie() bool {
	for c := 0; c < Cols; c++ {
		if !b.cells[0][c].Marked {
			return false
		}
	}
	return true
}

// LegalMoves returns one candidate per open column, at its landing row,
// in column order.
func (b *Board) LegalMoves(player Player) []Move {
	moves := make([]Move, 0, Cols)
	for c := 0; c < Cols; c++ {
		if r, ok := b.DropRow(c); ok {
			moves = append(moves, NewMove(r, c, player))
		}
	}
	return moves
}

// MarkedCount returns the number of marked cells.
func (b *Board) MarkedCount() int {
	n := 0
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if b.cells[r][c].Marked {
				n++
			}
		}
	}
	return n
}

// CountOwned returns the number of cells owned by player.
func (b *Board) CountOwned(player Player) int {
	n := 0
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if b.cells[r][c].Owner == player {
				n++
			}
		}
	}
	return n
}

// Equal reports whether two boards hold identical cells.
func (b *Board) Equal(other *Board) bool {
	return b.cells == other.cells
}

// String renders the board as ASCII, top row first.
// '.' is empty, 'B' is PlayerOne and 'R' is PlayerTwo.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((Cols*2 + 1) * (Rows + 1))

	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			switch b.cells[r][c].Owner {
			case PlayerOne:
				sb.WriteByte('B')
			case PlayerTwo:
				sb.WriteByte('R')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	for c := 0; c < Cols; c++ {
		if c > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(byte('0' + c))
	}
	return sb.String()
}
