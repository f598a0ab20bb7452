package connectfour

// Direction is a (dRow, dCol) step used by run scans.
type Direction struct {
	DRow, DCol int
}

// Directions holds one direction per axis: horizontal, vertical and the two
// diagonals. Scans walk each one both ways.
var Directions = [4]Direction{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal \
	{1, -1}, // diagonal /
}

// CountRun counts contiguous player cells starting one step from
// (row, col) in direction (dRow, dCol). The anchor itself is not counted.
// Leaving the board ends the walk.
func CountRun(b *Board, row, col int, player Player, dRow, dCol int) int {
	count := 0
	r, c := row+dRow, col+dCol
	for b.owner(r, c) == player {
		count++
		r += dRow
		c += dCol
	}
	return count
}

// runOnAxis returns the length of the run through the anchor along one axis,
// anchor included. Zero when the anchor is not owned by player.
func runOnAxis(b *Board, row, col int, player Player, d Direction) int {
	if b.owner(row, col) != player {
		return 0
	}
	return 1 + CountRun(b, row, col, player, d.DRow, d.DCol) +
		CountRun(b, row, col, player, -d.DRow, -d.DCol)
}

// RunThrough returns the longest run of player cells passing through
// (row, col) on any of the four axes.
func RunThrough(b *Board, row, col int, player Player) int {
	best := 0
	for _, d := range Directions {
		if n := runOnAxis(b, row, col, player, d); n > best {
			best = n
		}
	}
	return best
}

// OpenRunThrough reports whether (row, col) is part of a run of at least
// length player cells on an axis that still has room for ToWin cells once
// empty cells are counted. A run walled in by the opponent or the edge is
// not open.
func OpenRunThrough(b *Board, row, col int, player Player, length int) bool {
	for _, d := range Directions {
		if runOnAxis(b, row, col, player, d) < length {
			continue
		}
		span := 1 + reach(b, row, col, player, d.DRow, d.DCol) +
			reach(b, row, col, player, -d.DRow, -d.DCol)
		if span >= ToWin {
			return true
		}
	}
	return false
}

// reach counts cells from one step past (row, col) that are empty or owned
// by player, stopping at the edge or an opponent piece.
func reach(b *Board, row, col int, player Player, dRow, dCol int) int {
	count := 0
	for r, c := row+dRow, col+dCol; InBounds(r, c); r, c = r+dRow, c+dCol {
		if cell := b.cells[r][c]; cell.Marked && cell.Owner != player {
			break
		}
		count++
	}
	return count
}

// Evaluate reports whether player has a run of at least runLength cells
// involving the row or column of (row, col), or either diagonal through it.
//
// The row and column are scanned end to end, resetting on any other cell.
// Diagonals are walked outward from the anchor in both directions.
// Off-board coordinates never match.
func Evaluate(b *Board, row, col int, player Player, runLength int) bool {
	if runLength <= 0 || !player.Valid() {
		return false
	}

	if InBounds(row, 0) && scanLine(b, row, 0, player, 0, 1, runLength) {
		return true
	}
	if InBounds(0, col) && scanLine(b, 0, col, player, 1, 0, runLength) {
		return true
	}

	for _, d := range Directions[2:] {
		if runOnAxis(b, row, col, player, d) >= runLength {
			return true
		}
	}
	return false
}

// scanLine walks from (row, col) in direction (dRow, dCol) to the board edge
// and reports whether runLength consecutive player cells were seen.
func scanLine(b *Board, row, col int, player Player, dRow, dCol, runLength int) bool {
	count := 0
	for r, c := row, col; InBounds(r, c); r, c = r+dRow, c+dCol {
		if b.cells[r][c].Owner == player {
			count++
			if count == runLength {
				return true
			}
		} else {
			count = 0
		}
	}
	return false
}

// IsWin reports whether the piece at (row, col) completes four in a row.
func IsWin(b *Board, row, col int, player Player) bool {
	return Evaluate(b, row, col, player, ToWin)
}
