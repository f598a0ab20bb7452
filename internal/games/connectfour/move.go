package connectfour

import "fmt"

// Move is a candidate placement produced by move generation.
// Rating is filled in by the advisor; it is zero otherwise.
type Move struct {
	Row    int
	Col    int
	Player Player
	Rating int
}

// NewMove creates an unrated move.
func NewMove(row, col int, player Player) Move {
	return Move{Row: row, Col: col, Player: player}
}

func (m Move) String() string {
	return fmt.Sprintf("%s@(%d,%d) rating=%d", m.Player.Color(), m.Row, m.Col, m.Rating)
}
