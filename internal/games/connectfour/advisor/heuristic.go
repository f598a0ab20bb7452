package advisor

import (
	"fmt"

	"github.com/mshamp4/ConnectFourRemote/internal/games/connectfour"
)

// Heuristic rates each legal move one ply ahead and returns the best one.
// Equally rated candidates are broken at random.
func (a *Advisor) Heuristic(board *connectfour.Board, player connectfour.Player) (connectfour.Move, bool) {
	candidates := board.LegalMoves(player)
	if len(candidates) == 0 {
		return connectfour.Move{}, false
	}

	best := make([]connectfour.Move, 0, len(candidates))
	bestRating := -1
	for _, m := range candidates {
		m.Rating = a.Rate(board, m)
		switch {
		case m.Rating > bestRating:
			bestRating = m.Rating
			best = append(best[:0], m)
		case m.Rating == bestRating:
			best = append(best, m)
		}
	}

	if len(best) > 1 {
		a.logger.Debug("tie between candidates", "rating", bestRating, "count", len(best))
	}
	return best[a.rng.Intn(len(best))], true
}

// Rate returns the rating of playing m on board. m must be a legal landing
// cell. The board is restored before Rate returns.
func (a *Advisor) Rate(board *connectfour.Board, m connectfour.Move) int {
	opponent := m.Player.Next()
	rating := 0

	// Our own piece first: a win outranks everything.
	simulate(board, m.Row, m.Col, m.Player, func() {
		if connectfour.IsWin(board, m.Row, m.Col, m.Player) {
			rating = max(rating, a.weights.Win)
			return
		}
		switch run := connectfour.RunThrough(board, m.Row, m.Col, m.Player); {
		case run >= 3:
			rating = max(rating, a.weights.BuildThree)
		case run == 2:
			rating = max(rating, a.weights.BuildTwo)
		}
	})

	// Then the opponent's piece in the same cell: what would we deny them?
	simulate(board, m.Row, m.Col, opponent, func() {
		if connectfour.IsWin(board, m.Row, m.Col, opponent) {
			rating = max(rating, a.weights.BlockWin)
			return
		}
		if connectfour.OpenRunThrough(board, m.Row, m.Col, opponent, 3) {
			rating = max(rating, a.weights.BlockThree)
		}
	})

	return rating
}

// simulate places a piece, runs fn and removes the piece again.
// Failing to do either means the board and the candidate disagree, which is
// a programming error.
func simulate(board *connectfour.Board, row, col int, player connectfour.Player, fn func()) {
	if err := board.Place(row, col, player); err != nil {
		panic(fmt.Sprintf("advisor: simulate place: %v", err))
	}
	fn()
	if err := board.Unplace(row, col); err != nil {
		panic(fmt.Sprintf("advisor: simulate undo: %v", err))
	}
}
