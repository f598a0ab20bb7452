package advisor

import "github.com/mshamp4/ConnectFourRemote/internal/games/connectfour"

// Opening picks a move in randomized mode.
//
// On an untouched center column the piece goes in the middle. Otherwise it
// picks at random among playable cells left of, right of or above the
// opponent's pieces. With no opponent pieces it picks any open column except
// the two edges.
func (a *Advisor) Opening(board *connectfour.Board, player connectfour.Player) (connectfour.Move, bool) {
	legal := board.LegalMoves(player)
	if len(legal) == 0 {
		return connectfour.Move{}, false
	}

	if bottom, _ := board.Get(connectfour.Rows-1, connectfour.Center); bottom.Empty() {
		return connectfour.NewMove(connectfour.Rows-1, connectfour.Center, player), true
	}

	candidates := blockingCandidates(board, player, legal)
	if len(candidates) == 0 {
		candidates = innerColumns(legal)
	}
	if len(candidates) == 0 {
		candidates = legal
	}
	return candidates[a.rng.Intn(len(candidates))], true
}

// blockingCandidates returns the legal moves that sit directly left, right
// or above one of the opponent's pieces.
func blockingCandidates(board *connectfour.Board, player connectfour.Player, legal []connectfour.Move) []connectfour.Move {
	opponent := player.Next()
	var out []connectfour.Move
	for _, m := range legal {
		if adjacentTo(board, m.Row, m.Col, opponent) {
			out = append(out, m)
		}
	}
	return out
}

// adjacentTo reports whether (row, col) is left of, right of or directly above
// a piece owned by p.
func adjacentTo(board *connectfour.Board, row, col int, p connectfour.Player) bool {
	neighbours := [3][2]int{
		{row, col + 1}, // we are left of it
		{row, col - 1}, // we are right of it
		{row + 1, col}, // we are on top of it
	}
	for _, n := range neighbours {
		if c, ok := board.Get(n[0], n[1]); ok && c.Owner == p {
			return true
		}
	}
	return false
}

// innerColumns drops the two edge columns from legal.
func innerColumns(legal []connectfour.Move) []connectfour.Move {
	var out []connectfour.Move
	for _, m := range legal {
		if m.Col == 0 || m.Col == connectfour.Cols-1 {
			continue
		}
		out = append(out, m)
	}
	return out
}
