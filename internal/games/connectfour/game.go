package connectfour

import (
	"fmt"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a game.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusTie        Status = "tie"
)

// Terminal reports whether no further moves are accepted.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusTie
}

// MoveResult describes the outcome of a successful ApplyMove.
type MoveResult struct {
	Status Status
	Row    int
	Col    int
	Player Player
}

// Game owns the board and turn order for exactly one game.
// Starting a new game means creating a new Game, never resetting one.
type Game struct {
	id             string
	board          Board
	status         Status
	currentPlayer  Player
	startingPlayer Player
	winner         Player
	aiEnabled      bool
	history        []int
}

// NewGame creates a game where startingPlayer moves first.
func NewGame(startingPlayer Player, aiEnabled bool) (*Game, error) {
	if !startingPlayer.Valid() {
		return nil, fmt.Errorf("connectfour: invalid starting player %v", startingPlayer)
	}
	return &Game{
		id:             uuid.NewString(),
		board:          NewBoard(),
		status:         StatusInProgress,
		currentPlayer:  startingPlayer,
		startingPlayer: startingPlayer,
		aiEnabled:      aiEnabled,
		history:        make([]int, 0, MaxMove),
	}, nil
}

// Replay rebuilds a game by applying columns in order, alternating players
// from startingPlayer.
func Replay(startingPlayer Player, aiEnabled bool, columns []int) (*Game, error) {
	g, err := NewGame(startingPlayer, aiEnabled)
	if err != nil {
		return nil, err
	}
	for i, col := range columns {
		if _, err := g.ApplyMove(col, g.currentPlayer); err != nil {
			return nil, fmt.Errorf("replay move %d: %w", i+1, err)
		}
	}
	return g, nil
}

// ApplyMove drops a piece for player into column.
//
// On failure the error wraps ErrInvalidMove and the game is unchanged.
// On success the turn passes to the other player even when the move ended
// the game, so CurrentPlayer().Next() is the player who made the last move.
func (g *Game) ApplyMove(column int, player Player) (MoveResult, error) {
	if g.status != StatusInProgress {
		return MoveResult{}, fmt.Errorf("%w: game is %s", ErrInvalidMove, g.status)
	}
	if player != g.currentPlayer {
		return MoveResult{}, fmt.Errorf("%w: %v moved out of turn", ErrInvalidMove, player)
	}
	row, ok := g.board.DropRow(column)
	if !ok {
		if column < 0 || column >= Cols {
			return MoveResult{}, fmt.Errorf("%w: column %d out of range", ErrInvalidMove, column)
		}
		return MoveResult{}, fmt.Errorf("%w: column %d is full", ErrInvalidMove, column)
	}

	if err := g.board.Place(row, column, player); err != nil {
		return MoveResult{}, err
	}
	g.history = append(g.history, column)

	switch {
	case IsWin(&g.board, row, column, player):
		g.status = StatusWon
		g.winner = player
	case g.board.IsTie():
		g.status = StatusTie
	}

	g.currentPlayer = player.Next()

	return MoveResult{
		Status: g.status,
		Row:    row,
		Col:    column,
		Player: player,
	}, nil
}

// ID returns the unique identifier assigned when the game was created.
func (g *Game) ID() string {
	return g.id
}

// Status returns the current game status.
func (g *Game) Status() Status {
	return g.status
}

// CurrentPlayer returns the player to move.
func (g *Game) CurrentPlayer() Player {
	return g.currentPlayer
}

// StartingPlayer returns the player who made the first move.
func (g *Game) StartingPlayer() Player {
	return g.startingPlayer
}

// IsAIEnabled reports whether PlayerTwo is controlled by the computer.
func (g *Game) IsAIEnabled() bool {
	return g.aiEnabled
}

// IsAITurn reports whether the computer should move now.
func (g *Game) IsAITurn() bool {
	return g.aiEnabled && g.status == StatusInProgress && g.currentPlayer == AIPlayer
}

// Winner returns the winning player, PlayerNone unless the status is won.
func (g *Game) Winner() Player {
	return g.winner
}

// Cell returns the cell at (row, col); ok is false off the board.
func (g *Game) Cell(row, col int) (Cell, bool) {
	return g.board.Get(row, col)
}

// Snapshot returns an independent copy of the board.
func (g *Game) Snapshot() Board {
	return g.board
}

// MoveCount returns the number of pieces played.
func (g *Game) MoveCount() int {
	return len(g.history)
}

// History returns the columns played so far, in order.
func (g *Game) History() []int {
	out := make([]int, len(g.history))
	copy(out, g.history)
	return out
}

// LastMove returns the coordinates of the most recent piece.
// ok is false before the first move.
func (g *Game) LastMove() (row, col int, ok bool) {
	if len(g.history) == 0 {
		return -1, -1, false
	}
	col = g.history[len(g.history)-1]
	for r := 0; r < Rows; r++ {
		if g.board.cells[r][col].Marked {
			return r, col, true
		}
	}
	return -1, -1, false
}

// AIPlayer is the side the computer plays when enabled.
const AIPlayer = PlayerTwo
