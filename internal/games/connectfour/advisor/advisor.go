// Package advisor picks moves for the computer opponent.
//
// The first few moves of a game come from a randomized opening mode; after
// that every open column is rated one ply ahead and the best one is played.
// The advisor never recurses into the opponent's replies.
package advisor

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mshamp4/ConnectFourRemote/internal/games/connectfour"
)

// MaxOpeningMoves caps how many times per game the randomized mode runs.
const MaxOpeningMoves = 2

// Weights are the ratings given to each tactical pattern.
// A candidate takes the highest weight among the patterns it matches.
type Weights struct {
	Win        int // Completes four for the advisor
	BlockWin   int // Takes the cell the opponent needs for four
	BlockThree int // Cuts an open opponent run of three through the cell
	BuildThree int // Makes three for the advisor
	BuildTwo   int // Makes two for the advisor
}

// DefaultWeights returns the standard priority ordering.
func DefaultWeights() Weights {
	return Weights{
		Win:        1000,
		BlockWin:   500,
		BlockThree: 100,
		BuildThree: 50,
		BuildTwo:   10,
	}
}

// Options configure a new Advisor.
type Options struct {
	Weights      Weights
	OpeningMoves int         // Randomized moves before heuristic play, clamped to [0, MaxOpeningMoves]
	Seed         int64       // 0 seeds from the clock
	Logger       *log.Logger // nil discards debug output
}

// DefaultOptions returns options with default weights and two opening moves.
func DefaultOptions() Options {
	return Options{
		Weights:      DefaultWeights(),
		OpeningMoves: MaxOpeningMoves,
	}
}

// Advisor chooses moves for one game. Create a new one per game so the
// opening counter starts over.
type Advisor struct {
	weights      Weights
	openingMoves int
	openingUsed  int
	rng          *rand.Rand
	logger       *log.Logger
}

// New creates an advisor.
func New(opts Options) *Advisor {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	opening := opts.OpeningMoves
	if opening < 0 {
		opening = 0
	}
	if opening > MaxOpeningMoves {
		opening = MaxOpeningMoves
	}

	return &Advisor{
		weights:      opts.Weights,
		openingMoves: opening,
		rng:          rand.New(rand.NewSource(seed)),
		logger:       logger,
	}
}

// InOpening reports whether the next ChooseMove call uses the randomized mode.
func (a *Advisor) InOpening() bool {
	return a.openingUsed < a.openingMoves
}

// ChooseMove picks a move for player on board. ok is false when no column is
// open. The board is only modified transiently and is returned unchanged.
func (a *Advisor) ChooseMove(board *connectfour.Board, player connectfour.Player) (connectfour.Move, bool) {
	if a.InOpening() {
		a.openingUsed++
		move, ok := a.Opening(board, player)
		if ok {
			a.logger.Debug("opening move", "player", player.Color(), "col", move.Col, "row", move.Row, "n", a.openingUsed)
		}
		return move, ok
	}

	move, ok := a.Heuristic(board, player)
	if ok {
		a.logger.Debug("heuristic move", "player", player.Color(), "col", move.Col, "row", move.Row, "rating", move.Rating)
	}
	return move, ok
}
