package connectfour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drawColumns fills the board into drawnBoard with PlayerOne starting.
var drawColumns = []int{
	0, 2, 2, 0, 0, 2, 2, 0, 0, 2, 2, 0,
	1, 3, 3, 1, 1, 3, 3, 1, 1, 3, 3, 1,
	4, 6, 6, 4, 4, 6, 6, 4, 4, 6, 6, 4,
	5, 5, 5, 5, 5, 5,
}

func newTestGame(t *testing.T, start Player) *Game {
	t.Helper()
	g, err := NewGame(start, false)
	require.NoError(t, err)
	return g
}

func TestNewGameInitialState(t *testing.T) {
	g, err := NewGame(PlayerTwo, true)
	require.NoError(t, err)

	assert.Equal(t, StatusInProgress, g.Status())
	assert.Equal(t, PlayerTwo, g.CurrentPlayer())
	assert.Equal(t, PlayerTwo, g.StartingPlayer())
	assert.True(t, g.IsAIEnabled())
	assert.True(t, g.IsAITurn())
	assert.Equal(t, PlayerNone, g.Winner())
	assert.Zero(t, g.MoveCount())
	assert.NotEmpty(t, g.ID())

	_, _, ok := g.LastMove()
	assert.False(t, ok)

	_, err = NewGame(PlayerNone, false)
	assert.Error(t, err)
}

func TestApplyMoveMarksOneCellPerMove(t *testing.T) {
	g := newTestGame(t, PlayerOne)

	for i, col := range []int{3, 3, 4, 2, 6, 0} {
		mover := g.CurrentPlayer()
		before := g.Snapshot()

		res, err := g.ApplyMove(col, mover)
		require.NoError(t, err, "move %d", i)

		after := g.Snapshot()
		assert.Equal(t, before.MarkedCount()+1, after.MarkedCount())

		cell, ok := g.Cell(res.Row, res.Col)
		require.True(t, ok)
		assert.Equal(t, mover, cell.Owner)
		assert.Equal(t, mover.Next(), g.CurrentPlayer())

		row, c, ok := g.LastMove()
		require.True(t, ok)
		assert.Equal(t, [2]int{res.Row, res.Col}, [2]int{row, c})
	}
	assert.Equal(t, []int{3, 3, 4, 2, 6, 0}, g.History())
}

func TestApplyMoveGravity(t *testing.T) {
	g := newTestGame(t, PlayerOne)

	for want := Rows - 1; want >= 0; want-- {
		res, err := g.ApplyMove(5, g.CurrentPlayer())
		require.NoError(t, err)
		assert.Equal(t, want, res.Row)
		assert.Equal(t, 5, res.Col)
	}

	snap := g.Snapshot()
	_, err := g.ApplyMove(5, g.CurrentPlayer())
	assert.ErrorIs(t, err, ErrInvalidMove, "full column")
	after := g.Snapshot()
	assert.True(t, snap.Equal(&after), "rejected move must not change the board")
}

func TestApplyMoveRejects(t *testing.T) {
	g := newTestGame(t, PlayerOne)

	_, err := g.ApplyMove(-1, PlayerOne)
	assert.ErrorIs(t, err, ErrInvalidMove)
	_, err = g.ApplyMove(Cols, PlayerOne)
	assert.ErrorIs(t, err, ErrInvalidMove)
	_, err = g.ApplyMove(0, PlayerTwo)
	assert.ErrorIs(t, err, ErrInvalidMove, "out of turn")
	_, err = g.ApplyMove(0, PlayerNone)
	assert.ErrorIs(t, err, ErrInvalidMove)

	assert.Zero(t, g.MoveCount())
	assert.Equal(t, PlayerOne, g.CurrentPlayer())
}

func TestHorizontalWinScenario(t *testing.T) {
	g := newTestGame(t, PlayerOne)

	columns := []int{0, 0, 1, 1, 2, 2, 3}
	var res MoveResult
	for i, col := range columns {
		var err error
		res, err = g.ApplyMove(col, g.CurrentPlayer())
		require.NoError(t, err)
		if i < len(columns)-1 {
			assert.Equal(t, StatusInProgress, res.Status, "move %d", i+1)
		}
	}

	assert.Equal(t, StatusWon, res.Status)
	assert.Equal(t, 5, res.Row)
	assert.Equal(t, 3, res.Col)
	assert.Equal(t, StatusWon, g.Status())
	assert.Equal(t, PlayerOne, g.Winner())
	assert.Equal(t, PlayerTwo, g.CurrentPlayer(), "turn still advances after the winning move")

	_, err := g.ApplyMove(4, PlayerTwo)
	assert.ErrorIs(t, err, ErrInvalidMove)
}

func TestTieScenario(t *testing.T) {
	g, err := Replay(PlayerOne, false, drawColumns[:len(drawColumns)-1])
	require.NoError(t, err)
	require.Equal(t, StatusInProgress, g.Status())

	res, err := g.ApplyMove(5, g.CurrentPlayer())
	require.NoError(t, err)
	assert.Equal(t, StatusTie, res.Status)
	assert.Equal(t, PlayerNone, g.Winner())

	snap := g.Snapshot()
	want := mustParse(t, drawnBoard...)
	assert.True(t, snap.Equal(&want), "got\n%s", snap.String())

	for col := 0; col < Cols; col++ {
		_, err := g.ApplyMove(col, g.CurrentPlayer())
		assert.ErrorIs(t, err, ErrInvalidMove)
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	g := newTestGame(t, PlayerOne)
	_, err := g.ApplyMove(3, PlayerOne)
	require.NoError(t, err)

	snap := g.Snapshot()
	require.NoError(t, snap.Place(4, 3, PlayerTwo))

	cell, _ := g.Cell(4, 3)
	assert.True(t, cell.Empty())
}

func TestReplayReportsFailingMove(t *testing.T) {
	_, err := Replay(PlayerOne, false, []int{0, 0, 0, 0, 0, 0, 0})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidMove)
	assert.Contains(t, err.Error(), "move 7")
}
