package connectfour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, rows ...string) Board {
	t.Helper()
	b, err := ParseBoard(rows...)
	require.NoError(t, err)
	return b
}

func TestBoardGetOutOfRange(t *testing.T) {
	b := NewBoard()

	coords := [][2]int{{-1, 0}, {0, -1}, {Rows, 0}, {0, Cols}, {100, 100}}
	for _, rc := range coords {
		_, ok := b.Get(rc[0], rc[1])
		assert.False(t, ok, "Get(%d, %d) should be absent", rc[0], rc[1])
	}

	cell, ok := b.Get(Rows-1, 0)
	require.True(t, ok)
	assert.True(t, cell.Empty())
	assert.Equal(t, PlayerNone, cell.Owner)
}

func TestBoardPlaceUnplace(t *testing.T) {
	b := NewBoard()
	before := b

	require.NoError(t, b.Place(5, 3, PlayerOne))
	cell, _ := b.Get(5, 3)
	assert.Equal(t, Cell{Owner: PlayerOne, Marked: true}, cell)

	err := b.Place(5, 3, PlayerTwo)
	assert.ErrorIs(t, err, ErrInternalConsistency)

	require.NoError(t, b.Unplace(5, 3))
	assert.True(t, b.Equal(&before), "unplace should restore the empty board")

	assert.ErrorIs(t, b.Unplace(5, 3), ErrInternalConsistency)
	assert.ErrorIs(t, b.Place(6, 0, PlayerOne), ErrInvalidMove)
	assert.ErrorIs(t, b.Place(0, 7, PlayerOne), ErrInvalidMove)
	assert.ErrorIs(t, b.Place(0, 0, PlayerNone), ErrInvalidMove)
}

func TestBoardDropRowFillsBottomUp(t *testing.T) {
	b := NewBoard()

	for want := Rows - 1; want >= 0; want-- {
		row, ok := b.DropRow(2)
		require.True(t, ok)
		assert.Equal(t, want, row)
		require.NoError(t, b.Place(row, 2, PlayerOne))
	}

	_, ok := b.DropRow(2)
	assert.False(t, ok, "full column has no landing row")
	assert.True(t, b.IsColumnFull(2))
	assert.False(t, b.IsColumnFull(3))
	assert.True(t, b.IsColumnFull(-1))
	assert.True(t, b.IsColumnFull(Cols))
}

func TestBoardLegalMoves(t *testing.T) {
	b := mustParse(t,
		"B . . . . . .",
		"R . . . . . .",
		"B . . . . . .",
		"R . . . . . .",
		"B . . . . . .",
		"R . . B . . .",
	)

	moves := b.LegalMoves(PlayerTwo)
	require.Len(t, moves, Cols-1)
	for _, m := range moves {
		assert.NotEqual(t, 0, m.Col, "full column must not be offered")
		assert.Equal(t, PlayerTwo, m.Player)
		wantRow := Rows - 1
		if m.Col == 3 {
			wantRow = Rows - 2
		}
		assert.Equal(t, wantRow, m.Row, "column %d", m.Col)
	}
}

func TestBoardIsTie(t *testing.T) {
	b := mustParse(t,
		"R R B B R R B",
		"B B R R B B R",
		"R R B B R R B",
		"B B R R B B R",
		"R R B B R R B",
		"B B R R B B R",
	)
	assert.True(t, b.IsTie())
	assert.Equal(t, MaxMove, b.MarkedCount())
	assert.Equal(t, 21, b.CountOwned(PlayerOne))

	require.NoError(t, b.Unplace(0, 4))
	assert.False(t, b.IsTie())
}

func TestBoardValueCopyIsDeep(t *testing.T) {
	b := NewBoard()
	cp := b
	require.NoError(t, cp.Place(5, 0, PlayerOne))

	cell, _ := b.Get(5, 0)
	assert.True(t, cell.Empty(), "mutating a copy must not touch the original")
	assert.False(t, b.Equal(&cp))
}

func TestParseBoardRejectsFloatingPiece(t *testing.T) {
	_, err := ParseBoard(
		".......",
		".......",
		".......",
		"...B...",
		".......",
		".......",
	)
	assert.Error(t, err)

	_, err = ParseBoard(".......")
	assert.Error(t, err)
}

func TestBoardStringRoundTrip(t *testing.T) {
	rows := []string{
		". . . . . . .",
		". . . . . . .",
		". . . . . . .",
		". . . R . . .",
		". . B B . . .",
		"R B R B . . .",
	}
	b := mustParse(t, rows...)
	parsed := mustParse(t, splitRows(b.String())...)
	assert.True(t, b.Equal(&parsed), "got\n%s", parsed.String())
}

// splitRows drops the column index footer from Board.String output.
func splitRows(s string) []string {
	var rows []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			rows = append(rows, s[start:i])
			start = i + 1
		}
	}
	return rows
}

func TestPlayerNext(t *testing.T) {
	assert.Equal(t, PlayerTwo, PlayerOne.Next())
	assert.Equal(t, PlayerOne, PlayerTwo.Next())
	assert.Panics(t, func() { PlayerNone.Next() })
}

func TestParsePlayer(t *testing.T) {
	tests := []struct {
		in      string
		want    Player
		wantErr bool
	}{
		{"blue", PlayerOne, false},
		{" Red ", PlayerTwo, false},
		{"1", PlayerOne, false},
		{"two", PlayerTwo, false},
		{"green", PlayerNone, true},
		{"", PlayerNone, true},
	}
	for _, tt := range tests {
		got, err := ParsePlayer(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "ParsePlayer(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "ParsePlayer(%q)", tt.in)
		assert.Equal(t, tt.want, got)
	}
}
