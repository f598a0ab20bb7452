package connectfour

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// drawnBoard is a full board whose longest run in any direction is two.
var drawnBoard = []string{
	"R R B B R R B",
	"B B R R B B R",
	"R R B B R R B",
	"B B R R B B R",
	"R R B B R R B",
	"B B R R B B R",
}

func TestEvaluateHorizontalAnyAnchor(t *testing.T) {
	b := mustParse(t,
		".......",
		".......",
		".......",
		".......",
		".......",
		".BBBBR.",
	)

	for col := 1; col <= 4; col++ {
		assert.True(t, Evaluate(&b, 5, col, PlayerOne, 4), "anchor col %d", col)
	}
	assert.False(t, Evaluate(&b, 5, 5, PlayerTwo, 4))
}

func TestEvaluateVertical(t *testing.T) {
	b := mustParse(t,
		".......",
		".......",
		"..R....",
		"..R....",
		"..R.B..",
		"..R.BB.",
	)
	assert.True(t, Evaluate(&b, 2, 2, PlayerTwo, 4))
	assert.True(t, Evaluate(&b, 5, 2, PlayerTwo, 4))
	assert.False(t, Evaluate(&b, 4, 4, PlayerOne, 4))
	assert.True(t, Evaluate(&b, 4, 4, PlayerOne, 2))
}

func TestEvaluateDiagonals(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		player Player
		anchor [2]int
	}{
		{
			name: "rising",
			rows: []string{
				".......",
				".......",
				"...B...",
				"..BR...",
				".BRR...",
				"BRRB...",
			},
			player: PlayerOne,
			anchor: [2]int{4, 1},
		},
		{
			name: "falling",
			rows: []string{
				".......",
				".......",
				"...R...",
				"...BR..",
				"...BBR.",
				"...BBBR",
			},
			player: PlayerTwo,
			anchor: [2]int{3, 4},
		},
		{
			name: "falling anchored at end",
			rows: []string{
				".......",
				".......",
				"...R...",
				"...BR..",
				"...BBR.",
				"...BBBR",
			},
			player: PlayerTwo,
			anchor: [2]int{5, 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustParse(t, tt.rows...)
			assert.True(t, Evaluate(&b, tt.anchor[0], tt.anchor[1], tt.player, 4))
			assert.False(t, Evaluate(&b, tt.anchor[0], tt.anchor[1], tt.player.Next(), 4))
		})
	}
}

func TestEvaluateNoFalsePositives(t *testing.T) {
	b := mustParse(t, drawnBoard...)

	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			for _, p := range []Player{PlayerOne, PlayerTwo} {
				assert.False(t, Evaluate(&b, r, c, p, 4), "(%d,%d) %v", r, c, p)
				assert.False(t, Evaluate(&b, r, c, p, 3), "(%d,%d) %v run 3", r, c, p)
				assert.LessOrEqual(t, RunThrough(&b, r, c, p), 2)
			}
		}
	}
}

func TestEvaluateOffBoardAnchor(t *testing.T) {
	b := mustParse(t, drawnBoard...)
	assert.NotPanics(t, func() {
		assert.False(t, Evaluate(&b, -1, -1, PlayerOne, 4))
		assert.False(t, Evaluate(&b, Rows, Cols, PlayerTwo, 4))
	})
	assert.False(t, Evaluate(&b, 0, 0, PlayerNone, 1))
}

func TestCountRunAndRunThrough(t *testing.T) {
	b := mustParse(t,
		".......",
		".......",
		".......",
		".......",
		"...R...",
		".BBRBB.",
	)

	assert.Equal(t, 2, CountRun(&b, 5, 3, PlayerOne, 0, -1))
	assert.Equal(t, 2, CountRun(&b, 5, 3, PlayerOne, 0, 1))
	assert.Equal(t, 0, CountRun(&b, 5, 6, PlayerOne, 0, 1), "walk off the edge")
	assert.Equal(t, 2, RunThrough(&b, 4, 3, PlayerTwo))
	assert.Equal(t, 0, RunThrough(&b, 5, 3, PlayerOne), "anchor owned by the other player")
}

func TestOpenRunThrough(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		anchor [2]int
		want   bool
	}{
		{
			name:   "room on both sides",
			rows:   []string{".......", ".......", ".......", ".......", ".......", "..BBB.R"},
			anchor: [2]int{5, 3},
			want:   true,
		},
		{
			name:   "room on one side",
			rows:   []string{".......", ".......", ".......", ".......", ".......", "BBB.R.R"},
			anchor: [2]int{5, 0},
			want:   true,
		},
		{
			name:   "walled horizontally",
			rows:   []string{".......", ".......", ".......", ".......", ".......", "RBBBR.."},
			anchor: [2]int{5, 2},
			want:   false,
		},
		{
			name:   "walled vertically",
			rows:   []string{"R......", "B......", "B......", "B......", "R......", "R......"},
			anchor: [2]int{2, 0},
			want:   false,
		},
		{
			name:   "too short",
			rows:   []string{".......", ".......", ".......", ".......", ".......", "..BB..."},
			anchor: [2]int{5, 2},
			want:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustParse(t, tt.rows...)
			got := OpenRunThrough(&b, tt.anchor[0], tt.anchor[1], PlayerOne, 3)
			assert.Equal(t, tt.want, got)
		})
	}
}
