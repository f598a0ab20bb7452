package core

import "testing"

func TestColumnActionRoundTrip(t *testing.T) {
	for col := 0; col < 7; col++ {
		a := ColumnAction(col)
		got, ok := a.Column()
		if !ok || got != col {
			t.Errorf("ColumnAction(%d).Column() = %d, %v", col, got, ok)
		}
	}
	if ColumnAction(7) != ActionNone || ColumnAction(-1) != ActionNone {
		t.Error("out-of-range columns should map to ActionNone")
	}
	if _, ok := ActionDrop.Column(); ok {
		t.Error("ActionDrop is not a column action")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionNone, "None"},
		{ActionDrop, "Drop"},
		{ActionToggleOpponent, "ToggleOpponent"},
		{ActionColumn0, "Column1"},
		{ActionColumn6, "Column7"},
		{Action(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, want %q", tt.a, got, tt.want)
		}
	}
}
