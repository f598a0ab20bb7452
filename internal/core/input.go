package core

// Action represents a semantic game action, abstracted from physical key presses.
// The TUI maps keys to actions so the game model never sees raw input.
type Action int

const (
	ActionNone           Action = iota
	ActionLeft                  // H, Left arrow - move the column cursor left
	ActionRight                 // L, Right arrow - move the column cursor right
	ActionDrop                  // Enter, Space - drop a piece in the cursor column
	ActionNewGame               // N - start over with the same settings
	ActionSwitchColor           // C - swap which color moves first
	ActionToggleOpponent        // O - switch between computer and human opponent
	ActionHelp                  // ? - toggle the full help view
	ActionBack                  // B, Escape - go back to the menu
	ActionQuit                  // Q, Ctrl+C - exit
	ActionColumn0               // 1..7 - drop straight into a column
	ActionColumn1
	ActionColumn2
	ActionColumn3
	ActionColumn4
	ActionColumn5
	ActionColumn6
)

// ColumnAction returns the direct-drop action for a zero-based column.
// Out-of-range columns map to ActionNone.
func ColumnAction(col int) Action {
	if col < 0 || col > int(ActionColumn6-ActionColumn0) {
		return ActionNone
	}
	return ActionColumn0 + Action(col)
}

// Column returns the column a direct-drop action targets.
func (a Action) Column() (int, bool) {
	if a < ActionColumn0 || a > ActionColumn6 {
		return 0, false
	}
	return int(a - ActionColumn0), true
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if col, ok := a.Column(); ok {
		return "Column" + string(rune('1'+col))
	}
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDrop:
		return "Drop"
	case ActionNewGame:
		return "NewGame"
	case ActionSwitchColor:
		return "SwitchColor"
	case ActionToggleOpponent:
		return "ToggleOpponent"
	case ActionHelp:
		return "Help"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
