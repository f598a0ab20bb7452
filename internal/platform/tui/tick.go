// Package tui provides the Bubble Tea front end for Connect Four.
// It handles the terminal UI loop, input mapping, and the computer's replies.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// AIMoveMsg asks the model to let the computer move in the named game.
// Replies for a game that has since been replaced are dropped.
type AIMoveMsg struct {
	GameID string
}

// aiMoveCmd returns a command that delivers an AIMoveMsg after delay, so the
// human's piece is drawn before the reply lands.
func aiMoveCmd(delay time.Duration, gameID string) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return AIMoveMsg{GameID: gameID} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return AIMoveMsg{GameID: gameID}
	})
}
