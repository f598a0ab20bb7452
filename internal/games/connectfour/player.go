// Package connectfour implements the Connect Four game engine: board state,
// gravity-drop placement, win/tie detection and the game state machine.
// It has no knowledge of terminals or rendering; the platform layer calls
// into it and draws the results.
package connectfour

import (
	"fmt"
	"strings"
)

// Player identifies the owner of a cell and whose turn it is.
type Player uint8

const (
	PlayerNone Player = iota // Unowned cell, never a valid mover
	PlayerOne                // Blue
	PlayerTwo                // Red
)

// Next returns the player who moves after p.
// Panics on PlayerNone, which has no successor.
func (p Player) Next() Player {
	switch p {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	default:
		panic(fmt.Sprintf("connectfour: Next called on %v", p))
	}
}

// Valid reports whether p can make a move.
func (p Player) Valid() bool {
	return p == PlayerOne || p == PlayerTwo
}

// String returns a human-readable name for the player.
func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "Player 1"
	case PlayerTwo:
		return "Player 2"
	default:
		return "None"
	}
}

// Color returns the display color name of the player's pieces.
func (p Player) Color() string {
	switch p {
	case PlayerOne:
		return "Blue"
	case PlayerTwo:
		return "Red"
	default:
		return ""
	}
}

// ParsePlayer converts a flag or config value into a Player.
// Accepts colors ("blue", "red") and ordinals ("one", "two", "1", "2").
func ParsePlayer(s string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "blue", "one", "1", "player1":
		return PlayerOne, nil
	case "red", "two", "2", "player2":
		return PlayerTwo, nil
	default:
		return PlayerNone, fmt.Errorf("connectfour: unknown player %q", s)
	}
}
