// Package config provides YAML-based configuration loading and difficulty
// presets for Connect Four.
package config

import (
	"errors"
	"fmt"

	"github.com/mshamp4/ConnectFourRemote/internal/games/connectfour"
	"github.com/mshamp4/ConnectFourRemote/internal/games/connectfour/advisor"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Opponent values accepted in the game section.
const (
	OpponentComputer = "computer"
	OpponentHuman    = "human"
)

// MaxAIDelayMS bounds the pause before the computer replies.
const MaxAIDelayMS = 10000

// Config contains all configuration for the game.
type Config struct {
	Advisor AdvisorConfig `yaml:"advisor"`
	Game    GameConfig    `yaml:"game"`
	UI      UIConfig      `yaml:"ui"`
	Storage StorageConfig `yaml:"storage"`
}

// AdvisorConfig configures the computer opponent.
type AdvisorConfig struct {
	OpeningMoves int           `yaml:"opening_moves"`
	Seed         int64         `yaml:"seed"` // 0 seeds from the clock
	Weights      WeightsConfig `yaml:"weights"`
}

// WeightsConfig mirrors advisor.Weights.
type WeightsConfig struct {
	Win        int `yaml:"win"`
	BlockWin   int `yaml:"block_win"`
	BlockThree int `yaml:"block_three"`
	BuildThree int `yaml:"build_three"`
	BuildTwo   int `yaml:"build_two"`
}

// GameConfig sets who plays a new game.
type GameConfig struct {
	StartingPlayer string `yaml:"starting_player"` // "blue" or "red"
	Opponent       string `yaml:"opponent"`        // "computer" or "human"
}

// UIConfig controls the terminal front end.
type UIConfig struct {
	AIDelayMS int          `yaml:"ai_delay_ms"`
	Colors    ColorsConfig `yaml:"colors"`
}

// ColorsConfig holds lipgloss color strings.
type ColorsConfig struct {
	PlayerOne string `yaml:"player_one"`
	PlayerTwo string `yaml:"player_two"`
	Empty     string `yaml:"empty"`
	Frame     string `yaml:"frame"`
	Cursor    string `yaml:"cursor"`
}

// StorageConfig locates the results database. An empty path means the
// default location under the XDG data directory.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Advisor.OpeningMoves < 0 || c.Advisor.OpeningMoves > advisor.MaxOpeningMoves {
		return fmt.Errorf("%w: advisor.opening_moves must be between 0 and %d, got %d",
			ErrInvalidConfig, advisor.MaxOpeningMoves, c.Advisor.OpeningMoves)
	}

	w := c.Advisor.Weights
	weights := []struct {
		name  string
		value int
	}{
		{"win", w.Win},
		{"block_win", w.BlockWin},
		{"block_three", w.BlockThree},
		{"build_three", w.BuildThree},
		{"build_two", w.BuildTwo},
	}
	for _, wt := range weights {
		if wt.value < 0 {
			return fmt.Errorf("%w: advisor.weights.%s must not be negative", ErrInvalidConfig, wt.name)
		}
	}
	if w.Win <= w.BlockWin {
		return fmt.Errorf("%w: advisor.weights.win (%d) must exceed block_win (%d)",
			ErrInvalidConfig, w.Win, w.BlockWin)
	}
	for _, wt := range weights[2:] {
		if wt.value >= w.BlockWin {
			return fmt.Errorf("%w: advisor.weights.%s (%d) must be below block_win (%d)",
				ErrInvalidConfig, wt.name, wt.value, w.BlockWin)
		}
	}

	if _, err := connectfour.ParsePlayer(c.Game.StartingPlayer); err != nil {
		return fmt.Errorf("%w: game.starting_player: %v", ErrInvalidConfig, err)
	}
	switch c.Game.Opponent {
	case OpponentComputer, OpponentHuman:
	default:
		return fmt.Errorf("%w: game.opponent must be %q or %q, got %q",
			ErrInvalidConfig, OpponentComputer, OpponentHuman, c.Game.Opponent)
	}

	if c.UI.AIDelayMS < 0 || c.UI.AIDelayMS > MaxAIDelayMS {
		return fmt.Errorf("%w: ui.ai_delay_ms must be between 0 and %d", ErrInvalidConfig, MaxAIDelayMS)
	}
	return nil
}

// StartingPlayer returns the parsed game.starting_player. Call Validate first.
func (c *Config) StartingPlayer() connectfour.Player {
	p, err := connectfour.ParsePlayer(c.Game.StartingPlayer)
	if err != nil {
		return connectfour.PlayerOne
	}
	return p
}

// VersusComputer reports whether new games are played against the advisor.
func (c *Config) VersusComputer() bool {
	return c.Game.Opponent == OpponentComputer
}

// AdvisorOptions converts the advisor section. The logger is left for the
// caller to set.
func (c *Config) AdvisorOptions() advisor.Options {
	w := c.Advisor.Weights
	return advisor.Options{
		Weights: advisor.Weights{
			Win:        w.Win,
			BlockWin:   w.BlockWin,
			BlockThree: w.BlockThree,
			BuildThree: w.BuildThree,
			BuildTwo:   w.BuildTwo,
		},
		OpeningMoves: c.Advisor.OpeningMoves,
		Seed:         c.Advisor.Seed,
	}
}
