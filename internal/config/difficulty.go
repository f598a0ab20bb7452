package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty accepts a preset name in any case.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalidConfig, s)
	}
}

// ApplyPreset modifies the advisor section for a difficulty preset.
// Normal restores the default weights; the seed is left alone.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	def := hardcodedConfig().Advisor
	cfg.Advisor.Weights = def.Weights
	cfg.Advisor.OpeningMoves = def.OpeningMoves

	switch preset {
	case DifficultyEasy:
		// Never looks at open threes and rarely builds.
		cfg.Advisor.Weights.BlockThree = 0
		cfg.Advisor.Weights.BuildTwo = 0
	case DifficultyHard:
		// Skips the random opening.
		cfg.Advisor.OpeningMoves = 0
	}
}
