package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"

	"github.com/mshamp4/ConnectFourRemote/internal/games/connectfour/advisor"
)

//go:embed defaults/connectfour.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// DefaultConfig returns the embedded defaults, or the hardcoded ones if the
// embedded file does not parse.
func DefaultConfig() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return hardcodedConfig()
	}
	return cfg
}

func hardcodedConfig() Config {
	w := advisor.DefaultWeights()
	return Config{
		Advisor: AdvisorConfig{
			OpeningMoves: advisor.MaxOpeningMoves,
			Weights: WeightsConfig{
				Win:        w.Win,
				BlockWin:   w.BlockWin,
				BlockThree: w.BlockThree,
				BuildThree: w.BuildThree,
				BuildTwo:   w.BuildTwo,
			},
		},
		Game: GameConfig{
			StartingPlayer: "blue",
			Opponent:       OpponentComputer,
		},
		UI: UIConfig{
			AIDelayMS: 400,
			Colors: ColorsConfig{
				PlayerOne: "33",
				PlayerTwo: "196",
				Empty:     "240",
				Frame:     "25",
				Cursor:    "226",
			},
		},
	}
}
