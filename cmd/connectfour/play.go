package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mshamp4/ConnectFourRemote/internal/config"
	"github.com/mshamp4/ConnectFourRemote/internal/core"
	"github.com/mshamp4/ConnectFourRemote/internal/platform/tui"
	"github.com/mshamp4/ConnectFourRemote/internal/storage"
)

var (
	flagOpponent string
	flagColor    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Connect Four",
	Long: `Open the setup menu and play in the terminal.

Controls:
  Left/Right  - Move the column cursor
  Enter/Space - Drop a piece
  1-7         - Drop straight into a column
  N           - New game
  C           - Switch which color moves first
  O           - Switch between computer and human opponent
  Esc/B       - Back to the menu
  Q/Ctrl+C    - Quit

The computer always plays Red. Finished games are saved to the results
database; logs go to $XDG_STATE_HOME/connectfour/connectfour.log.

Examples:
  connectfour play
  connectfour play --opponent human
  connectfour play --color red --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagOpponent, "opponent", "", "Opponent: computer or human (default from config)")
	playCmd.Flags().StringVar(&flagColor, "color", "", "Color that moves first: blue or red (default from config)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagOpponent != "" {
		cfg.Game.Opponent = flagOpponent
	}
	if flagColor != "" {
		cfg.Game.StartingPlayer = flagColor
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs go to a file.
	logPath, err := config.LogPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger, err := newLogger(logFile, "connectfour")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var store *storage.Store
	if dbPath, err := cfg.DBPath(); err != nil {
		logger.Warn("no results database", "error", err)
	} else if store, err = storage.Open(dbPath); err != nil {
		logger.Warn("could not open results database", "path", dbPath, "error", err)
		store = nil // Continue without storage
	}
	if store != nil {
		defer store.Close()
	}

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.Seed = cfg.Advisor.Seed

	if err := tui.Run(cfg, store, logger, rt); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
