package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mshamp4/ConnectFourRemote/internal/storage"
)

var (
	flagResultsLimit int
	flagResultsGame  string
	flagResultsClear bool
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show finished games",
	Long: `Display the most recent finished games and overall statistics.

Examples:
  connectfour results
  connectfour results --limit 50
  connectfour results --game 2f1c...   # Show the final board of one game
  connectfour results --clear`,
	Args: cobra.NoArgs,
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagResultsLimit, "limit", 10, "Number of games to list")
	resultsCmd.Flags().StringVar(&flagResultsGame, "game", "", "Game ID to show in full")
	resultsCmd.Flags().BoolVar(&flagResultsClear, "clear", false, "Delete all stored results")
}

func runResults(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	dbPath, err := cfg.DBPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagResultsClear:
		if err := store.ClearResults(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All results deleted.")
	case flagResultsGame != "":
		if err := showResult(store, flagResultsGame); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		if err := listResults(store, flagResultsLimit); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

func listResults(store *storage.Store, limit int) error {
	results, err := store.RecentResults(limit)
	if err != nil {
		return err
	}

	fmt.Println("Recent Games")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'connectfour play' and finish a game to see it here!")
		return nil
	}

	fmt.Printf("  %-16s  %-22s  %-8s  %-5s  %-5s  %s\n", "Date", "Outcome", "Opponent", "First", "Moves", "Game")
	fmt.Printf("  %-16s  %-22s  %-8s  %-5s  %-5s  %s\n", "----", "-------", "--------", "-----", "-----", "----")
	for _, r := range results {
		opponent := "human"
		if r.AIEnabled {
			opponent = "computer"
		}
		fmt.Printf("  %-16s  %-22s  %-8s  %-5s  %-5d  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Outcome(), opponent, r.StartingPlayer.Color(), r.Moves, r.GameID)
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Games: %d  Blue wins: %d  Red wins: %d  Ties: %d\n",
		stats.Games, stats.PlayerOneWins, stats.PlayerTwoWins, stats.Ties)
	if stats.VersusComputer > 0 {
		fmt.Printf("Against the computer: %d games, computer won %d\n", stats.VersusComputer, stats.ComputerWins)
	}
	return nil
}

func showResult(store *storage.Store, gameID string) error {
	r, err := store.ResultByGameID(gameID)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("no stored game with ID %s", gameID)
	}

	g, err := r.Replay()
	if err != nil {
		return fmt.Errorf("replay game %s: %w", gameID, err)
	}
	board := g.Snapshot()

	fmt.Printf("Game %s (%s)\n\n", r.GameID, r.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Println(board.String())
	fmt.Println()
	fmt.Printf("%s after %d moves. %s moved first.\n", r.Outcome(), r.Moves, r.StartingPlayer.Color())

	cols := make([]string, len(r.Columns))
	for i, c := range r.Columns {
		cols[i] = fmt.Sprint(c + 1)
	}
	fmt.Printf("Columns: %v\n", cols)
	return nil
}
