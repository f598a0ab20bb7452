package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mshamp4/ConnectFourRemote/internal/games/connectfour"
	"github.com/mshamp4/ConnectFourRemote/internal/games/connectfour/advisor"
)

var (
	flagHintBoard  string
	flagHintPlayer string
	flagHintStart  string
)

var hintCmd = &cobra.Command{
	Use:   "hint [columns]",
	Short: "Ask the computer which column it would play",
	Long: `Replay a game from a list of 1-based columns and print the move the
computer would choose next. Instead of columns, --board takes a position as
six rows top first, separated by '/', using '.', 'B' and 'R'.

The opening mode applies while the player to move has fewer pieces than the
configured number of opening moves, as it would in a real game.

Examples:
  connectfour hint 4,4,3
  connectfour hint 4,4,3 --seed 7
  connectfour hint --board ......./......./......./......./......./...B... --player red`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHint,
}

func init() {
	hintCmd.Flags().StringVar(&flagHintBoard, "board", "", "Position as six '/'-separated rows, top first")
	hintCmd.Flags().StringVar(&flagHintPlayer, "player", "", "Player to advise (default: the player to move)")
	hintCmd.Flags().StringVar(&flagHintStart, "start", "", "Color that moved first when replaying columns (default from config)")
}

func runHint(_ *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	logger, err := newLogger(os.Stderr, "hint")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	start := cfg.StartingPlayer()
	if flagHintStart != "" {
		if start, err = connectfour.ParsePlayer(flagHintStart); err != nil {
			fmt.Fprintf(os.Stderr, "Error: --start: %v\n", err)
			os.Exit(1)
		}
	}

	board, toMove, err := hintPosition(args, start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagHintPlayer != "" {
		if toMove, err = connectfour.ParsePlayer(flagHintPlayer); err != nil {
			fmt.Fprintf(os.Stderr, "Error: --player: %v\n", err)
			os.Exit(1)
		}
	}

	opts := cfg.AdvisorOptions()
	opts.OpeningMoves = max(0, opts.OpeningMoves-board.CountOwned(toMove))
	opts.Logger = logger
	adv := advisor.New(opts)

	fmt.Println(board.String())
	fmt.Println()

	move, ok := adv.ChooseMove(&board, toMove)
	if !ok {
		fmt.Println("The board is full; there is no move to suggest.")
		return
	}
	mode := "heuristic"
	if opts.OpeningMoves > 0 {
		mode = "opening"
	}
	fmt.Printf("%s should play column %d (row %d, %s, rating %d)\n",
		toMove.Color(), move.Col+1, move.Row, mode, move.Rating)
}

// hintPosition builds the position from --board or a column list and returns
// it with the player to move.
func hintPosition(args []string, start connectfour.Player) (connectfour.Board, connectfour.Player, error) {
	if flagHintBoard != "" {
		if len(args) > 0 {
			return connectfour.Board{}, connectfour.PlayerNone, fmt.Errorf("give either columns or --board, not both")
		}
		b, err := connectfour.ParseBoard(strings.Split(flagHintBoard, "/")...)
		if err != nil {
			return b, connectfour.PlayerNone, err
		}
		// Blue moves when both colors have the same number of pieces.
		toMove := connectfour.PlayerOne
		if b.CountOwned(connectfour.PlayerOne) > b.CountOwned(connectfour.PlayerTwo) {
			toMove = connectfour.PlayerTwo
		}
		return b, toMove, nil
	}

	var columns []int
	if len(args) == 1 {
		var err error
		if columns, err = parseColumns(args[0]); err != nil {
			return connectfour.Board{}, connectfour.PlayerNone, err
		}
	}
	g, err := connectfour.Replay(start, false, columns)
	if err != nil {
		return connectfour.Board{}, connectfour.PlayerNone, err
	}
	if g.Status().Terminal() {
		return connectfour.Board{}, connectfour.PlayerNone, fmt.Errorf("game is already over (%s)", g.Status())
	}
	return g.Snapshot(), g.CurrentPlayer(), nil
}

// parseColumns reads a comma or space separated list of 1-based columns.
func parseColumns(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	cols := make([]int, 0, len(fields))
	for _, f := range fields {
		c, err := strconv.Atoi(f)
		if err != nil || c < 1 || c > connectfour.Cols {
			return nil, fmt.Errorf("bad column %q: want 1-%d", f, connectfour.Cols)
		}
		cols = append(cols, c-1)
	}
	return cols, nil
}
