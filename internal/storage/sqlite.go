// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Only results are stored. A stored game can be replayed for display but
// never resumed.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/mshamp4/ConnectFourRemote/internal/games/connectfour"
)

// ErrNotFinished is returned when saving a game that is still in progress.
var ErrNotFinished = errors.New("storage: game is not finished")

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// Result is one finished game.
type Result struct {
	ID             int64
	GameID         string // UUID assigned by the engine
	StartingPlayer connectfour.Player
	AIEnabled      bool
	Status         connectfour.Status
	Winner         connectfour.Player // PlayerNone on a tie
	Moves          int
	Columns        []int // Every column played, in order
	CreatedAt      time.Time
}

// ResultFromGame builds a Result from a finished game.
func ResultFromGame(g *connectfour.Game) (Result, error) {
	if !g.Status().Terminal() {
		return Result{}, ErrNotFinished
	}
	return Result{
		GameID:         g.ID(),
		StartingPlayer: g.StartingPlayer(),
		AIEnabled:      g.IsAIEnabled(),
		Status:         g.Status(),
		Winner:         g.Winner(),
		Moves:          g.MoveCount(),
		Columns:        g.History(),
	}, nil
}

// Replay rebuilds the final position of a stored result.
func (r Result) Replay() (*connectfour.Game, error) {
	return connectfour.Replay(r.StartingPlayer, r.AIEnabled, r.Columns)
}

// Outcome describes how the game ended, e.g. "Blue won" or "Tie".
func (r Result) Outcome() string {
	switch r.Status {
	case connectfour.StatusWon:
		if r.AIEnabled && r.Winner == connectfour.AIPlayer {
			return r.Winner.Color() + " (computer) won"
		}
		return r.Winner.Color() + " won"
	case connectfour.StatusTie:
		return "Tie"
	default:
		return string(r.Status)
	}
}

// Stats aggregates every stored result.
type Stats struct {
	Games          int
	PlayerOneWins  int
	PlayerTwoWins  int
	Ties           int
	VersusComputer int
	ComputerWins   int
	LastPlayed     time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL UNIQUE,
			starting_player INTEGER NOT NULL,
			ai_enabled INTEGER NOT NULL DEFAULT 0,
			status TEXT NOT NULL,
			winner INTEGER NOT NULL DEFAULT 0,
			moves INTEGER NOT NULL,
			columns TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_status ON results(status);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished game. Returns the ID of the inserted record.
// Saving the same game twice fails on the unique game_id.
func (s *Store) SaveResult(r Result) (int64, error) {
	if !r.Status.Terminal() {
		return 0, ErrNotFinished
	}
	if _, err := uuid.Parse(r.GameID); err != nil {
		return 0, fmt.Errorf("storage: bad game id %q: %w", r.GameID, err)
	}

	ai := 0
	if r.AIEnabled {
		ai = 1
	}
	res, err := s.db.Exec(
		`INSERT INTO results
		 (game_id, starting_player, ai_enabled, status, winner, moves, columns)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, int(r.StartingPlayer), ai, string(r.Status), int(r.Winner), r.Moves, encodeColumns(r.Columns),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// SaveGame is shorthand for ResultFromGame followed by SaveResult.
func (s *Store) SaveGame(g *connectfour.Game) (int64, error) {
	r, err := ResultFromGame(g)
	if err != nil {
		return 0, err
	}
	return s.SaveResult(r)
}

const selectResult = `SELECT id, game_id, starting_player, ai_enabled, status, winner, moves, columns, created_at
	FROM results`

// RecentResults retrieves the most recent results, newest first.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(selectResult+` ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// ResultByGameID retrieves a result by its game UUID.
// Returns nil without an error if no such game was stored.
func (s *Store) ResultByGameID(gameID string) (*Result, error) {
	row := s.db.QueryRow(selectResult+` WHERE game_id = ?`, gameID)
	r, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Stats aggregates all stored results.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(status = ? AND winner = ?), 0),
		        COALESCE(SUM(status = ? AND winner = ?), 0),
		        COALESCE(SUM(status = ?), 0),
		        COALESCE(SUM(ai_enabled), 0),
		        COALESCE(SUM(ai_enabled = 1 AND status = ? AND winner = ?), 0),
		        MAX(created_at)
		 FROM results`,
		string(connectfour.StatusWon), int(connectfour.PlayerOne),
		string(connectfour.StatusWon), int(connectfour.PlayerTwo),
		string(connectfour.StatusTie),
		string(connectfour.StatusWon), int(connectfour.AIPlayer),
	).Scan(&stats.Games, &stats.PlayerOneWins, &stats.PlayerTwoWins, &stats.Ties,
		&stats.VersusComputer, &stats.ComputerWins, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// ClearResults deletes every stored result.
func (s *Store) ClearResults() error {
	if _, err := s.db.Exec("DELETE FROM results"); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(sc scanner) (Result, error) {
	var (
		r                 Result
		start, ai, winner int
		status, columns   string
		createdAt         any
	)
	err := sc.Scan(&r.ID, &r.GameID, &start, &ai, &status, &winner, &r.Moves, &columns, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return r, err
	}
	if err != nil {
		return r, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	r.StartingPlayer = connectfour.Player(start)
	r.AIEnabled = ai != 0
	r.Status = connectfour.Status(status)
	r.Winner = connectfour.Player(winner)
	r.CreatedAt = parseTime(createdAt)
	if r.Columns, err = decodeColumns(columns); err != nil {
		return r, fmt.Errorf("storage: game %s: %w", r.GameID, err)
	}
	return r, nil
}

func encodeColumns(cols []int) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ",")
}

func decodeColumns(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	cols := make([]int, len(parts))
	for i, p := range parts {
		c, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("bad column list %q: %w", s, err)
		}
		cols[i] = c
	}
	return cols, nil
}

// parseTime handles both time.Time and the string form SQLite may return.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

