package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mshamp4/ConnectFourRemote/internal/games/connectfour"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// playGame replays columns and fails the test if the game is still running.
func playGame(t *testing.T, start connectfour.Player, ai bool, columns ...int) *connectfour.Game {
	t.Helper()
	g, err := connectfour.Replay(start, ai, columns)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if !g.Status().Terminal() {
		t.Fatalf("game not finished after %v", columns)
	}
	return g
}

// Player one wins along the bottom row.
var horizontalWin = []int{0, 0, 1, 1, 2, 2, 3}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)
	g := playGame(t, connectfour.PlayerOne, true, horizontalWin...)

	id, err := store.SaveGame(g)
	if err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}
	if id == 0 {
		t.Error("expected a non-zero row ID")
	}

	got, err := store.ResultByGameID(g.ID())
	if err != nil {
		t.Fatalf("ResultByGameID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("stored result not found")
	}
	if got.Status != connectfour.StatusWon || got.Winner != connectfour.PlayerOne {
		t.Errorf("status/winner = %s/%v, want won/Player 1", got.Status, got.Winner)
	}
	if !got.AIEnabled || got.StartingPlayer != connectfour.PlayerOne || got.Moves != 7 {
		t.Errorf("unexpected result %+v", got)
	}
	if len(got.Columns) != len(horizontalWin) {
		t.Fatalf("columns = %v, want %v", got.Columns, horizontalWin)
	}
	for i, c := range horizontalWin {
		if got.Columns[i] != c {
			t.Errorf("columns[%d] = %d, want %d", i, got.Columns[i], c)
		}
	}
	if got.CreatedAt.IsZero() {
		t.Error("created_at was not parsed")
	}

	replayed, err := got.Replay()
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	a, b := replayed.Snapshot(), g.Snapshot()
	if !a.Equal(&b) {
		t.Errorf("replayed board differs:\n%s\nwant\n%s", a.String(), b.String())
	}
}

func TestStoreRejectsUnfinishedAndDuplicates(t *testing.T) {
	store := openTestStore(t)

	running, err := connectfour.NewGame(connectfour.PlayerOne, false)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveGame(running); !errors.Is(err, ErrNotFinished) {
		t.Errorf("SaveGame(in progress) error = %v, want ErrNotFinished", err)
	}

	g := playGame(t, connectfour.PlayerOne, false, horizontalWin...)
	if _, err := store.SaveGame(g); err != nil {
		t.Fatalf("first SaveGame() failed: %v", err)
	}
	if _, err := store.SaveGame(g); err == nil {
		t.Error("expected error saving the same game twice")
	}

	r, _ := ResultFromGame(g)
	r.GameID = "not-a-uuid"
	if _, err := store.SaveResult(r); err == nil {
		t.Error("expected error for malformed game id")
	}
}

func TestStoreResultByGameIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.ResultByGameID("00000000-0000-0000-0000-000000000000")
	if err != nil {
		t.Fatalf("ResultByGameID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for unknown game, got %+v", got)
	}
}

func TestStoreRecentResultsLimit(t *testing.T) {
	store := openTestStore(t)

	var ids []string
	for i := 0; i < 5; i++ {
		g := playGame(t, connectfour.PlayerOne, false, horizontalWin...)
		if _, err := store.SaveGame(g); err != nil {
			t.Fatalf("SaveGame() failed: %v", err)
		}
		ids = append(ids, g.ID())
	}

	results, err := store.RecentResults(3)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results with limit, got %d", len(results))
	}
	// Newest first
	for i, r := range results {
		if want := ids[len(ids)-1-i]; r.GameID != want {
			t.Errorf("results[%d].GameID = %s, want %s", i, r.GameID, want)
		}
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Games != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty store stats = %+v", stats)
	}

	// Player two wins vertically against a human and again with the computer on.
	redWins := []int{0, 1, 0, 1, 0, 1, 6, 1}
	games := []*connectfour.Game{
		playGame(t, connectfour.PlayerOne, true, horizontalWin...),
		playGame(t, connectfour.PlayerOne, false, redWins...),
		playGame(t, connectfour.PlayerOne, true, redWins...),
	}
	for _, g := range games {
		if _, err := store.SaveGame(g); err != nil {
			t.Fatalf("SaveGame() failed: %v", err)
		}
	}

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Games != 3 {
		t.Errorf("Games = %d, want 3", stats.Games)
	}
	if stats.PlayerOneWins != 1 || stats.PlayerTwoWins != 2 || stats.Ties != 0 {
		t.Errorf("wins = %d/%d ties = %d, want 1/2/0", stats.PlayerOneWins, stats.PlayerTwoWins, stats.Ties)
	}
	if stats.VersusComputer != 2 || stats.ComputerWins != 1 {
		t.Errorf("vs computer = %d, computer wins = %d, want 2 and 1", stats.VersusComputer, stats.ComputerWins)
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveGame(playGame(t, connectfour.PlayerOne, false, horizontalWin...)); err != nil {
		t.Fatal(err)
	}
	if err := store.ClearResults(); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	results, _ := store.RecentResults(10)
	if len(results) != 0 {
		t.Errorf("Expected 0 results after clear, got %d", len(results))
	}
}

func TestColumnsEncoding(t *testing.T) {
	cols := []int{3, 3, 0, 6}
	got, err := decodeColumns(encodeColumns(cols))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(cols) {
		t.Fatalf("decodeColumns() = %v", got)
	}
	if empty, _ := decodeColumns(""); empty != nil {
		t.Errorf("empty list decoded to %v", empty)
	}
	if _, err := decodeColumns("1,x"); err == nil {
		t.Error("expected error for malformed list")
	}
}
