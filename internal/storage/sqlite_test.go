package storage

import (
	"os"
	"path/filepath"
	"testing"
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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveResult(Result{LevelID: "classic", Score: 100, MovesUsed: 30, Won: true})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive ID, got %d", id)
	}
	store.SaveResult(Result{LevelID: "classic", Score: 250, MovesUsed: 30, Player: "alice"})
	store.SaveResult(Result{LevelID: "goals", Score: 75, MovesUsed: 12})

	results, err := store.TopScores("classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 classic results, got %d", len(results))
	}

	first := results[0]
	if first.Score != 250 || first.Player != "alice" || first.Won {
		t.Errorf("first result = %+v, want alice with 250 and not won", first)
	}
	second := results[1]
	if second.Score != 100 || second.Player != "local" || !second.Won || second.MovesUsed != 30 {
		t.Errorf("second result = %+v, want local win with 100 in 30 moves", second)
	}
	if second.CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}
}

func TestStoreTopScoresOrder(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveResult(Result{LevelID: "test", Score: (i + 1) * 100, MovesUsed: 30})
	}
	// Same score as the best, fewer moves ranks first.
	store.SaveResult(Result{LevelID: "test", Score: 500, MovesUsed: 10, Player: "fast"})

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Player != "fast" {
		t.Errorf("Expected fewest moves to break the tie, got %+v", scores[0])
	}
	if scores[1].Score != 500 || scores[2].Score != 400 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	defaulted, err := store.TopScores("test", 0)
	if err != nil {
		t.Fatalf("TopScores(0) failed: %v", err)
	}
	if len(defaulted) != 6 {
		t.Errorf("Expected default limit to return all 6, got %d", len(defaulted))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for unplayed level, got %d", high)
	}

	store.SaveResult(Result{LevelID: "classic", Score: 100})
	store.SaveResult(Result{LevelID: "classic", Score: 300})
	store.SaveResult(Result{LevelID: "classic", Score: 200})

	high, err = store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{LevelID: "classic", Score: 100})
	store.SaveResult(Result{LevelID: "classic", Score: 200})
	store.SaveResult(Result{LevelID: "wide", Score: 300})

	if err := store.ClearScores("classic"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	classic, _ := store.TopScores("classic", 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 classic results after clear, got %d", len(classic))
	}

	wide, _ := store.TopScores("wide", 10)
	if len(wide) != 1 {
		t.Errorf("wide results should not be affected by clearing classic")
	}
}

func TestStoreAllResults(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveResult(Result{LevelID: "test", Score: i * 10})
	}

	results, err := store.AllResults("test")
	if err != nil {
		t.Fatalf("AllResults() failed: %v", err)
	}
	if len(results) != 20 {
		t.Fatalf("Expected 20 results, got %d", len(results))
	}
	if results[0].Score != 190 {
		t.Errorf("Expected newest result first, got score %d", results[0].Score)
	}
}

func TestStoreLevelStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetLevelStats("classic")
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}
	if empty.Plays != 0 || !empty.LastPlayed.IsZero() || empty.WinRate() != 0 {
		t.Errorf("unplayed stats = %+v", empty)
	}

	store.SaveResult(Result{LevelID: "classic", Score: 100, Won: true})
	store.SaveResult(Result{LevelID: "classic", Score: 300})
	store.SaveResult(Result{LevelID: "classic", Score: 200, Won: true})
	store.SaveResult(Result{LevelID: "goals", Score: 50})

	stats, err := store.GetLevelStats("classic")
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}
	if stats.Plays != 3 || stats.Wins != 2 || stats.HighScore != 300 {
		t.Errorf("classic stats = %+v, want 3 plays, 2 wins, high 300", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not populated")
	}

	all, err := store.GetAllLevelStats()
	if err != nil {
		t.Fatalf("GetAllLevelStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 levels, got %d", len(all))
	}
	if all["goals"].Plays != 1 || all["goals"].Wins != 0 {
		t.Errorf("goals stats = %+v", all["goals"])
	}
	if all["classic"].HighScore != 300 {
		t.Errorf("classic high score = %d, want 300", all["classic"].HighScore)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		name string
		in   any
		zero bool
	}{
		{"sqlite text", "2026-01-02 15:04:05", false},
		{"rfc3339", "2026-01-02T15:04:05Z", false},
		{"garbage", "yesterday", true},
		{"nil", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseTime(tt.in); got.IsZero() != tt.zero {
				t.Errorf("parseTime(%v) = %v, zero=%v", tt.in, got, tt.zero)
			}
		})
	}
}
