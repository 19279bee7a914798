package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pacmaze/pacmaze/internal/multiplayer"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct{ score, level int }{{100, 2}, {50, 1}, {200, 3}} {
		if _, err := store.SaveScore("pacman", s.score, s.level); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("pacman_pvp", 500, 4); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("pacman", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending, with levels intact.
	if scores[0].Score != 200 || scores[0].Level != 3 {
		t.Errorf("Expected top entry 200/level 3, got %d/level %d", scores[0].Score, scores[0].Level)
	}
	if scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	pvpScores, err := store.TopScores("pacman_pvp", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(pvpScores) != 1 {
		t.Errorf("Expected 1 pvp score, got %d", len(pvpScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("pacman", (i+1)*100, 1)
	}

	scores, err := store.TopScores("pacman", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("pacman")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("pacman", 100, 1)
	store.SaveScore("pacman", 300, 2)
	store.SaveScore("pacman", 200, 2)

	high, err = store.HighScore("pacman")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("pacman", 100, 1)
	store.SaveScore("pacman", 200, 1)
	store.SaveScore("pacman_pvp", 300, 1)

	if err := store.ClearScores("pacman"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	classic, _ := store.TopScores("pacman", 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 classic scores after clear, got %d", len(classic))
	}
	pvp, _ := store.TopScores("pacman_pvp", 10)
	if len(pvp) != 1 {
		t.Error("PvP scores should not be affected by clearing classic")
	}
}

func TestStoreMatches(t *testing.T) {
	store := openTestStore(t)

	results := []multiplayer.MatchResult{
		{GameID: "pacman_pvp", Winner: "pacman", PacmanScore: 2300, LevelReached: 2, DurationSecs: 310},
		{GameID: "pacman_pvp", Winner: "ghosts", PacmanScore: 450, LevelReached: 1, DurationSecs: 95},
	}
	for _, r := range results {
		if _, err := store.SaveMatch(r); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	matches, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(matches))
	}
	for _, m := range matches {
		if m.Winner != "pacman" && m.Winner != "ghosts" {
			t.Errorf("Unexpected winner %q", m.Winner)
		}
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("pacman", 100, 1)
	store.SaveScore("pacman", 300, 3)

	stats, err := store.GetGameStats("pacman")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 {
		t.Errorf("stats = %+v, want 2 games with high 300", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
}
