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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{GameID: "spacerun", Player: "ann", Score: 100, Survived: 12.5},
		{GameID: "spacerun", Player: "bob", Score: 50, Survived: 8},
		{GameID: "spacerun", Player: "ann", Score: 200, Survived: 31.2},
		{GameID: "other", Player: "cid", Score: 500, Survived: 60},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	scores, err := store.TopScores("spacerun", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	expected := []struct {
		score    int
		player   string
		survived float64
	}{
		{200, "ann", 31.2},
		{100, "ann", 12.5},
		{50, "bob", 8},
	}
	for i, e := range expected {
		got := scores[i]
		if got.Score != e.score || got.Player != e.player || got.Survived != e.survived {
			t.Errorf("scores[%d] = %d/%s/%v, expected %d/%s/%v",
				i, got.Score, got.Player, got.Survived, e.score, e.player, e.survived)
		}
		if got.CreatedAt.IsZero() {
			t.Errorf("scores[%d] has no timestamp", i)
		}
	}
}

func TestStoreSaveRunRequiresGame(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(Run{Score: 10}); err == nil {
		t.Error("SaveRun() without a game id should fail")
	}
}

func TestStoreTopScoresTieBreak(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "g", Player: "first", Score: 100, Survived: 10})
	store.SaveRun(Run{GameID: "g", Player: "longer", Score: 100, Survived: 14})
	store.SaveRun(Run{GameID: "g", Player: "second", Score: 100, Survived: 10})

	scores, err := store.TopScores("g", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	order := []string{"longer", "first", "second"}
	for i, p := range order {
		if scores[i].Player != p {
			t.Errorf("scores[%d].Player = %q, expected %q", i, scores[i].Player, p)
		}
	}
}

func TestStoreLongestRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "g", Player: "scorer", Score: 500, Survived: 20})
	store.SaveRun(Run{GameID: "g", Player: "survivor", Score: 40, Survived: 95.5})
	store.SaveRun(Run{GameID: "g", Player: "tied", Score: 60, Survived: 20})
	store.SaveRun(Run{GameID: "other", Player: "elsewhere", Score: 1, Survived: 999})

	runs, err := store.LongestRuns("g", 10)
	if err != nil {
		t.Fatalf("LongestRuns() failed: %v", err)
	}
	order := []string{"survivor", "scorer", "tied"}
	if len(runs) != len(order) {
		t.Fatalf("LongestRuns() returned %d runs, expected %d", len(runs), len(order))
	}
	for i, p := range order {
		if runs[i].Player != p {
			t.Errorf("runs[%d].Player = %q, expected %q", i, runs[i].Player, p)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{GameID: "test", Score: (i + 1) * 100})
	}

	scores, err := store.TopScores("test", 3)
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

	high, err := store.HighScore("spacerun")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveRun(Run{GameID: "spacerun", Score: 100})
	store.SaveRun(Run{GameID: "spacerun", Score: 300})
	store.SaveRun(Run{GameID: "spacerun", Score: 200})

	high, err = store.HighScore("spacerun")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("spacerun")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty != (GameStats{}) {
		t.Errorf("Stats() on an empty game = %+v, expected zero", empty)
	}

	store.SaveRun(Run{GameID: "spacerun", Score: 40, Survived: 4.5})
	store.SaveRun(Run{GameID: "spacerun", Score: 90, Survived: 9.5})
	store.SaveRun(Run{GameID: "other", Score: 900, Survived: 99})

	stats, err := store.Stats("spacerun")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	expected := GameStats{Runs: 2, BestScore: 90, LongestRun: 9.5, TotalSurvive: 14}
	if stats != expected {
		t.Errorf("Stats() = %+v, expected %+v", stats, expected)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "spacerun", Score: 100})
	store.SaveRun(Run{GameID: "spacerun", Score: 200})
	store.SaveRun(Run{GameID: "other", Score: 300})

	if err := store.ClearScores("spacerun"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	cleared, _ := store.TopScores("spacerun", 10)
	if len(cleared) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(cleared))
	}

	kept, _ := store.TopScores("other", 10)
	if len(kept) != 1 {
		t.Errorf("Other game's scores should not be affected by clearing")
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
