package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}

	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
}

func TestStoreRecordRunAssignsID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.RecordRun(Run{Difficulty: "easy", Score: 340, Seed: 7, KilledBy: "rock", NewBest: true})
	if err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("RecordRun() returned %q, expected a UUID", id)
	}

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run == nil {
		t.Fatal("RunByID() returned nil for a stored run")
	}
	if run.Score != 340 || run.Seed != 7 || run.KilledBy != "rock" || !run.NewBest {
		t.Errorf("RunByID() = %+v, fields not preserved", run)
	}
	if run.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	keep, err := store.RecordRun(Run{ID: "fixed-id", Difficulty: "hard", Score: 1})
	if err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
	if keep != "fixed-id" {
		t.Errorf("RecordRun() replaced a caller-supplied ID with %q", keep)
	}
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	run, err := store.RunByID("does-not-exist")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run != nil {
		t.Errorf("RunByID() = %+v, expected nil", run)
	}
}

func TestStoreTopRuns(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 200, 50} {
		if _, err := store.RecordRun(Run{Difficulty: "normal", Score: score}); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}
	if _, err := store.RecordRun(Run{Difficulty: "hard", Score: 999}); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}

	runs, err := store.TopRuns("normal", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	want := []int{200, 100, 50}
	for i, w := range want {
		if runs[i].Score != w {
			t.Errorf("runs[%d].Score = %d, expected %d", i, runs[i].Score, w)
		}
	}

	limited, err := store.TopRuns("normal", 2)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 runs with limit, got %d", len(limited))
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, d := range []string{"easy", "hard", "normal"} {
		run := Run{Difficulty: d, Score: i, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		if _, err := store.RecordRun(run); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if runs[0].Difficulty != "normal" || runs[1].Difficulty != "hard" {
		t.Errorf("RecentRuns() order = %s, %s; expected normal, hard", runs[0].Difficulty, runs[1].Difficulty)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("easy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 with no runs, got %d", high)
	}

	for _, score := range []int{100, 300, 200} {
		store.RecordRun(Run{Difficulty: "easy", Score: score})
	}

	high, err = store.HighScore("easy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.RecordRun(Run{Difficulty: "easy", Score: 100})
	store.RecordRun(Run{Difficulty: "easy", Score: 200})
	store.RecordRun(Run{Difficulty: "hard", Score: 300})

	if err := store.ClearRuns("easy"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if runs, _ := store.TopRuns("easy", 10); len(runs) != 0 {
		t.Errorf("Expected 0 easy runs after clear, got %d", len(runs))
	}
	if runs, _ := store.TopRuns("hard", 10); len(runs) != 1 {
		t.Error("Hard runs should not be affected by clearing easy")
	}

	if err := store.ClearRuns(""); err != nil {
		t.Fatalf("ClearRuns(all) failed: %v", err)
	}
	if runs, _ := store.RecentRuns(10); len(runs) != 0 {
		t.Errorf("Expected no runs after clearing all, got %d", len(runs))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("normal")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.RunsCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Stats() on empty history = %+v", empty)
	}

	store.RecordRun(Run{Difficulty: "normal", Score: 100, Distance: 900, Stars: 1, Coins: 2})
	store.RecordRun(Run{Difficulty: "normal", Score: 300, Distance: 2500, Stars: 3, Coins: 4})
	store.RecordRun(Run{Difficulty: "easy", Score: 5000})

	stats, err := store.Stats("normal")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.RunsCount != 2 {
		t.Errorf("RunsCount = %d, expected 2", stats.RunsCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, expected 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
	if stats.TotalDistance != 3400 || stats.TotalStars != 4 || stats.TotalCoins != 6 {
		t.Errorf("totals = %v/%d/%d, expected 3400/4/6", stats.TotalDistance, stats.TotalStars, stats.TotalCoins)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreNestedPath(t *testing.T) {
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
