package storage

import (
	"os"
	"path/filepath"
	"testing"
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

func TestStoreSaveAndRetrieveRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		level   string
		millis  int
		coins   int
		rewinds int
	}{
		{"rooftop", 42000, 4, 3},
		{"rooftop", 31000, 4, 1},
		{"rooftop", 55000, 3, 7},
		{"clockwork", 90000, 5, 2},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r.level, r.millis, r.coins, r.rewinds); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	best, err := store.BestRuns("rooftop", 10)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(best) != 3 {
		t.Fatalf("Expected 3 rooftop runs, got %d", len(best))
	}

	// Fastest first
	if best[0].Millis != 31000 || best[1].Millis != 42000 || best[2].Millis != 55000 {
		t.Errorf("Runs not ordered by time: %v", best)
	}
	if best[0].Coins != 4 || best[0].Rewinds != 1 {
		t.Errorf("Run fields not round-tripped: %+v", best[0])
	}

	other, err := store.BestRuns("clockwork", 10)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 clockwork run, got %d", len(other))
	}
}

func TestStoreBestRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun("test", (i+1)*1000, 0, 0)
	}

	best, err := store.BestRuns("test", 3)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}

	if len(best) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(best))
	}
	if best[0].Millis != 1000 || best[1].Millis != 2000 || best[2].Millis != 3000 {
		t.Errorf("Runs not in expected order: %v", best)
	}
}

func TestStoreBestTime(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestTime("rooftop")
	if err != nil {
		t.Fatalf("BestTime() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for level with no runs, got %d", best)
	}

	store.SaveRun("rooftop", 42000, 4, 3)
	store.SaveRun("rooftop", 31000, 4, 1)
	store.SaveRun("rooftop", 55000, 3, 7)

	best, err = store.BestTime("rooftop")
	if err != nil {
		t.Fatalf("BestTime() failed: %v", err)
	}
	if best != 31000 {
		t.Errorf("Expected best time 31000, got %d", best)
	}
}

func TestStoreRunCount(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("rooftop", 42000, 4, 3)
	store.SaveRun("rooftop", 31000, 4, 1)
	store.SaveRun("clockwork", 90000, 5, 2)

	n, err := store.RunCount("rooftop")
	if err != nil {
		t.Fatalf("RunCount() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 rooftop runs, got %d", n)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("rooftop", 42000, 4, 3)
	store.SaveRun("rooftop", 31000, 4, 1)
	store.SaveRun("clockwork", 90000, 5, 2)

	if err := store.ClearRuns("rooftop"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	rooftop, _ := store.BestRuns("rooftop", 10)
	if len(rooftop) != 0 {
		t.Errorf("Expected 0 rooftop runs after clear, got %d", len(rooftop))
	}

	clockwork, _ := store.BestRuns("clockwork", 10)
	if len(clockwork) != 1 {
		t.Error("Clockwork runs should not be affected by clearing rooftop")
	}
}
