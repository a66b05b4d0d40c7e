package database

import (
	"testing"

	"github.com/example/engpractice/pkg/models"
)

func setupDB(t *testing.T) {
	t.Helper()
	t.Setenv("PRACTICE_DB_DRIVER", "sqlite3")
	t.Setenv("PRACTICE_DB_DSN", ":memory:")
	if err := Connect(); err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	t.Cleanup(func() { _ = Close() })
}

func TestStatsRepositoryAccumulates(t *testing.T) {
	setupDB(t)
	repo := NewStatsRepository()

	if err := repo.Record("idioms", 10, 5); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := repo.Record("idioms", 5, 2); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := repo.Record("sva", 0, 0); err != nil {
		t.Fatalf("record empty: %v", err)
	}

	stats, err := repo.Get("idioms")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stats.TotalAttempts != 15 || stats.TotalCorrect != 7 {
		t.Errorf("got %+v, want 15 attempts, 7 correct", stats)
	}

	all, err := repo.All()
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("all = %v, want only idioms", all)
	}

	if err := repo.Reset("idioms"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	stats, _ = repo.Get("idioms")
	if stats.TotalAttempts != 0 {
		t.Errorf("reset left %+v", stats)
	}
}

func TestWordListRepository(t *testing.T) {
	setupDB(t)
	repo := NewWordListRepository()

	added, err := repo.Add([]string{"Necessary", "receive", "  necessary  ", ""})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if added != 2 {
		t.Errorf("added = %d, want 2 (duplicates and blanks skipped)", added)
	}

	words, err := repo.Words()
	if err != nil {
		t.Fatalf("words: %v", err)
	}
	if len(words) != 2 || words[0] != "necessary" || words[1] != "receive" {
		t.Errorf("words = %v", words)
	}

	if err := repo.Delete("necessary"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	words, _ = repo.Words()
	if len(words) != 1 || words[0] != "receive" {
		t.Errorf("after delete: %v", words)
	}

	if err := repo.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	words, _ = repo.Words()
	if len(words) != 0 {
		t.Errorf("after clear: %v", words)
	}
}

func TestResultRepository(t *testing.T) {
	setupDB(t)
	repo := NewResultRepository()

	for i := 0; i < 3; i++ {
		record := &models.ResultRecord{
			ExerciseID: "avsan",
			TotalItems: 10,
			Attempted:  10,
			Correct:    7 + i,
			Duration:   60,
		}
		if err := repo.Create(record); err != nil {
			t.Fatalf("create: %v", err)
		}
		if record.ID == 0 {
			t.Error("create did not set the record id")
		}
	}

	records, err := repo.GetRecent(2)
	if err != nil {
		t.Fatalf("get recent: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Correct != 9 {
		t.Errorf("newest record correct = %d, want 9", records[0].Correct)
	}

	byEx, err := repo.GetByExercise("avsan", 10)
	if err != nil {
		t.Fatalf("get by exercise: %v", err)
	}
	if len(byEx) != 3 {
		t.Errorf("got %d records for avsan, want 3", len(byEx))
	}
}
