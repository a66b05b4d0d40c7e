package excel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/example/engpractice/internal/database"
)

func TestColumnToIndex(t *testing.T) {
	tests := []struct {
		column string
		want   int
	}{
		{"A", 0},
		{"B", 1},
		{"Z", 25},
		{"AA", 26},
		{"", 0},
		{"1", 0},
	}
	for _, test := range tests {
		if got := columnToIndex(test.column); got != test.want {
			t.Errorf("columnToIndex(%q) = %d, want %d", test.column, got, test.want)
		}
	}
}

func TestCleanWord(t *testing.T) {
	tests := []struct {
		cell string
		want string
	}{
		{"Necessary", "necessary"},
		{"  receive  ", "receive"},
		{"\"rhythm\"", "rhythm"},
		{"Word", ""},
		{"two words", ""},
		{"", ""},
	}
	for _, test := range tests {
		if got := cleanWord(test.cell); got != test.want {
			t.Errorf("cleanWord(%q) = %q, want %q", test.cell, got, test.want)
		}
	}
}

func TestImportWordsFromCSV(t *testing.T) {
	t.Setenv("PRACTICE_DB_DRIVER", "sqlite3")
	t.Setenv("PRACTICE_DB_DSN", ":memory:")
	if err := database.Connect(); err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	path := filepath.Join(t.TempDir(), "words.csv")
	content := "word\nnecessary\nreceive\nnecessary\n\nseparate\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write csv: %v", err)
	}

	result, err := ImportWords(DefaultImportConfig(path))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	// The header cell and the blank line are dropped before saving, and
	// the duplicate is skipped by the repository.
	if result.TotalProcessed != 4 {
		t.Errorf("processed = %d, want 4", result.TotalProcessed)
	}
	if result.Added != 3 {
		t.Errorf("added = %d, want 3", result.Added)
	}
	if result.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", result.Skipped)
	}

	words, err := database.NewWordListRepository().Words()
	if err != nil {
		t.Fatalf("words: %v", err)
	}
	if len(words) != 3 {
		t.Errorf("saved words = %v", words)
	}
}
