package stats

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(filepath.Join(t.TempDir(), "stats", "stats.json"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return s
}

func TestFileStoreAccumulates(t *testing.T) {
	s := newTestStore(t)

	if err := s.Record("idioms", 10, 5); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := s.Record("idioms", 5, 2); err != nil {
		t.Fatalf("record: %v", err)
	}

	st, err := s.Get("idioms")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if st.TotalAttempts != 15 || st.TotalCorrect != 7 {
		t.Errorf("got %d/%d, want 15 attempts and 7 correct", st.TotalCorrect, st.TotalAttempts)
	}
}

func TestFileStoreIgnoresEmptyChecks(t *testing.T) {
	s := newTestStore(t)

	if err := s.Record("sva", 0, 0); err != nil {
		t.Fatalf("record: %v", err)
	}
	all, err := s.All()
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("zero-attempt check was recorded: %v", all)
	}
}

func TestFileStoreUnknownExercise(t *testing.T) {
	s := newTestStore(t)

	st, err := s.Get("never-practised")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if st.TotalAttempts != 0 || st.TotalCorrect != 0 {
		t.Errorf("expected zero stats, got %+v", st)
	}
}

func TestFileStoreSurvivesCorruptFile(t *testing.T) {
	s := newTestStore(t)
	if err := os.WriteFile(s.path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	st, err := s.Get("idioms")
	if err != nil {
		t.Fatalf("get on corrupt file: %v", err)
	}
	if st.TotalAttempts != 0 {
		t.Errorf("corrupt file produced stats: %+v", st)
	}

	if err := s.Record("idioms", 3, 1); err != nil {
		t.Fatalf("record after corruption: %v", err)
	}
	st, _ = s.Get("idioms")
	if st.TotalAttempts != 3 || st.TotalCorrect != 1 {
		t.Errorf("got %+v after recovering", st)
	}
}

func TestFileStoreReset(t *testing.T) {
	s := newTestStore(t)
	_ = s.Record("idioms", 10, 5)
	_ = s.Record("sva", 4, 4)

	if err := s.Reset("idioms"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	st, _ := s.Get("idioms")
	if st.TotalAttempts != 0 {
		t.Errorf("idioms not reset: %+v", st)
	}
	st, _ = s.Get("sva")
	if st.TotalAttempts != 4 {
		t.Errorf("sva was reset too: %+v", st)
	}

	if err := s.ResetAll(); err != nil {
		t.Fatalf("reset all: %v", err)
	}
	all, _ := s.All()
	if len(all) != 0 {
		t.Errorf("reset all left %v", all)
	}
}
