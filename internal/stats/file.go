package stats

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/example/engpractice/pkg/models"
)

// FileStore keeps the counters in a single JSON file, laid out as
// {"<exercise>": {"totalAttempts": N, "totalCorrect": M}}. A missing or
// unreadable file behaves as empty stats rather than an error, so a damaged
// file never blocks practising.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store writing to path, creating parent directories
// as needed.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create stats directory: %v", err)
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Record(exerciseID string, attempted, correct int) error {
	if attempted <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.load()
	st := all[exerciseID]
	st.TotalAttempts += attempted
	st.TotalCorrect += correct
	all[exerciseID] = st

	return s.save(all)
}

func (s *FileStore) Get(exerciseID string) (models.ExerciseStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()[exerciseID], nil
}

func (s *FileStore) All() (map[string]models.ExerciseStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(), nil
}

func (s *FileStore) Reset(exerciseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.load()
	if _, ok := all[exerciseID]; !ok {
		return nil
	}
	delete(all, exerciseID)
	return s.save(all)
}

func (s *FileStore) ResetAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(map[string]models.ExerciseStats{})
}

func (s *FileStore) load() map[string]models.ExerciseStats {
	all := make(map[string]models.ExerciseStats)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Failed to read stats file %s: %v", s.path, err)
		}
		return all
	}
	if err := json.Unmarshal(data, &all); err != nil {
		log.Printf("Stats file %s is corrupt, starting fresh: %v", s.path, err)
		return make(map[string]models.ExerciseStats)
	}
	return all
}

func (s *FileStore) save(all map[string]models.ExerciseStats) error {
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode stats: %v", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write stats file: %v", err)
	}
	return nil
}
