package database

import (
	"fmt"
	"strings"

	"github.com/example/engpractice/pkg/models"
)

// WordListRepository handles database operations for the spelling word list
type WordListRepository struct{}

// NewWordListRepository creates a new repository instance
func NewWordListRepository() *WordListRepository {
	return &WordListRepository{}
}

// GetAll returns all saved words in alphabetical order
func (r *WordListRepository) GetAll() ([]models.WordEntry, error) {
	var words []models.WordEntry
	err := DB.Select(&words, "SELECT id, word, created_at FROM spelling_words ORDER BY word")
	if err != nil {
		return nil, fmt.Errorf("failed to get words: %v", err)
	}
	return words, nil
}

// Words returns the saved word texts. It implements exercise.WordProvider.
func (r *WordListRepository) Words() ([]string, error) {
	var words []string
	err := DB.Select(&words, "SELECT word FROM spelling_words ORDER BY word")
	if err != nil {
		return nil, fmt.Errorf("failed to get words: %v", err)
	}
	return words, nil
}

// Add saves words, skipping duplicates. Words are lowercased and trimmed.
func (r *WordListRepository) Add(words []string) (int, error) {
	query := DB.Rebind(`INSERT INTO spelling_words (word) VALUES (?) ON CONFLICT (word) DO NOTHING`)

	added := 0
	for _, w := range words {
		w = normalizeWord(w)
		if w == "" {
			continue
		}
		result, err := DB.Exec(query, w)
		if err != nil {
			return added, fmt.Errorf("failed to add word %q: %v", w, err)
		}
		if rows, err := result.RowsAffected(); err == nil && rows > 0 {
			added++
		}
	}
	return added, nil
}

// Delete removes one word from the list
func (r *WordListRepository) Delete(word string) error {
	query := DB.Rebind(`DELETE FROM spelling_words WHERE word = ?`)
	if _, err := DB.Exec(query, normalizeWord(word)); err != nil {
		return fmt.Errorf("failed to delete word: %v", err)
	}
	return nil
}

// Clear removes every saved word
func (r *WordListRepository) Clear() error {
	if _, err := DB.Exec(`DELETE FROM spelling_words`); err != nil {
		return fmt.Errorf("failed to clear words: %v", err)
	}
	return nil
}

func normalizeWord(w string) string {
	return strings.Join(strings.Fields(strings.ToLower(w)), " ")
}
