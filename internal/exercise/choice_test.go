package exercise

import (
	"testing"

	"github.com/example/engpractice/pkg/models"
)

func TestChoiceGenerateSamplesWithoutReplacement(t *testing.T) {
	for _, m := range []Module{Idioms(), PhrasalVerbs()} {
		rng := testRand()
		items := m.Generate(rng, 50)

		seen := make(map[string]bool, len(items))
		for i, item := range items {
			if seen[item.Prompt] {
				t.Errorf("%s item %d: duplicate prompt %q", m.ID(), i, item.Prompt)
			}
			seen[item.Prompt] = true

			if len(item.Options) != 4 {
				t.Errorf("%s item %d: %d options, want 4", m.ID(), i, len(item.Options))
			}
			if item.CorrectIndex < 0 || item.CorrectIndex >= len(item.Options) {
				t.Errorf("%s item %d: correct index %d out of range", m.ID(), i, item.CorrectIndex)
			}
		}
	}
}

func TestChoiceGenerateCapsAtPoolSize(t *testing.T) {
	m := Idioms().(choiceModule)
	items := m.Generate(testRand(), len(m.pool)+20)
	if len(items) != len(m.pool) {
		t.Errorf("generated %d items from a pool of %d", len(items), len(m.pool))
	}
}

func TestChoiceMatch(t *testing.T) {
	m := Idioms()
	item := models.QuizItem{
		Options:      []string{"wrong one", "very easy", "wrong two", "wrong three"},
		CorrectIndex: 1,
	}

	tests := []struct {
		input string
		want  bool
	}{
		{"2", true},
		{"very easy", true},
		{"Very  Easy", true},
		{"1", false},
		{"4", false},
		{"wrong one", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := m.Match(item, tt.input); got != tt.want {
			t.Errorf("Match(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
