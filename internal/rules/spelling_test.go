package rules

import (
	"strings"
	"testing"
)

func TestSpellingHints(t *testing.T) {
	tests := []struct {
		name     string
		correct  string
		attempt  string
		contains string
	}{
		{"missing tion", "information", "informashun", "-tion"},
		{"missing double letter", "necessary", "necesary", "double letters"},
		{"missing ie", "believe", "beleve", "ie/ei"},
		{"missing ed suffix", "walked", "walkt", "-ed"},
		{"close length", "receive", "recieve", "letter-by-letter"},
	}

	for _, tt := range tests {
		hints := SpellingHints(tt.correct, tt.attempt)
		found := false
		for _, h := range hints {
			if strings.Contains(h, tt.contains) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("%s: hints %v do not mention %q", tt.name, hints, tt.contains)
		}
	}
}

func TestHasDoubleLetter(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"necessary", true},
		{"accommodate", true},
		{"miss", true},
		{"necesary", false},
		{"abc", false},
		{"", false},
		{"a--b", false},
	}
	for _, tt := range tests {
		if got := hasDoubleLetter(tt.word); got != tt.want {
			t.Errorf("hasDoubleLetter(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestSpellingHintsEmptyAttempt(t *testing.T) {
	if hints := SpellingHints("necessary", "   "); hints != nil {
		t.Errorf("expected no hints for blank attempt, got %v", hints)
	}
}
