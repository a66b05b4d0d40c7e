package exercise

import (
	"errors"
	"strings"
	"testing"
)

type stubWords struct {
	words []string
	err   error
}

func (s stubWords) Words() ([]string, error) { return s.words, s.err }

func TestSpellingUsesProviderWords(t *testing.T) {
	m := Spelling(stubWords{words: []string{"necessary", "receive", "rhythm"}})
	items := m.Generate(testRand(), 10)

	if len(items) != 3 {
		t.Fatalf("generated %d items from 3 saved words", len(items))
	}
	for _, item := range items {
		switch item.Answer {
		case "necessary", "receive", "rhythm":
		default:
			t.Errorf("unexpected word %q", item.Answer)
		}
		if item.Hint == "" {
			t.Errorf("word %q has no masked hint", item.Answer)
		}
	}
}

func TestSpellingFallsBackToStarterList(t *testing.T) {
	for _, m := range []Module{
		Spelling(nil),
		Spelling(stubWords{err: errors.New("store offline")}),
		Spelling(stubWords{}),
	} {
		items := m.Generate(testRand(), 10)
		if len(items) != 10 {
			t.Fatalf("fallback generated %d items, want 10", len(items))
		}
	}
}

func TestSpellingMask(t *testing.T) {
	got := maskWord("receive")
	if !strings.HasPrefix(got, "r______") {
		t.Errorf("maskWord = %q", got)
	}
	if !strings.Contains(got, "7 letters") {
		t.Errorf("maskWord missing length: %q", got)
	}
}

func TestSpellingMatchIgnoresCase(t *testing.T) {
	m := Spelling(nil)
	item := itemWithAnswer("Necessary")

	if !m.Match(item, "  necessary ") {
		t.Error("case and whitespace should be ignored")
	}
	if m.Match(item, "necesary") {
		t.Error("misspelling must not match")
	}
}
