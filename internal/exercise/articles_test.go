package exercise

import (
	"strings"
	"testing"

	"github.com/example/engpractice/internal/rules"
)

func TestArticlesAnswerDerivedFromFinalPhrase(t *testing.T) {
	m := Articles()
	rng := testRand()

	items := m.Generate(rng, 200)
	for i, item := range items {
		if !strings.Contains(item.Prompt, "___") {
			t.Fatalf("item %d: prompt has no blank: %q", i, item.Prompt)
		}
		if item.Answer != "a" && item.Answer != "an" {
			t.Fatalf("item %d: answer %q is not a/an", i, item.Answer)
		}
		want := rules.Article(phraseAfterBlank(item.Prompt))
		if item.Answer != want {
			t.Errorf("item %d: prompt %q has answer %q, rules derive %q",
				i, item.Prompt, item.Answer, want)
		}
	}
}

func TestArticlesMatchToleratesNoise(t *testing.T) {
	m := Articles()
	item := itemWithAnswer("an")

	tests := []struct {
		input string
		want  bool
	}{
		{"an", true},
		{"An", true},
		{"AN.", true},
		{" a n ", true},
		{"a", false},
		{"", false},
		{"...", false},
	}

	for _, tt := range tests {
		if got := m.Match(item, tt.input); got != tt.want {
			t.Errorf("Match(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
