package exercise

import (
	"strings"
	"testing"
)

func TestCapitalisationAnswerDiffersOnlyByCase(t *testing.T) {
	m := Capitalisation()
	rng := testRand()

	items := m.Generate(rng, 100)
	for i, item := range items {
		if !strings.EqualFold(item.Prompt, item.Answer) {
			t.Errorf("item %d: corrected %q changes more than casing of %q",
				i, item.Answer, item.Prompt)
		}
		if item.Prompt == item.Answer {
			t.Errorf("item %d: corrected form %q equals the prompt", i, item.Answer)
		}
	}
}

func TestCapitalisationMatchIsCaseSensitive(t *testing.T) {
	m := Capitalisation()
	item := itemWithAnswer("We visited London in April.")

	if !m.Match(item, "We visited London in April.") {
		t.Error("exact rewrite should match")
	}
	if !m.Match(item, "  We visited London in April.  ") {
		t.Error("surrounding whitespace should be ignored")
	}
	if m.Match(item, "we visited london in april.") {
		t.Error("lowercase rewrite must not match")
	}
	if m.Match(item, "") {
		t.Error("empty input must not match")
	}
}
