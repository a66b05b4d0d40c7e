package exercise

import (
	"strings"
	"testing"
)

func TestTensesGenerate(t *testing.T) {
	m := Tenses()
	items := m.Generate(testRand(), 200)

	for i, item := range items {
		if !strings.Contains(item.Prompt, "___") {
			t.Fatalf("item %d: no blank in %q", i, item.Prompt)
		}
		if strings.HasPrefix(item.Prompt, "___") {
			// Question form: the blank holds the fronted auxiliary.
			switch item.Answer {
			case "Have", "Has", "Did":
			default:
				t.Errorf("item %d: question %q has answer %q", i, item.Prompt, item.Answer)
			}
		}
	}
}

func TestTensesMatchIgnoresCaseAndSpacing(t *testing.T) {
	m := Tenses()
	item := itemWithAnswer("have eaten")

	if !m.Match(item, "Have   Eaten") {
		t.Error("case and spacing differences should be accepted")
	}
	if m.Match(item, "has eaten") {
		t.Error("wrong auxiliary must not match")
	}
}
