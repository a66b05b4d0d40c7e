package exercise

import (
	"fmt"
	"testing"
)

func TestSessionMistakes(t *testing.T) {
	session := NewSession(Articles(), testRand(), 3)
	answers := session.Answers()

	// First item wrong, second correct, third blank.
	wrong := "an"
	if answers[0] == "an" {
		wrong = "a"
	}
	inputs := []string{wrong, answers[1], ""}

	result := session.Check(inputs)
	mistakes := session.Mistakes(inputs, result)

	if len(mistakes) != 1 {
		t.Fatalf("got %d mistakes, want 1: %+v", len(mistakes), mistakes)
	}
	m := mistakes[0]
	if m.Exercise != "avsan" || m.Given != wrong || m.Correct != answers[0] {
		t.Errorf("mistake = %+v", m)
	}
	if m.Prompt != session.Set.Items[0].Prompt {
		t.Errorf("prompt = %q", m.Prompt)
	}
}

func TestMistakeLogSummary(t *testing.T) {
	log := NewMistakeLog()

	log.Record(3, []Mistake{
		{Exercise: "timeprep", Prompt: "p1", Given: "in", Correct: "at"},
		{Exercise: "timeprep", Prompt: "p2", Given: "in", Correct: "at"},
	})
	log.Record(2, []Mistake{
		{Exercise: "sva", Prompt: "p3", Given: "go", Correct: "goes"},
	})

	s := log.Summary()
	if s.Checked != 5 {
		t.Errorf("checked = %d, want 5", s.Checked)
	}
	if s.WrongByExercise["timeprep"] != 2 || s.WrongByExercise["sva"] != 1 {
		t.Errorf("wrongByExercise = %v", s.WrongByExercise)
	}
	if len(s.CommonPairs) != 2 || s.CommonPairs[0].Given != "in" || s.CommonPairs[0].Count != 2 {
		t.Errorf("commonPairs = %+v", s.CommonPairs)
	}
	if len(s.Recent) != 3 || s.Recent[0].Prompt != "p3" {
		t.Errorf("recent = %+v", s.Recent)
	}
}

func TestMistakeLogCapsRecent(t *testing.T) {
	log := NewMistakeLog()
	for i := 0; i < maxRecentMistakes+10; i++ {
		log.Record(1, []Mistake{
			{Exercise: "avsan", Prompt: fmt.Sprintf("p%d", i), Given: "a", Correct: "an"},
		})
	}

	s := log.Summary()
	if len(s.Recent) != maxRecentMistakes {
		t.Errorf("recent length = %d, want %d", len(s.Recent), maxRecentMistakes)
	}
	if s.Recent[0].Prompt != fmt.Sprintf("p%d", maxRecentMistakes+9) {
		t.Errorf("newest recent = %+v", s.Recent[0])
	}
	if s.WrongByExercise["avsan"] != maxRecentMistakes+10 {
		t.Errorf("counter = %d, want all mistakes counted", s.WrongByExercise["avsan"])
	}
}

func TestModuleExplanations(t *testing.T) {
	for _, m := range DefaultRegistry(nil).All() {
		if m.Explanation() == "" {
			t.Errorf("%s has no explanation", m.ID())
		}
	}
}
