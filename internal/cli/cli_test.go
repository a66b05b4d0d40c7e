package cli

import (
	"bufio"
	"bytes"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/engpractice/internal/exercise"
	"github.com/example/engpractice/internal/stats"
)

func testApp(t *testing.T, input string) (*App, *bytes.Buffer) {
	t.Helper()
	store, err := stats.NewFileStore(filepath.Join(t.TempDir(), "stats.json"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	out := &bytes.Buffer{}
	return &App{
		registry: exercise.DefaultRegistry(nil),
		stats:    store,
		mistakes: exercise.NewMistakeLog(),
		in:       bufio.NewReader(strings.NewReader(input)),
		out:      out,
		rng:      rand.New(rand.NewSource(1)),
	}, out
}

func TestPickModule(t *testing.T) {
	app, _ := testApp(t, "")

	tests := []struct {
		choice string
		wantID string
		ok     bool
	}{
		{"1", "avsan", true},
		{"8", "spelling", true},
		{"idioms", "idioms", true},
		{"9", "", false},
		{"0", "", false},
		{"nope", "", false},
	}
	for _, test := range tests {
		module, ok := app.pickModule(test.choice)
		if ok != test.ok {
			t.Errorf("pickModule(%q) ok = %v, want %v", test.choice, ok, test.ok)
			continue
		}
		if ok && module.ID() != test.wantID {
			t.Errorf("pickModule(%q) = %s, want %s", test.choice, module.ID(), test.wantID)
		}
	}
}

func TestRunQuizRecordsStats(t *testing.T) {
	// Two idiom questions, both answered with option 1.
	app, out := testApp(t, "2\n1\n1\n")

	module, ok := app.registry.Get("idioms")
	if !ok {
		t.Fatal("idioms module missing")
	}
	if err := app.runQuiz(module); err != nil {
		t.Fatalf("runQuiz: %v", err)
	}

	if !strings.Contains(out.String(), "Score:") {
		t.Errorf("output missing score line:\n%s", out.String())
	}

	recorded, err := app.stats.Get("idioms")
	if err != nil {
		t.Fatalf("get stats: %v", err)
	}
	if recorded.TotalAttempts != 2 {
		t.Errorf("attempts = %d, want 2", recorded.TotalAttempts)
	}
}

func TestShowExplanation(t *testing.T) {
	app, out := testApp(t, "sva\n")
	app.showExplanation()
	if !strings.Contains(out.String(), "have becomes has") {
		t.Errorf("output missing the agreement explanation:\n%s", out.String())
	}
}

func TestShowFeedback(t *testing.T) {
	app, out := testApp(t, "")

	app.showFeedback()
	if !strings.Contains(out.String(), "No feedback yet") {
		t.Errorf("empty ledger output:\n%s", out.String())
	}

	out.Reset()
	app.mistakes.Record(2, []exercise.Mistake{
		{Exercise: "timeprep", Prompt: "The meeting is ___ Monday.", Given: "in", Correct: "on"},
	})
	app.showFeedback()
	got := out.String()
	if !strings.Contains(got, "Time prepositions (1 wrong)") {
		t.Errorf("output missing the difficult exercise line:\n%s", got)
	}
	if !strings.Contains(got, `"in" instead of "on" (1)`) {
		t.Errorf("output missing the confusion pair:\n%s", got)
	}
}

func TestRunQuitsOnQ(t *testing.T) {
	app, _ := testApp(t, "q\n")
	if err := app.Run(); err != nil {
		t.Errorf("Run returned %v", err)
	}
}
