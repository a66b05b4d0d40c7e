package cli

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/example/engpractice/internal/database"
	"github.com/example/engpractice/internal/exercise"
	"github.com/example/engpractice/internal/rules"
	"github.com/example/engpractice/internal/stats"
	"github.com/example/engpractice/pkg/models"
)

// App is the interactive terminal practice session.
type App struct {
	registry *exercise.Registry
	stats    stats.Store
	results  *database.ResultRepository
	mistakes *exercise.MistakeLog
	in       *bufio.Reader
	out      io.Writer
	rng      *rand.Rand
}

// New creates an app reading from stdin and writing to stdout.
func New(registry *exercise.Registry, store stats.Store, results *database.ResultRepository) *App {
	return &App{
		registry: registry,
		stats:    store,
		results:  results,
		mistakes: exercise.NewMistakeLog(),
		in:       bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run shows the menu until the user quits or stdin closes.
func (a *App) Run() error {
	for {
		a.printMenu()
		choice, err := a.readLine("> ")
		if err != nil {
			return nil
		}

		switch choice {
		case "q", "quit", "exit":
			return nil
		case "s", "stats":
			a.showStats()
		case "r", "reset":
			a.resetStats()
		case "h", "history":
			a.showHistory()
		case "e", "explain":
			a.showExplanation()
		case "f", "feedback":
			a.showFeedback()
		default:
			module, ok := a.pickModule(choice)
			if !ok {
				fmt.Fprintf(a.out, "Unknown choice %q.\n\n", choice)
				continue
			}
			if err := a.runQuiz(module); err != nil {
				return err
			}
		}
	}
}

func (a *App) printMenu() {
	fmt.Fprintln(a.out, "Choose an exercise:")
	for i, m := range a.registry.All() {
		fmt.Fprintf(a.out, "  %d. %s\n", i+1, m.Title())
	}
	fmt.Fprintln(a.out, "  e. Explain   f. Feedback   s. Statistics   r. Reset statistics   h. History   q. Quit")
}

// pickModule accepts a menu number or an exercise id.
func (a *App) pickModule(choice string) (exercise.Module, bool) {
	if n, err := strconv.Atoi(choice); err == nil {
		modules := a.registry.All()
		if n >= 1 && n <= len(modules) {
			return modules[n-1], true
		}
		return nil, false
	}
	return a.registry.Get(choice)
}

func (a *App) runQuiz(module exercise.Module) error {
	countLine, err := a.readLine(fmt.Sprintf("How many questions? [%d] ", exercise.DefaultQuestions))
	if err != nil {
		return nil
	}
	count, _ := strconv.Atoi(countLine)

	session := exercise.NewSession(module, a.rng, count)
	started := time.Now()

	fmt.Fprintf(a.out, "\n%s\n%s\n\n", module.Title(), module.Instructions())

	inputs := make([]string, len(session.Set.Items))
	for i, item := range session.Set.Items {
		fmt.Fprintf(a.out, "%d) %s\n", i+1, item.Prompt)
		for j, option := range item.Options {
			fmt.Fprintf(a.out, "   %d. %s\n", j+1, option)
		}
		if item.Hint != "" {
			fmt.Fprintf(a.out, "   Hint: %s\n", item.Hint)
		}
		input, err := a.readLine("   Your answer: ")
		if err != nil {
			return nil
		}
		inputs[i] = input
	}

	result := session.Check(inputs)
	a.mistakes.Record(result.Attempted, session.Mistakes(inputs, result))
	a.printReview(session, inputs, result)
	a.recordResult(session.Set.Exercise, started, result)

	fmt.Fprintf(a.out, "Score: %d/%d (answered %d)\n\n", result.CorrectNow, result.Total, result.Attempted)
	return nil
}

// printReview shows each wrong or skipped item with its expected answer,
// plus spelling hints where they apply.
func (a *App) printReview(session *exercise.Session, inputs []string, result models.ScoreResult) {
	answers := session.Answers()
	isSpelling := session.Module().ID() == "spelling"

	for i, correct := range result.PerItemCorrect {
		if correct {
			continue
		}
		item := session.Set.Items[i]
		fmt.Fprintf(a.out, "%d) %s\n   Correct answer: %s\n", i+1, item.Prompt, answers[i])
		if isSpelling && strings.TrimSpace(inputs[i]) != "" {
			for _, hint := range rules.SpellingHints(item.Answer, inputs[i]) {
				fmt.Fprintf(a.out, "   Hint: %s\n", hint)
			}
		}
	}
}

func (a *App) recordResult(exerciseID string, started time.Time, result models.ScoreResult) {
	// A check with nothing attempted leaves no trace
	if result.Attempted == 0 {
		return
	}
	if err := a.stats.Record(exerciseID, result.Attempted, result.Correct); err != nil {
		log.Printf("Error recording statistics: %v", err)
	}
	if a.results == nil {
		return
	}
	record := &models.ResultRecord{
		ExerciseID: exerciseID,
		TotalItems: result.Total,
		Attempted:  result.Attempted,
		Correct:    result.CorrectNow,
		Duration:   int(time.Since(started).Seconds()),
	}
	if err := a.results.Create(record); err != nil {
		log.Printf("Error recording result: %v", err)
	}
}

func (a *App) showExplanation() {
	choice, err := a.readLine("Explain which exercise? ")
	if err != nil {
		return
	}
	module, ok := a.pickModule(choice)
	if !ok {
		fmt.Fprintf(a.out, "Unknown choice %q.\n\n", choice)
		return
	}
	fmt.Fprintf(a.out, "\n%s\n%s\n\n", module.Title(), module.Explanation())
}

// showFeedback summarizes the mistakes made so far in this session.
func (a *App) showFeedback() {
	summary := a.mistakes.Summary()
	if summary.Checked == 0 {
		fmt.Fprintln(a.out, "No feedback yet. Check a few answers first.")
		fmt.Fprintln(a.out)
		return
	}

	fmt.Fprintf(a.out, "Feedback (based on your mistakes)\nChecked: %d\n", summary.Checked)

	ids := make([]string, 0, len(summary.WrongByExercise))
	for id := range summary.WrongByExercise {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if summary.WrongByExercise[ids[i]] != summary.WrongByExercise[ids[j]] {
			return summary.WrongByExercise[ids[i]] > summary.WrongByExercise[ids[j]]
		}
		return ids[i] < ids[j]
	})
	if len(ids) > 0 {
		title := ids[0]
		if m, ok := a.registry.Get(ids[0]); ok {
			title = m.Title()
		}
		fmt.Fprintf(a.out, "Most difficult so far: %s (%d wrong)\n", title, summary.WrongByExercise[ids[0]])
	}

	if len(summary.CommonPairs) > 0 {
		fmt.Fprintln(a.out, "Most common wrong answers:")
		for _, p := range summary.CommonPairs {
			fmt.Fprintf(a.out, "  %q instead of %q (%d)\n", p.Given, p.Correct, p.Count)
		}
	}

	if len(summary.Recent) > 0 {
		fmt.Fprintln(a.out, "Recent mistakes:")
		limit := len(summary.Recent)
		if limit > 10 {
			limit = 10
		}
		for _, m := range summary.Recent[:limit] {
			fmt.Fprintf(a.out, "  %s\n    you: %s  correct: %s\n", m.Prompt, m.Given, m.Correct)
		}
	}
	fmt.Fprintln(a.out)
}

func (a *App) showStats() {
	all, err := a.stats.All()
	if err != nil {
		fmt.Fprintf(a.out, "Failed to load statistics: %v\n\n", err)
		return
	}
	if len(all) == 0 {
		fmt.Fprintln(a.out, "No practice recorded yet.")
		fmt.Fprintln(a.out)
		return
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintln(a.out, "Exercise statistics:")
	for _, id := range ids {
		title := id
		if m, ok := a.registry.Get(id); ok {
			title = m.Title()
		}
		s := all[id]
		fmt.Fprintf(a.out, "  %-40s %d/%d (%.0f%%)\n", title, s.TotalCorrect, s.TotalAttempts, s.Accuracy()*100)
	}
	fmt.Fprintln(a.out)
}

func (a *App) resetStats() {
	confirm, err := a.readLine("Reset all statistics? [y/N] ")
	if err != nil || !strings.EqualFold(confirm, "y") {
		return
	}
	if err := a.stats.ResetAll(); err != nil {
		fmt.Fprintf(a.out, "Failed to reset statistics: %v\n\n", err)
		return
	}
	fmt.Fprintln(a.out, "Statistics reset.")
	fmt.Fprintln(a.out)
}

func (a *App) showHistory() {
	if a.results == nil {
		fmt.Fprintln(a.out, "History is not available without a database.")
		fmt.Fprintln(a.out)
		return
	}
	records, err := a.results.GetRecent(10)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to load history: %v\n\n", err)
		return
	}
	if len(records) == 0 {
		fmt.Fprintln(a.out, "No practice recorded yet.")
		fmt.Fprintln(a.out)
		return
	}

	fmt.Fprintln(a.out, "Recent practice:")
	for _, r := range records {
		fmt.Fprintf(a.out, "  %s  %-14s %d/%d in %ds\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.ExerciseID, r.Correct, r.TotalItems, r.Duration)
	}
	fmt.Fprintln(a.out)
}

func (a *App) readLine(prompt string) (string, error) {
	fmt.Fprint(a.out, prompt)
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
