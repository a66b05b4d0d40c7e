package exercise

import (
	"math/rand"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/example/engpractice/pkg/models"
)

// Session is one live quiz set together with its scoring state. Credit for a
// correct answer is awarded at most once per item for the lifetime of the
// set, so re-checking the same answers adds attempts but no new correct
// points.
type Session struct {
	Set models.QuizSet

	module  Module
	mu      sync.Mutex
	awarded []bool
}

// NewSession generates a fresh quiz set of n items (clamped) for the module.
func NewSession(m Module, rng *rand.Rand, n int) *Session {
	items := m.Generate(rng, ClampCount(n))
	return &Session{
		Set: models.QuizSet{
			ID:       uuid.NewString(),
			Exercise: m.ID(),
			Items:    items,
		},
		module:  m,
		awarded: make([]bool, len(items)),
	}
}

// Module returns the exercise family this session belongs to.
func (s *Session) Module() Module { return s.module }

// Check scores one submission. inputs is positional; blank entries count as
// unanswered. Attempted and CorrectNow describe this check alone, Correct
// counts only items that became correct for the first time in this set.
func (s *Session) Check(inputs []string) models.ScoreResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := models.ScoreResult{
		Total:          len(s.Set.Items),
		PerItemCorrect: make([]bool, len(s.Set.Items)),
	}

	for i, item := range s.Set.Items {
		var input string
		if i < len(inputs) {
			input = inputs[i]
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		res.Attempted++

		if !s.module.Match(item, input) {
			continue
		}
		res.PerItemCorrect[i] = true
		res.CorrectNow++
		if !s.awarded[i] {
			s.awarded[i] = true
			res.Correct++
		}
	}
	return res
}

// Mistakes lists the wrongly answered items of one check, pairing each
// student input with the expected answer. Blank inputs are not mistakes.
func (s *Session) Mistakes(inputs []string, result models.ScoreResult) []Mistake {
	var out []Mistake
	for i, item := range s.Set.Items {
		var input string
		if i < len(inputs) {
			input = strings.TrimSpace(inputs[i])
		}
		if input == "" || result.PerItemCorrect[i] {
			continue
		}
		out = append(out, Mistake{
			Exercise: s.Set.Exercise,
			Prompt:   item.Prompt,
			Given:    input,
			Correct:  item.CorrectText(),
		})
	}
	return out
}

// Answers returns the canonical answer text per item, in order.
func (s *Session) Answers() []string {
	out := make([]string, len(s.Set.Items))
	for i, item := range s.Set.Items {
		out[i] = item.CorrectText()
	}
	return out
}
