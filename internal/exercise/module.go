// Package exercise implements the practice exercise families: generation of
// quiz sets, answer matching, and per-set scoring.
package exercise

import (
	"math/rand"
	"regexp"
	"strings"

	"github.com/example/engpractice/pkg/models"
)

// Module is one exercise family. Generate builds n items with their answer
// keys precomputed; Match decides whether a student input answers an item.
// Explanation is the teaching text shown on request before practising.
type Module interface {
	ID() string
	Title() string
	Instructions() string
	Explanation() string
	Generate(rng *rand.Rand, n int) []models.QuizItem
	Match(item models.QuizItem, input string) bool
}

// Question count bounds for one set.
const (
	MinQuestions     = 1
	MaxQuestions     = 50
	DefaultQuestions = 10
)

// ClampCount normalizes a requested question count: zero or negative falls
// back to the default, everything else is clamped into [MinQuestions,
// MaxQuestions].
func ClampCount(n int) int {
	if n <= 0 {
		return DefaultQuestions
	}
	if n < MinQuestions {
		return MinQuestions
	}
	if n > MaxQuestions {
		return MaxQuestions
	}
	return n
}

// Registry holds the available modules in display order.
type Registry struct {
	order []Module
	byID  map[string]Module
}

func NewRegistry(mods ...Module) *Registry {
	r := &Registry{byID: make(map[string]Module, len(mods))}
	for _, m := range mods {
		r.order = append(r.order, m)
		r.byID[m.ID()] = m
	}
	return r
}

// DefaultRegistry wires every exercise family. The spelling module reads its
// word list through the given provider; a nil provider serves the built-in
// starter words.
func DefaultRegistry(words WordProvider) *Registry {
	return NewRegistry(
		Articles(),
		Capitalisation(),
		TimePrepositions(),
		Tenses(),
		Agreement(),
		Idioms(),
		PhrasalVerbs(),
		Spelling(words),
	)
}

func (r *Registry) Get(id string) (Module, bool) {
	m, ok := r.byID[id]
	return m, ok
}

func (r *Registry) All() []Module {
	return r.order
}

var spaceRun = regexp.MustCompile(`\s+`)

// normalize lowercases, trims, and collapses internal whitespace.
func normalize(s string) string {
	return spaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), " ")
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}
