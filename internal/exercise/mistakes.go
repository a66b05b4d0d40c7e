package exercise

import (
	"sort"
	"sync"
)

// Mistake is one wrongly answered item, kept for feedback.
type Mistake struct {
	Exercise string `json:"exercise"`
	Prompt   string `json:"prompt"`
	Given    string `json:"given"`
	Correct  string `json:"correct"`
}

// maxRecentMistakes bounds the recent-mistakes list.
const maxRecentMistakes = 50

// topPairs is how many confusion pairs a summary reports.
const topPairs = 5

type pairKey struct {
	given   string
	correct string
}

// MistakeLog accumulates wrong answers across quiz sets so the shells can
// show which exercises and which confusions come up most often.
type MistakeLog struct {
	mu         sync.Mutex
	checked    int
	byExercise map[string]int
	byPair     map[pairKey]int
	recent     []Mistake
}

func NewMistakeLog() *MistakeLog {
	return &MistakeLog{
		byExercise: make(map[string]int),
		byPair:     make(map[pairKey]int),
	}
}

// Record adds one check action: how many items were attempted and which of
// them went wrong.
func (l *MistakeLog) Record(attempted int, mistakes []Mistake) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.checked += attempted
	for _, m := range mistakes {
		l.byExercise[m.Exercise]++
		l.byPair[pairKey{given: m.Given, correct: m.Correct}]++
		l.recent = append(l.recent, m)
	}
	if n := len(l.recent) - maxRecentMistakes; n > 0 {
		l.recent = l.recent[n:]
	}
}

// PairCount is one student-answer/correct-answer confusion with its count.
type PairCount struct {
	Given   string `json:"given"`
	Correct string `json:"correct"`
	Count   int    `json:"count"`
}

// FeedbackSummary is the mistake ledger prepared for display.
type FeedbackSummary struct {
	Checked         int            `json:"checked"`
	WrongByExercise map[string]int `json:"wrongByExercise"`
	CommonPairs     []PairCount    `json:"commonPairs"`
	Recent          []Mistake      `json:"recent"`
}

// Summary returns the totals with the most frequent confusions first and
// the recent mistakes newest first.
func (l *MistakeLog) Summary() FeedbackSummary {
	l.mu.Lock()
	defer l.mu.Unlock()

	byExercise := make(map[string]int, len(l.byExercise))
	for id, n := range l.byExercise {
		byExercise[id] = n
	}

	pairs := make([]PairCount, 0, len(l.byPair))
	for k, n := range l.byPair {
		pairs = append(pairs, PairCount{Given: k.given, Correct: k.correct, Count: n})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Count != pairs[j].Count {
			return pairs[i].Count > pairs[j].Count
		}
		return pairs[i].Given < pairs[j].Given
	})
	if len(pairs) > topPairs {
		pairs = pairs[:topPairs]
	}

	recent := make([]Mistake, len(l.recent))
	for i, m := range l.recent {
		recent[len(l.recent)-1-i] = m
	}

	return FeedbackSummary{
		Checked:         l.checked,
		WrongByExercise: byExercise,
		CommonPairs:     pairs,
		Recent:          recent,
	}
}
