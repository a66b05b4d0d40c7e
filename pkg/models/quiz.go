package models

// QuizItem is one generated question together with its precomputed answer.
// For fill-in families Answer holds exactly the token(s) that fill the blank.
// For multiple-choice families Options holds the shuffled choices and
// CorrectIndex points at the right one; Answer is left empty.
type QuizItem struct {
	Prompt       string   `json:"prompt"`
	Answer       string   `json:"answer,omitempty"`
	Options      []string `json:"options,omitempty"`
	CorrectIndex int      `json:"correct_index,omitempty"`
	Hint         string   `json:"hint,omitempty"`
}

// MultipleChoice reports whether the item is answered by picking an option.
func (q QuizItem) MultipleChoice() bool {
	return len(q.Options) > 0
}

// CorrectText returns the canonical correct answer as display text.
func (q QuizItem) CorrectText() string {
	if q.MultipleChoice() {
		if q.CorrectIndex >= 0 && q.CorrectIndex < len(q.Options) {
			return q.Options[q.CorrectIndex]
		}
		return ""
	}
	return q.Answer
}

// QuizSet is an ordered batch of items shown together as one practice round.
// Sets are rebuilt wholesale on every "new set" action and never persisted.
type QuizSet struct {
	ID       string     `json:"id"`
	Exercise string     `json:"exercise"`
	Items    []QuizItem `json:"items"`
}

// ScoreResult aggregates one check action over a quiz set.
//
// Correct counts only answers that became correct for the first time within
// the current set; CorrectNow counts every answer that is correct on this
// check. Only (Attempted, Correct) is forwarded to the stats store.
type ScoreResult struct {
	PerItemCorrect []bool `json:"per_item_correct"`
	Attempted      int    `json:"attempted"`
	Correct        int    `json:"correct"`
	CorrectNow     int    `json:"correct_now"`
	Total          int    `json:"total"`
}
