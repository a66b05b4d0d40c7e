package models

import "time"

// ExerciseStats holds the cumulative attempt counters for one exercise.
// Counters only ever grow; they are reset solely by an explicit user action.
// The JSON field names are the on-disk layout of the stats file.
type ExerciseStats struct {
	TotalAttempts int `json:"totalAttempts" db:"total_attempts"`
	TotalCorrect  int `json:"totalCorrect" db:"total_correct"`
}

// Accuracy returns the lifetime correct ratio in [0,1], or 0 before any attempt.
func (s ExerciseStats) Accuracy() float64 {
	if s.TotalAttempts == 0 {
		return 0
	}
	return float64(s.TotalCorrect) / float64(s.TotalAttempts)
}

// ResultRecord is one checked quiz set, kept as practice history.
type ResultRecord struct {
	ID         int64     `json:"id" db:"id"`
	ExerciseID string    `json:"exercise_id" db:"exercise_id"`
	TotalItems int       `json:"total_items" db:"total_items"`
	Attempted  int       `json:"attempted" db:"attempted"`
	Correct    int       `json:"correct" db:"correct"`
	Duration   int       `json:"duration" db:"duration"` // seconds
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
