// Package stats tracks lifetime per-exercise attempt counters.
package stats

import "github.com/example/engpractice/pkg/models"

// Store persists cumulative attempt/correct counters keyed by exercise id.
// Counters only accumulate; Reset is the single way to clear them.
type Store interface {
	// Record adds one check action's counts to the exercise's totals.
	Record(exerciseID string, attempted, correct int) error
	// Get returns the totals for one exercise; zero totals if never practised.
	Get(exerciseID string) (models.ExerciseStats, error)
	// All returns every exercise that has recorded attempts.
	All() (map[string]models.ExerciseStats, error)
	// Reset clears the counters for one exercise.
	Reset(exerciseID string) error
	// ResetAll clears every counter.
	ResetAll() error
}
