package database

import (
	"database/sql"
	"fmt"

	"github.com/example/engpractice/pkg/models"
)

// StatsRepository handles database operations for exercise statistics.
// It implements the stats.Store interface.
type StatsRepository struct{}

// NewStatsRepository creates a new repository instance
func NewStatsRepository() *StatsRepository {
	return &StatsRepository{}
}

// Record adds one check action's counts to the exercise's totals
func (r *StatsRepository) Record(exerciseID string, attempted, correct int) error {
	if attempted <= 0 {
		return nil
	}
	query := DB.Rebind(`
		INSERT INTO exercise_stats (exercise_id, total_attempts, total_correct)
		VALUES (?, ?, ?)
		ON CONFLICT (exercise_id) DO UPDATE SET
			total_attempts = exercise_stats.total_attempts + excluded.total_attempts,
			total_correct = exercise_stats.total_correct + excluded.total_correct,
			updated_at = CURRENT_TIMESTAMP
	`)
	if _, err := DB.Exec(query, exerciseID, attempted, correct); err != nil {
		return fmt.Errorf("failed to record statistics: %v", err)
	}
	return nil
}

// Get returns the totals for one exercise, zero totals if never practised
func (r *StatsRepository) Get(exerciseID string) (models.ExerciseStats, error) {
	var stats models.ExerciseStats
	query := DB.Rebind(`
		SELECT total_attempts, total_correct FROM exercise_stats WHERE exercise_id = ?
	`)
	err := DB.Get(&stats, query, exerciseID)
	if err == sql.ErrNoRows {
		return models.ExerciseStats{}, nil
	}
	if err != nil {
		return models.ExerciseStats{}, fmt.Errorf("failed to get statistics: %v", err)
	}
	return stats, nil
}

// All returns every exercise that has recorded attempts
func (r *StatsRepository) All() (map[string]models.ExerciseStats, error) {
	var rows []struct {
		ExerciseID string `db:"exercise_id"`
		models.ExerciseStats
	}
	err := DB.Select(&rows, `SELECT exercise_id, total_attempts, total_correct FROM exercise_stats`)
	if err != nil {
		return nil, fmt.Errorf("failed to get statistics: %v", err)
	}

	all := make(map[string]models.ExerciseStats, len(rows))
	for _, row := range rows {
		all[row.ExerciseID] = row.ExerciseStats
	}
	return all, nil
}

// Reset clears the counters for one exercise
func (r *StatsRepository) Reset(exerciseID string) error {
	query := DB.Rebind(`DELETE FROM exercise_stats WHERE exercise_id = ?`)
	if _, err := DB.Exec(query, exerciseID); err != nil {
		return fmt.Errorf("failed to reset statistics: %v", err)
	}
	return nil
}

// ResetAll clears every counter
func (r *StatsRepository) ResetAll() error {
	if _, err := DB.Exec(`DELETE FROM exercise_stats`); err != nil {
		return fmt.Errorf("failed to reset statistics: %v", err)
	}
	return nil
}
