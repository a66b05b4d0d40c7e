package database

import (
	"fmt"

	"github.com/example/engpractice/pkg/models"
)

// ResultRepository handles database operations for practice history
type ResultRepository struct{}

// NewResultRepository creates a new repository instance
func NewResultRepository() *ResultRepository {
	return &ResultRepository{}
}

// Create inserts a checked quiz set into the history
func (r *ResultRepository) Create(record *models.ResultRecord) error {
	query := DB.Rebind(`
		INSERT INTO results (exercise_id, total_items, attempted, correct, duration)
		VALUES (?, ?, ?, ?, ?)
	`)
	result, err := DB.Exec(query,
		record.ExerciseID,
		record.TotalItems,
		record.Attempted,
		record.Correct,
		record.Duration,
	)
	if err != nil {
		return fmt.Errorf("failed to create result: %v", err)
	}

	if id, err := result.LastInsertId(); err == nil {
		record.ID = id
	}
	return nil
}

// GetRecent returns the most recent results, newest first
func (r *ResultRepository) GetRecent(limit int) ([]models.ResultRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	var records []models.ResultRecord
	query := DB.Rebind(`
		SELECT id, exercise_id, total_items, attempted, correct, duration, created_at
		FROM results
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`)
	if err := DB.Select(&records, query, limit); err != nil {
		return nil, fmt.Errorf("failed to get results: %v", err)
	}
	return records, nil
}

// GetByExercise returns recent results for one exercise, newest first
func (r *ResultRepository) GetByExercise(exerciseID string, limit int) ([]models.ResultRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	var records []models.ResultRecord
	query := DB.Rebind(`
		SELECT id, exercise_id, total_items, attempted, correct, duration, created_at
		FROM results
		WHERE exercise_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`)
	if err := DB.Select(&records, query, exerciseID, limit); err != nil {
		return nil, fmt.Errorf("failed to get results by exercise: %v", err)
	}
	return records, nil
}
