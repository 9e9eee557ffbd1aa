package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/lugat/pkg/models"
)

// ProgressRepository handles database operations for review state
type ProgressRepository struct{}

// NewProgressRepository creates a new repository instance
func NewProgressRepository() *ProgressRepository {
	return &ProgressRepository{}
}

// GetAll returns all review state rows
func (r *ProgressRepository) GetAll() ([]models.UserProgress, error) {
	var progress []models.UserProgress
	err := DB.Select(&progress, "SELECT * FROM user_progress ORDER BY word_id")
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %v", err)
	}
	return progress, nil
}

// GetByWord returns the review state for a word, or nil if the word
// has never been graded
func (r *ProgressRepository) GetByWord(wordID int) (*models.UserProgress, error) {
	var progress models.UserProgress
	err := DB.Get(&progress, "SELECT * FROM user_progress WHERE word_id = $1", wordID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get progress for word %d: %v", wordID, err)
	}
	return &progress, nil
}

// Upsert creates or replaces the review state for a word. The word_id
// column is unique, so the insert-or-update is atomic per word.
func (r *ProgressRepository) Upsert(progress *models.UserProgress) error {
	_, err := DB.Exec(`
		INSERT INTO user_progress (
			word_id, difficulty, repetitions, "interval", ease_factor,
			next_review_date, last_studied, correct_answers, total_answers
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (word_id) DO UPDATE SET
			difficulty = $2,
			repetitions = $3,
			"interval" = $4,
			ease_factor = $5,
			next_review_date = $6,
			last_studied = $7,
			correct_answers = $8,
			total_answers = $9,
			updated_at = CURRENT_TIMESTAMP
	`,
		progress.WordID,
		progress.Difficulty,
		progress.Repetitions,
		progress.Interval,
		progress.EaseFactor,
		progress.NextReviewDate,
		progress.LastStudied,
		progress.CorrectAnswers,
		progress.TotalAnswers,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert progress for word %d: %v", progress.WordID, err)
	}
	return nil
}

// DeleteAll removes every review state row (full learner reset)
func (r *ProgressRepository) DeleteAll() error {
	if _, err := DB.Exec("DELETE FROM user_progress"); err != nil {
		return fmt.Errorf("failed to reset progress: %v", err)
	}
	return nil
}
