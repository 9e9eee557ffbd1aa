package database

import (
	"fmt"
	"time"

	"github.com/example/lugat/pkg/models"
)

// StudySessionRepository handles the append-only study session log
type StudySessionRepository struct{}

// NewStudySessionRepository creates a new repository instance
func NewStudySessionRepository() *StudySessionRepository {
	return &StudySessionRepository{}
}

// Create appends a study session record
func (r *StudySessionRepository) Create(session *models.StudySession) error {
	result, err := DB.Exec(`
		INSERT INTO study_sessions (date, words_studied, correct_answers, total_answers, duration)
		VALUES ($1, $2, $3, $4, $5)
	`,
		session.Date,
		session.WordsStudied,
		session.CorrectAnswers,
		session.TotalAnswers,
		session.Duration,
	)
	if err != nil {
		return fmt.Errorf("failed to create study session: %v", err)
	}

	if id, err := result.LastInsertId(); err == nil {
		session.ID = int(id)
		return nil
	}
	if err := DB.Get(&session.ID, "SELECT MAX(id) FROM study_sessions"); err != nil {
		return fmt.Errorf("failed to get last insert ID: %v", err)
	}
	return nil
}

// Recent returns the most recent sessions, newest first
func (r *StudySessionRepository) Recent(limit int) ([]models.StudySession, error) {
	var sessions []models.StudySession
	err := DB.Select(&sessions, "SELECT * FROM study_sessions ORDER BY date DESC LIMIT $1", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent sessions: %v", err)
	}
	return sessions, nil
}

// Since returns sessions dated at or after t, newest first
func (r *StudySessionRepository) Since(t time.Time) ([]models.StudySession, error) {
	var sessions []models.StudySession
	err := DB.Select(&sessions, "SELECT * FROM study_sessions WHERE date >= $1 ORDER BY date DESC", t)
	if err != nil {
		return nil, fmt.Errorf("failed to get sessions since %s: %v", t.Format(time.DateOnly), err)
	}
	return sessions, nil
}
