package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/lugat/pkg/models"
)

// WordRepository handles database operations for words
type WordRepository struct{}

// NewWordRepository creates a new repository instance
func NewWordRepository() *WordRepository {
	return &WordRepository{}
}

// GetAll returns all words
func (r *WordRepository) GetAll() ([]models.Word, error) {
	var words []models.Word
	err := DB.Select(&words, "SELECT * FROM words ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to get words: %v", err)
	}
	return words, nil
}

// GetByID returns a word by ID, or nil if no such word exists
func (r *WordRepository) GetByID(id int) (*models.Word, error) {
	var word models.Word
	err := DB.Get(&word, "SELECT * FROM words WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get word by ID: %v", err)
	}
	return &word, nil
}

// Search returns words whose script, pronunciation or meaning contains
// the query, case-insensitively
func (r *WordRepository) Search(query string) ([]models.Word, error) {
	var words []models.Word
	pattern := "%" + query + "%"
	err := DB.Select(&words, `
		SELECT * FROM words
		WHERE LOWER(ottoman) LIKE LOWER($1)
		   OR LOWER(pronunciation) LIKE LOWER($2)
		   OR LOWER(turkish) LIKE LOWER($3)
		ORDER BY id
	`, pattern, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search words: %v", err)
	}
	return words, nil
}

// GetByCategory returns words in a specific category
func (r *WordRepository) GetByCategory(category string) ([]models.Word, error) {
	var words []models.Word
	err := DB.Select(&words, "SELECT * FROM words WHERE category = $1 ORDER BY id", category)
	if err != nil {
		return nil, fmt.Errorf("failed to get words by category: %v", err)
	}
	return words, nil
}

// Create inserts a new word
func (r *WordRepository) Create(word *models.Word) error {
	result, err := DB.Exec(`
		INSERT INTO words (ottoman, pronunciation, turkish, example, category)
		VALUES ($1, $2, $3, $4, $5)
	`,
		word.Ottoman,
		word.Pronunciation,
		word.Turkish,
		word.Example,
		word.Category,
	)
	if err != nil {
		return fmt.Errorf("failed to create word: %v", err)
	}

	// Postgres doesn't report LastInsertId through lib/pq; fall back to
	// a lookup when it's unavailable
	if id, err := result.LastInsertId(); err == nil {
		word.ID = int(id)
		return nil
	}
	if err := DB.Get(&word.ID, "SELECT MAX(id) FROM words"); err != nil {
		return fmt.Errorf("failed to get last insert ID: %v", err)
	}
	return nil
}
