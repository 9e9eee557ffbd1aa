package models

import "time"

// Difficulty bands for the last graded answer on a word
const (
	DifficultyNew    = 0
	DifficultyEasy   = 1
	DifficultyMedium = 2
	DifficultyHard   = 3
)

// UserProgress tracks the learner's memory state for a single word
// using the SM-2 algorithm. One row per word, created lazily on the
// first graded answer.
type UserProgress struct {
	ID             int        `json:"id" db:"id"`
	WordID         int        `json:"word_id" db:"word_id"`
	Difficulty     int        `json:"difficulty" db:"difficulty"`
	Repetitions    int        `json:"repetitions" db:"repetitions"`
	Interval       int        `json:"interval" db:"interval"`                   // days until next review
	EaseFactor     float64    `json:"ease_factor" db:"ease_factor"`             // SM-2 EF parameter, >= 1.3
	NextReviewDate time.Time  `json:"next_review_date" db:"next_review_date"`
	LastStudied    *time.Time `json:"last_studied" db:"last_studied"`
	CorrectAnswers int        `json:"correct_answers" db:"correct_answers"`
	TotalAnswers   int        `json:"total_answers" db:"total_answers"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}
