package models

import "time"

// StudySession is one historical study run, append-only. Used by the
// dashboard stats to compute study time and streaks.
type StudySession struct {
	ID             int       `json:"id" db:"id"`
	Date           time.Time `json:"date" db:"date"`
	WordsStudied   int       `json:"words_studied" db:"words_studied"`
	CorrectAnswers int       `json:"correct_answers" db:"correct_answers"`
	TotalAnswers   int       `json:"total_answers" db:"total_answers"`
	Duration       int       `json:"duration" db:"duration"` // minutes
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
