package models

import "time"

// WordWithProgress pairs a word with its review state, if any.
// IsNew marks words that have never been graded.
type WordWithProgress struct {
	Word
	Progress   *UserProgress `json:"progress,omitempty"`
	NextReview *time.Time    `json:"nextReview,omitempty"`
	IsNew      bool          `json:"isNew"`
}
