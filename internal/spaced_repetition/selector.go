package spaced_repetition

import (
	"sort"
	"time"

	"github.com/example/lugat/pkg/models"
)

// DueForReview returns every word whose review state exists and whose
// next review date has passed, ordered by descending review priority.
// Ties break on ascending word ID so the ordering is deterministic.
func DueForReview(words []models.Word, progress map[int]models.UserProgress, now time.Time) []models.WordWithProgress {
	var due []models.WordWithProgress

	for _, word := range words {
		p, ok := progress[word.ID]
		if !ok || p.NextReviewDate.After(now) {
			continue
		}
		next := p.NextReviewDate
		due = append(due, models.WordWithProgress{
			Word:       word,
			Progress:   &p,
			NextReview: &next,
			IsNew:      false,
		})
	}

	sort.Slice(due, func(i, j int) bool {
		pi := ReviewPriority(due[i].Progress, now)
		pj := ReviewPriority(due[j].Progress, now)
		if pi != pj {
			return pi > pj
		}
		return due[i].ID < due[j].ID
	})

	return due
}

// NewWords returns every word without a review state, newest first by
// word ID so recently added content surfaces before older entries.
// A limit of zero or less means no cap.
func NewWords(words []models.Word, progress map[int]models.UserProgress, limit int) []models.WordWithProgress {
	var fresh []models.WordWithProgress

	for _, word := range words {
		if _, ok := progress[word.ID]; ok {
			continue
		}
		fresh = append(fresh, models.WordWithProgress{
			Word:  word,
			IsNew: true,
		})
	}

	sort.Slice(fresh, func(i, j int) bool {
		return fresh[i].ID > fresh[j].ID
	})

	if limit > 0 && len(fresh) > limit {
		fresh = fresh[:limit]
	}

	return fresh
}
