package spaced_repetition

import (
	"errors"
	"math"
	"time"

	"github.com/example/lugat/pkg/models"
)

// Algorithm parameters. An ease factor below MinEaseFactor would make
// intervals grow too slowly to be useful, so 1.3 is a hard floor.
const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3
	EasyBonus         = 0.1
	MediumPenalty     = 0.08
	HardPenalty       = 0.2
	SecondInterval    = 6
)

// ErrInvalidGrade is returned for grades outside the easy/medium/hard enum.
var ErrInvalidGrade = errors.New("invalid grade")

// Grade is the learner's self-reported recall difficulty for one review
type Grade string

const (
	GradeEasy   Grade = "easy"
	GradeMedium Grade = "medium"
	GradeHard   Grade = "hard"
)

// ParseGrade validates a raw grade value from the API boundary.
func ParseGrade(s string) (Grade, error) {
	switch Grade(s) {
	case GradeEasy, GradeMedium, GradeHard:
		return Grade(s), nil
	}
	return "", ErrInvalidGrade
}

// Difficulty maps a grade onto the stored difficulty band.
func (g Grade) Difficulty() int {
	switch g {
	case GradeEasy:
		return models.DifficultyEasy
	case GradeMedium:
		return models.DifficultyMedium
	default:
		return models.DifficultyHard
	}
}

// Correct reports whether the grade counts as a successful recall.
func (g Grade) Correct() bool {
	return g != GradeHard
}

// Result is the scheduling triple produced by one review, plus the
// repetition count so callers cannot forget the hard-grade reset.
type Result struct {
	Interval       int
	EaseFactor     float64
	Repetitions    int
	NextReviewDate time.Time
}

// Calculate runs one step of the SM-2 variant. A nil prior means a
// brand-new word (interval 1, ease 2.5, zero repetitions). A hard grade
// resets the interval to one day, lowers the ease factor and zeroes the
// repetition count; easy and medium grades grow the interval through the
// 1 -> 6 -> round(interval * ease) progression and nudge the ease factor
// up or down. Guarantees EaseFactor >= 1.3 and Interval >= 1.
func Calculate(grade Grade, prior *models.UserProgress, now time.Time) Result {
	interval := 1
	easeFactor := DefaultEaseFactor
	repetitions := 0

	if prior != nil {
		interval = prior.Interval
		easeFactor = prior.EaseFactor
		repetitions = prior.Repetitions
	}

	var res Result
	if grade == GradeHard {
		res.Interval = 1
		res.EaseFactor = math.Max(MinEaseFactor, easeFactor-HardPenalty)
		res.Repetitions = 0
	} else {
		switch {
		case repetitions == 0:
			res.Interval = 1
		case repetitions == 1:
			res.Interval = SecondInterval
		default:
			res.Interval = int(math.Round(float64(interval) * easeFactor))
		}
		if grade == GradeEasy {
			res.EaseFactor = easeFactor + EasyBonus
		} else {
			res.EaseFactor = math.Max(MinEaseFactor, easeFactor-MediumPenalty)
		}
		res.Repetitions = repetitions + 1
	}

	// Calendar-day arithmetic, no sub-day precision
	res.NextReviewDate = now.AddDate(0, 0, res.Interval)
	return res
}

// ReviewPriority scores a due word for ordering within the review queue.
// Overdue days dominate; the inverted ease factor breaks ties so harder
// words surface first among equally overdue ones.
func ReviewPriority(progress *models.UserProgress, now time.Time) float64 {
	daysOverdue := int(math.Floor(now.Sub(progress.NextReviewDate).Hours() / 24))
	if daysOverdue < 0 {
		daysOverdue = 0
	}
	return float64(daysOverdue)*10 + 1/progress.EaseFactor
}
