package study

import (
	"math"
	"time"

	"github.com/example/lugat/pkg/models"
)

// streakLookbackDays bounds how far back the streak walk scans.
const streakLookbackDays = 30

// computeStats derives the learner-facing summary from review states
// and the session history of the lookback window. Pending counts and
// the word total are filled in by the caller.
func computeStats(progressByWord map[int]models.UserProgress, sessions []models.StudySession, now time.Time) models.DashboardStats {
	var stats models.DashboardStats

	var correct, total int
	for _, p := range progressByWord {
		if p.Repetitions > 0 {
			stats.LearnedWords++
		}
		correct += p.CorrectAnswers
		total += p.TotalAnswers
	}
	if total > 0 {
		stats.Accuracy = int(math.Round(100 * float64(correct) / float64(total)))
	}

	today := startOfDay(now)
	for _, s := range sessions {
		if !s.Date.Before(today) {
			stats.TodayStudyTime += s.Duration
		}
	}

	stats.Streak = streak(sessions, today)
	return stats
}

// streak counts consecutive calendar days with at least one recorded
// session, walking backward from today and stopping at the first gap.
func streak(sessions []models.StudySession, today time.Time) int {
	days := make(map[string]bool, len(sessions))
	for _, s := range sessions {
		days[s.Date.In(today.Location()).Format(time.DateOnly)] = true
	}

	count := 0
	day := today
	for i := 0; i < streakLookbackDays; i++ {
		if !days[day.Format(time.DateOnly)] {
			break
		}
		count++
		day = day.AddDate(0, 0, -1)
	}
	return count
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
