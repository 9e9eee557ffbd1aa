package spaced_repetition

import (
	"math"
	"testing"
	"time"

	"github.com/example/lugat/pkg/models"
)

var t0 = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func progress(interval int, ease float64, repetitions int) *models.UserProgress {
	return &models.UserProgress{
		WordID:         1,
		Interval:       interval,
		EaseFactor:     ease,
		Repetitions:    repetitions,
		NextReviewDate: t0,
	}
}

func TestParseGrade(t *testing.T) {
	for _, valid := range []string{"easy", "medium", "hard"} {
		if _, err := ParseGrade(valid); err != nil {
			t.Errorf("ParseGrade(%q): unexpected error %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "Easy", "impossible", "0"} {
		if _, err := ParseGrade(invalid); err != ErrInvalidGrade {
			t.Errorf("ParseGrade(%q): got %v, want ErrInvalidGrade", invalid, err)
		}
	}
}

func TestCalculateNewWord(t *testing.T) {
	tests := []struct {
		grade    Grade
		interval int
		ease     float64
		reps     int
	}{
		{GradeEasy, 1, 2.6, 1},
		{GradeMedium, 1, 2.42, 1},
		{GradeHard, 1, 2.3, 0},
	}
	for _, tt := range tests {
		res := Calculate(tt.grade, nil, t0)
		if res.Interval != tt.interval {
			t.Errorf("%s: interval got %d, want %d", tt.grade, res.Interval, tt.interval)
		}
		if math.Abs(res.EaseFactor-tt.ease) > 1e-9 {
			t.Errorf("%s: ease got %f, want %f", tt.grade, res.EaseFactor, tt.ease)
		}
		if res.Repetitions != tt.reps {
			t.Errorf("%s: repetitions got %d, want %d", tt.grade, res.Repetitions, tt.reps)
		}
	}
}

func TestCalculateSecondSuccess(t *testing.T) {
	// Easy on day 10 with one prior success: interval jumps to 6 days
	day10 := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	res := Calculate(GradeEasy, progress(1, 2.5, 1), day10)

	if res.Interval != 6 {
		t.Errorf("interval: got %d, want 6", res.Interval)
	}
	if math.Abs(res.EaseFactor-2.6) > 1e-9 {
		t.Errorf("ease: got %f, want 2.6", res.EaseFactor)
	}
	want := time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC)
	if !res.NextReviewDate.Equal(want) {
		t.Errorf("next review: got %v, want %v", res.NextReviewDate, want)
	}
}

func TestCalculateHardResets(t *testing.T) {
	res := Calculate(GradeHard, progress(6, 2.5, 2), t0)

	if res.Interval != 1 {
		t.Errorf("interval: got %d, want 1", res.Interval)
	}
	if math.Abs(res.EaseFactor-2.3) > 1e-9 {
		t.Errorf("ease: got %f, want 2.3", res.EaseFactor)
	}
	if res.Repetitions != 0 {
		t.Errorf("repetitions: got %d, want 0", res.Repetitions)
	}
}

func TestCalculateMatureInterval(t *testing.T) {
	// Past the first two successes, interval = round(interval * ease)
	res := Calculate(GradeMedium, progress(6, 2.5, 2), t0)
	if res.Interval != 15 {
		t.Errorf("interval: got %d, want 15", res.Interval)
	}
	if res.Repetitions != 3 {
		t.Errorf("repetitions: got %d, want 3", res.Repetitions)
	}
}

func TestEaseFloorHolds(t *testing.T) {
	// Ease never drops below 1.3 under any grade sequence
	grades := []Grade{
		GradeHard, GradeHard, GradeMedium, GradeHard, GradeHard,
		GradeMedium, GradeMedium, GradeHard, GradeHard, GradeHard,
	}
	state := progress(1, 1.4, 0)
	for i, g := range grades {
		res := Calculate(g, state, t0)
		if res.EaseFactor < MinEaseFactor {
			t.Fatalf("step %d (%s): ease %f below floor", i, g, res.EaseFactor)
		}
		if res.Interval < 1 {
			t.Fatalf("step %d (%s): interval %d below 1", i, g, res.Interval)
		}
		state.Interval = res.Interval
		state.EaseFactor = res.EaseFactor
		state.Repetitions = res.Repetitions
	}
}

func TestIntervalAlwaysPositive(t *testing.T) {
	for _, g := range []Grade{GradeEasy, GradeMedium, GradeHard} {
		for reps := 0; reps < 5; reps++ {
			res := Calculate(g, progress(1, MinEaseFactor, reps), t0)
			if res.Interval < 1 {
				t.Errorf("grade %s reps %d: interval %d", g, reps, res.Interval)
			}
		}
	}
}

func TestReviewPriority(t *testing.T) {
	// Three days overdue, ease 2.0: 3*10 + 1/2.0 = 30.5
	overdue := progress(1, 2.0, 1)
	overdue.NextReviewDate = t0.AddDate(0, 0, -3)
	if got := ReviewPriority(overdue, t0); math.Abs(got-30.5) > 1e-9 {
		t.Errorf("overdue priority: got %f, want 30.5", got)
	}

	// Due right now, ease 2.5: 0*10 + 1/2.5 = 0.4
	dueNow := progress(1, 2.5, 1)
	dueNow.NextReviewDate = t0
	if got := ReviewPriority(dueNow, t0); math.Abs(got-0.4) > 1e-9 {
		t.Errorf("due-today priority: got %f, want 0.4", got)
	}
}

func TestGradeDifficulty(t *testing.T) {
	if GradeEasy.Difficulty() != models.DifficultyEasy ||
		GradeMedium.Difficulty() != models.DifficultyMedium ||
		GradeHard.Difficulty() != models.DifficultyHard {
		t.Error("grade to difficulty band mapping is wrong")
	}
	if GradeHard.Correct() {
		t.Error("hard should not count as a correct recall")
	}
	if !GradeEasy.Correct() || !GradeMedium.Correct() {
		t.Error("easy and medium should count as correct recalls")
	}
}
