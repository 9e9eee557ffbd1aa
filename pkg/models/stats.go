package models

// DashboardStats summarizes the learner's overall progress
type DashboardStats struct {
	LearnedWords      int `json:"learnedWords"`
	TodayStudyTime    int `json:"todayStudyTime"` // minutes
	Accuracy          int `json:"accuracy"`       // percentage, 0-100
	Streak            int `json:"streak"`         // consecutive study days
	PendingFlashcards int `json:"pendingFlashcards"`
	PendingReviews    int `json:"pendingReviews"`
	TotalWords        int `json:"totalWords"`
}
