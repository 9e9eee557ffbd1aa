package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/example/lugat/internal/spaced_repetition"
	"github.com/example/lugat/internal/study"
	"github.com/example/lugat/pkg/models"
)

const defaultSessionsLimit = 10

// ListWords returns the full word bank.
func ListWords(svc *study.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		words, err := svc.ListWords()
		if err != nil {
			slog.Error("failed to list words", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch words"})
			return
		}
		c.JSON(http.StatusOK, words)
	}
}

// SearchWords returns words matching the q query parameter.
func SearchWords(svc *study.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("q")
		if query == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "search query is required"})
			return
		}
		words, err := svc.SearchWords(query)
		if err != nil {
			slog.Error("failed to search words", "query", query, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search words"})
			return
		}
		c.JSON(http.StatusOK, words)
	}
}

// WordsByCategory returns words in the given category.
func WordsByCategory(svc *study.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Param("category")
		words, err := svc.WordsByCategory(category)
		if err != nil {
			slog.Error("failed to fetch words by category", "category", category, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch words by category"})
			return
		}
		c.JSON(http.StatusOK, words)
	}
}

// DashboardStats returns the learner's summary metrics.
func DashboardStats(svc *study.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := svc.ComputeStats()
		if err != nil {
			slog.Error("failed to compute dashboard stats", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch dashboard stats"})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

// ReviewWords returns the due-for-review queue, most urgent first.
func ReviewWords(svc *study.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		words, err := svc.SelectDue()
		if err != nil {
			slog.Error("failed to select due words", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch review words"})
			return
		}
		c.JSON(http.StatusOK, words)
	}
}

// NewWords returns never-studied words, newest first. Without an
// explicit limit query parameter every unseen word is returned.
func NewWords(svc *study.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 0
		if raw := c.Query("limit"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil {
				limit = n
			}
		}
		words, err := svc.SelectNew(limit)
		if err != nil {
			slog.Error("failed to select new words", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch new words"})
			return
		}
		c.JSON(http.StatusOK, words)
	}
}

type createSessionRequest struct {
	Type string `json:"type"`
}

// CreateFlashcardSession builds a new study run over the current
// selection of new or due words.
func CreateFlashcardSession(svc *study.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createSessionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session type"})
			return
		}

		session, err := svc.CreateSession(study.SessionKind(req.Type))
		if errors.Is(err, study.ErrInvalidSessionKind) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session type"})
			return
		}
		if err != nil {
			slog.Error("failed to create flashcard session", "type", req.Type, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create flashcard session"})
			return
		}

		slog.Info("created flashcard session",
			"sessionId", session.SessionID, "type", req.Type, "words", session.TotalWords)
		c.JSON(http.StatusOK, session)
	}
}

// GetFlashcardSession returns the session snapshot for a token.
func GetFlashcardSession(svc *study.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := svc.GetSession(c.Param("sessionId"))
		if errors.Is(err, study.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch flashcard session"})
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// AdvanceFlashcardSession moves the session cursor one word forward.
func AdvanceFlashcardSession(svc *study.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := svc.AdvanceSession(c.Param("sessionId"))
		if errors.Is(err, study.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to advance flashcard session"})
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

type updateProgressRequest struct {
	WordID     int    `json:"wordId"`
	Difficulty string `json:"difficulty"`
}

// UpdateProgress grades one answer and returns the updated review state.
func UpdateProgress(svc *study.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateProgressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid progress data"})
			return
		}

		grade, err := spaced_repetition.ParseGrade(req.Difficulty)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid progress data"})
			return
		}

		progress, err := svc.Grade(req.WordID, grade)
		if errors.Is(err, study.ErrUnknownWord) {
			c.JSON(http.StatusNotFound, gin.H{"error": "word not found"})
			return
		}
		if err != nil {
			slog.Error("failed to update progress", "wordId", req.WordID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update progress"})
			return
		}
		c.JSON(http.StatusOK, progress)
	}
}

// ResetProgress clears every review state.
func ResetProgress(svc *study.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.ResetProgress(); err != nil {
			slog.Error("failed to reset progress", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset progress"})
			return
		}
		slog.Info("cleared all review progress")
		c.JSON(http.StatusOK, gin.H{"status": "success"})
	}
}

type createStudySessionRequest struct {
	Date           time.Time `json:"date"`
	WordsStudied   int       `json:"wordsStudied"`
	CorrectAnswers int       `json:"correctAnswers"`
	TotalAnswers   int       `json:"totalAnswers"`
	Duration       int       `json:"duration"`
}

// CreateStudySession appends one study run to the history log.
func CreateStudySession(svc *study.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createStudySessionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session data"})
			return
		}

		session := models.StudySession{
			Date:           req.Date,
			WordsStudied:   req.WordsStudied,
			CorrectAnswers: req.CorrectAnswers,
			TotalAnswers:   req.TotalAnswers,
			Duration:       req.Duration,
		}
		if err := svc.RecordSession(&session); err != nil {
			slog.Error("failed to create study session", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create study session"})
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// RecentStudySessions returns the newest history records.
func RecentStudySessions(svc *study.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := defaultSessionsLimit
		if raw := c.Query("limit"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil && n > 0 {
				limit = n
			}
		}
		sessions, err := svc.RecentSessions(limit)
		if err != nil {
			slog.Error("failed to fetch study sessions", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch study sessions"})
			return
		}
		c.JSON(http.StatusOK, sessions)
	}
}

type quizResultRequest struct {
	TotalQuestions int `json:"totalQuestions"`
	CorrectAnswers int `json:"correctAnswers"`
	TimeSpent      int `json:"timeSpent"` // seconds
}

// SaveQuizResult stores a quiz outcome as a study session.
func SaveQuizResult(svc *study.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req quizResultRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quiz result"})
			return
		}

		session, err := svc.RecordQuizResult(req.TotalQuestions, req.CorrectAnswers, req.TimeSpent)
		if err != nil {
			slog.Error("failed to save quiz result", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save quiz result"})
			return
		}
		c.JSON(http.StatusOK, session)
	}
}
