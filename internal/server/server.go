// Package server exposes the study core over the HTTP/JSON API used by
// the web client.
package server

import (
	"github.com/gin-gonic/gin"

	"github.com/example/lugat/internal/study"
)

// NewRouter builds the gin engine with every API route registered.
func NewRouter(svc *study.Service) *gin.Engine {
	router := gin.Default()

	api := router.Group("/api")
	{
		api.GET("/words", ListWords(svc))
		api.GET("/words/search", SearchWords(svc))
		api.GET("/words/category/:category", WordsByCategory(svc))

		api.GET("/dashboard/stats", DashboardStats(svc))

		api.GET("/study/review", ReviewWords(svc))
		api.GET("/study/new", NewWords(svc))

		api.POST("/study/flashcard-session", CreateFlashcardSession(svc))
		api.GET("/study/flashcard-session/:sessionId", GetFlashcardSession(svc))
		api.POST("/study/flashcard-session/:sessionId/advance", AdvanceFlashcardSession(svc))

		api.POST("/progress", UpdateProgress(svc))
		api.POST("/progress/reset", ResetProgress(svc))

		api.POST("/study/session", CreateStudySession(svc))
		api.GET("/study/sessions", RecentStudySessions(svc))
		api.POST("/study/quiz-result", SaveQuizResult(svc))
	}

	return router
}
