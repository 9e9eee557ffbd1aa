package scheduler

import (
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/example/lugat/internal/study"
)

// How often idle flashcard sessions are swept out of memory
const evictionInterval = 10 * time.Minute

// Scheduler manages background tasks for the application
type Scheduler struct {
	scheduler *gocron.Scheduler
	svc       *study.Service
}

// New creates a new scheduler instance
func New(svc *study.Service) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		svc:       svc,
	}
}

// Start begins running all scheduled tasks
func (s *Scheduler) Start() {
	s.scheduler.Every(evictionInterval).Do(s.evictSessions)
	s.scheduler.Every(1).Hour().Do(s.logDueCount)

	// Start the scheduler in a non-blocking manner
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// evictSessions reclaims flashcard sessions idle past their TTL
func (s *Scheduler) evictSessions() {
	if evicted := s.svc.EvictSessions(); evicted > 0 {
		slog.Info("evicted idle flashcard sessions", "count", evicted)
	}
}

// logDueCount reports how many words are waiting for review
func (s *Scheduler) logDueCount() {
	due, err := s.svc.SelectDue()
	if err != nil {
		slog.Error("failed to count due words", "error", err)
		return
	}
	if len(due) > 0 {
		slog.Info("words due for review", "count", len(due))
	}
}
