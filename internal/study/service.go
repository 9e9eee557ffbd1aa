package study

import (
	"fmt"
	"time"

	"github.com/example/lugat/internal/spaced_repetition"
	"github.com/example/lugat/pkg/models"
)

// WordStore is read access to the word bank.
type WordStore interface {
	// GetAll returns every word in the bank.
	GetAll() ([]models.Word, error)

	// GetByID returns a word, or nil when the ID is unknown.
	GetByID(id int) (*models.Word, error)

	// Search returns words matching the query in script, pronunciation
	// or meaning.
	Search(query string) ([]models.Word, error)

	// GetByCategory returns words in the given category.
	GetByCategory(category string) ([]models.Word, error)
}

// ProgressStore persists per-word review state.
type ProgressStore interface {
	// GetAll returns every review state.
	GetAll() ([]models.UserProgress, error)

	// GetByWord returns the review state for a word, or nil when the
	// word has never been graded.
	GetByWord(wordID int) (*models.UserProgress, error)

	// Upsert creates or replaces the review state for its word.
	Upsert(progress *models.UserProgress) error

	// DeleteAll clears every review state (learner-initiated full reset).
	DeleteAll() error
}

// HistoryStore persists the append-only study session log.
type HistoryStore interface {
	// Create appends a session record.
	Create(session *models.StudySession) error

	// Recent returns the most recent records, newest first.
	Recent(limit int) ([]models.StudySession, error)

	// Since returns records dated at or after t, newest first.
	Since(t time.Time) ([]models.StudySession, error)
}

// SessionKind selects which words a flashcard session is built from.
type SessionKind string

const (
	SessionNew    SessionKind = "new"
	SessionReview SessionKind = "review"
)

// Service is the spaced-repetition core. It holds no global state:
// collections come from the injected stores, time from the injected
// clock, and live sessions from the registry.
type Service struct {
	words    WordStore
	progress ProgressStore
	history  HistoryStore
	sessions *SessionRegistry
	now      func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithClock injects a clock, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
		s.sessions.now = now
	}
}

// WithSessionTTL overrides the idle TTL for flashcard sessions.
func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Service) {
		s.sessions = NewSessionRegistry(ttl)
		s.sessions.now = s.now
	}
}

// NewService wires the study core to its stores.
func NewService(words WordStore, progress ProgressStore, history HistoryStore, opts ...Option) *Service {
	s := &Service{
		words:    words,
		progress: progress,
		history:  history,
		sessions: NewSessionRegistry(DefaultSessionTTL),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListWords returns the full word bank.
func (s *Service) ListWords() ([]models.Word, error) {
	return s.words.GetAll()
}

// SearchWords returns words matching the query.
func (s *Service) SearchWords(query string) ([]models.Word, error) {
	return s.words.Search(query)
}

// WordsByCategory returns words in the given category.
func (s *Service) WordsByCategory(category string) ([]models.Word, error) {
	return s.words.GetByCategory(category)
}

// Grade records one graded answer for a word: it runs the scheduler,
// folds in the correctness counters and persists the updated review
// state. The state row is created lazily on the first grade.
func (s *Service) Grade(wordID int, grade spaced_repetition.Grade) (*models.UserProgress, error) {
	word, err := s.words.GetByID(wordID)
	if err != nil {
		return nil, fmt.Errorf("load word %d: %w", wordID, err)
	}
	if word == nil {
		return nil, ErrUnknownWord
	}

	prior, err := s.progress.GetByWord(wordID)
	if err != nil {
		return nil, fmt.Errorf("load progress for word %d: %w", wordID, err)
	}

	now := s.now()
	result := spaced_repetition.Calculate(grade, prior, now)

	updated := models.UserProgress{WordID: wordID}
	if prior != nil {
		updated = *prior
	}
	updated.Difficulty = grade.Difficulty()
	updated.Repetitions = result.Repetitions
	updated.Interval = result.Interval
	updated.EaseFactor = result.EaseFactor
	updated.NextReviewDate = result.NextReviewDate
	updated.LastStudied = &now
	updated.TotalAnswers++
	if grade.Correct() {
		updated.CorrectAnswers++
	}

	if err := s.progress.Upsert(&updated); err != nil {
		return nil, fmt.Errorf("save progress for word %d: %w", wordID, err)
	}
	return &updated, nil
}

// SelectDue returns the review queue: every word whose review date has
// passed, most urgent first.
func (s *Service) SelectDue() ([]models.WordWithProgress, error) {
	words, progressByWord, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return spaced_repetition.DueForReview(words, progressByWord, s.now()), nil
}

// SelectNew returns never-studied words, newest first. A limit of zero
// or less returns all of them.
func (s *Service) SelectNew(limit int) ([]models.WordWithProgress, error) {
	words, progressByWord, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return spaced_repetition.NewWords(words, progressByWord, limit), nil
}

// CreateSession builds a flashcard session from the current selection.
// An empty selection yields a valid zero-length session; the caller
// decides how to present "nothing to study".
func (s *Service) CreateSession(kind SessionKind) (models.FlashcardSession, error) {
	var (
		snapshot []models.WordWithProgress
		err      error
	)
	switch kind {
	case SessionNew:
		snapshot, err = s.SelectNew(0)
	case SessionReview:
		snapshot, err = s.SelectDue()
	default:
		return models.FlashcardSession{}, ErrInvalidSessionKind
	}
	if err != nil {
		return models.FlashcardSession{}, err
	}
	return s.sessions.Create(snapshot), nil
}

// GetSession returns the session snapshot for a token.
func (s *Service) GetSession(sessionID string) (models.FlashcardSession, error) {
	return s.sessions.Get(sessionID)
}

// AdvanceSession moves the session cursor forward one word.
func (s *Service) AdvanceSession(sessionID string) (models.FlashcardSession, error) {
	return s.sessions.Advance(sessionID)
}

// EvictSessions drops idle sessions and returns how many were removed.
func (s *Service) EvictSessions() int {
	return s.sessions.Evict()
}

// RecordSession appends one study run to the history log.
func (s *Service) RecordSession(session *models.StudySession) error {
	if err := s.history.Create(session); err != nil {
		return fmt.Errorf("record study session: %w", err)
	}
	return nil
}

// RecordQuizResult stores a quiz outcome as a study session dated now.
// timeSpent is in seconds and is rounded to whole minutes.
func (s *Service) RecordQuizResult(totalQuestions, correctAnswers, timeSpentSec int) (*models.StudySession, error) {
	session := models.StudySession{
		Date:           s.now(),
		WordsStudied:   totalQuestions,
		CorrectAnswers: correctAnswers,
		TotalAnswers:   totalQuestions,
		Duration:       (timeSpentSec + 30) / 60,
	}
	if err := s.history.Create(&session); err != nil {
		return nil, fmt.Errorf("record quiz result: %w", err)
	}
	return &session, nil
}

// RecentSessions returns the newest history records, capped at limit.
func (s *Service) RecentSessions(limit int) ([]models.StudySession, error) {
	return s.history.Recent(limit)
}

// ResetProgress clears every review state. Words themselves are untouched.
func (s *Service) ResetProgress() error {
	if err := s.progress.DeleteAll(); err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	return nil
}

// ComputeStats folds the word bank, review states and recent history
// into the dashboard summary.
func (s *Service) ComputeStats() (models.DashboardStats, error) {
	words, progressByWord, err := s.snapshot()
	if err != nil {
		return models.DashboardStats{}, err
	}

	now := s.now()
	today := startOfDay(now)
	sessions, err := s.history.Since(today.AddDate(0, 0, -(streakLookbackDays - 1)))
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("load session history: %w", err)
	}

	stats := computeStats(progressByWord, sessions, now)
	stats.TotalWords = len(words)
	stats.PendingReviews = len(spaced_repetition.DueForReview(words, progressByWord, now))
	stats.PendingFlashcards = len(spaced_repetition.NewWords(words, progressByWord, 0))
	return stats, nil
}

// snapshot loads the word bank and review states once, as immutable
// inputs for the selectors.
func (s *Service) snapshot() ([]models.Word, map[int]models.UserProgress, error) {
	words, err := s.words.GetAll()
	if err != nil {
		return nil, nil, fmt.Errorf("load words: %w", err)
	}
	progress, err := s.progress.GetAll()
	if err != nil {
		return nil, nil, fmt.Errorf("load progress: %w", err)
	}

	progressByWord := make(map[int]models.UserProgress, len(progress))
	for _, p := range progress {
		progressByWord[p.WordID] = p
	}
	return words, progressByWord, nil
}
