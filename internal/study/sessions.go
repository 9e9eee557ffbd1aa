package study

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/example/lugat/pkg/models"
)

// DefaultSessionTTL is how long an idle flashcard session survives
// before the eviction sweep reclaims it.
const DefaultSessionTTL = time.Hour

// SessionRegistry holds live flashcard sessions in memory, keyed by an
// opaque token. Sessions are snapshots: the word list is fixed at
// creation and never re-queried. Entries idle past the TTL are removed
// by Evict, which the background scheduler calls periodically.
type SessionRegistry struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]*sessionEntry
}

type sessionEntry struct {
	session  models.FlashcardSession
	lastSeen time.Time
}

// NewSessionRegistry creates an empty registry. A non-positive ttl
// falls back to DefaultSessionTTL.
func NewSessionRegistry(ttl time.Duration) *SessionRegistry {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionRegistry{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*sessionEntry),
	}
}

// Create registers a new session over the given snapshot and returns it.
// An empty snapshot is a valid zero-length session, not an error.
func (r *SessionRegistry) Create(words []models.WordWithProgress) models.FlashcardSession {
	session := models.FlashcardSession{
		SessionID:    uuid.NewString(),
		Words:        words,
		CurrentIndex: 0,
		TotalWords:   len(words),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[session.SessionID] = &sessionEntry{session: session, lastSeen: r.now()}
	return session
}

// Get returns a snapshot of the session with the given token.
func (r *SessionRegistry) Get(sessionID string) (models.FlashcardSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[sessionID]
	if !ok {
		return models.FlashcardSession{}, ErrSessionNotFound
	}
	entry.lastSeen = r.now()
	return entry.session, nil
}

// Advance moves the cursor one word forward and returns the updated
// session. The cursor saturates at TotalWords, at which point the
// session reports Completed.
func (r *SessionRegistry) Advance(sessionID string) (models.FlashcardSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[sessionID]
	if !ok {
		return models.FlashcardSession{}, ErrSessionNotFound
	}
	if entry.session.CurrentIndex < entry.session.TotalWords {
		entry.session.CurrentIndex++
	}
	entry.lastSeen = r.now()
	return entry.session, nil
}

// Evict removes sessions idle longer than the TTL and returns how many
// were dropped.
func (r *SessionRegistry) Evict() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.ttl)
	evicted := 0
	for id, entry := range r.entries {
		if entry.lastSeen.Before(cutoff) {
			delete(r.entries, id)
			evicted++
		}
	}
	return evicted
}

// Len reports the number of live sessions.
func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
