package wizard

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when a token names no live session. The
// session either never existed, was ended, or was evicted as stale.
var ErrSessionNotFound = errors.New("wizard session not found")

type session struct {
	wizard   *Wizard
	lastSeen time.Time
}

// Manager holds one wizard per user session, keyed by an opaque token. All
// access is serialized through the manager's lock, which makes the wizards
// themselves safe to keep lock-free.
type Manager struct {
	mu        sync.Mutex
	sessions  map[string]*session
	newWizard func() *Wizard
	ttl       time.Duration
}

// NewManager creates a session manager. newWizard builds a fresh wizard for
// each session; sessions idle longer than ttl are removed by EvictStale.
func NewManager(newWizard func() *Wizard, ttl time.Duration) *Manager {
	return &Manager{
		sessions:  make(map[string]*session),
		newWizard: newWizard,
		ttl:       ttl,
	}
}

// StartSession allocates a new session with an idle wizard and returns its
// token.
func (m *Manager) StartSession() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	token := uuid.NewString()
	m.sessions[token] = &session{
		wizard:   m.newWizard(),
		lastSeen: time.Now(),
	}
	return token
}

// With runs fn against the session's wizard while holding the manager lock
// and refreshes the session's idle timer.
func (m *Manager) With(token string, fn func(w *Wizard) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[token]
	if !ok {
		return ErrSessionNotFound
	}

	s.lastSeen = time.Now()
	return fn(s.wizard)
}

// EndSession removes the session and discards any draft it holds.
func (m *Manager) EndSession(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, token)
}

// EvictStale removes sessions idle longer than the manager's ttl, discarding
// their drafts, and returns how many were evicted. The background job calls
// this periodically so abandoned wizard flows do not pile up.
func (m *Manager) EvictStale(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for token, s := range m.sessions {
		if now.Sub(s.lastSeen) > m.ttl {
			delete(m.sessions, token)
			evicted++
		}
	}
	return evicted
}

// SessionCount returns the number of live sessions.
func (m *Manager) SessionCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.sessions)
}
