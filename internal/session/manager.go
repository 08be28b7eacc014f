package session

import (
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
)

const idLength = 8

// Registry of live sessions, capped at a fixed number.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	slots    *semaphore.Weighted
}

func NewManager(maxSessions int64) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		slots:    semaphore.NewWeighted(maxSessions),
	}
}

// Registers a new empty session.
//
// Fails with ErrTooManySessions when the cap is reached.
func (m *Manager) Create(seed uint64) (string, *Session, error) {
	if !m.slots.TryAcquire(1) {
		return "", nil, ErrTooManySessions
	}

	s := New(seed)

	m.mu.Lock()
	defer m.mu.Unlock()

	id := newID()
	for m.sessions[id] != nil {
		id = newID()
	}
	m.sessions[id] = s

	return id, s, nil
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Forgets the session and frees its slot.
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}

	delete(m.sessions, id)
	m.slots.Release(1)
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}

func newID() string {
	return uuid.NewString()[:idLength]
}
