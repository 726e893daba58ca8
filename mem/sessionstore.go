// Package mem provides in-memory implementations of docbot storage
// interfaces. Sessions are deliberately process-local: conversation state
// does not survive restarts.
package mem

import (
	"context"
	"sync"

	"github.com/fwojciec/docbot"
)

// Compile-time interface verification.
var _ docbot.SessionStore = (*SessionStore)(nil)

// SessionStore holds per-user sessions in a mutex-guarded map. Every
// operation runs under the lock, so a user's state is read, transitioned,
// and cleared atomically: of two concurrent messages from the same user,
// only one can Take the pending session.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[int64]docbot.Session
}

// NewSessionStore creates an empty SessionStore.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[int64]docbot.Session),
	}
}

// Get returns a copy of the user's current session.
func (s *SessionStore) Get(_ context.Context, userID int64) (*docbot.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return nil, docbot.Errorf(docbot.ENOTFOUND, "no session for user %d", userID)
	}
	return &sess, nil
}

// Put creates or replaces the user's session.
func (s *SessionStore) Put(_ context.Context, userID int64, sess docbot.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[userID] = sess
	return nil
}

// Take atomically returns and clears the user's session.
func (s *SessionStore) Take(_ context.Context, userID int64) (*docbot.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return nil, docbot.Errorf(docbot.ENOTFOUND, "no session for user %d", userID)
	}
	delete(s.sessions, userID)
	return &sess, nil
}

// Clear removes the user's session. Clearing an absent session is a no-op.
func (s *SessionStore) Clear(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, userID)
	return nil
}
