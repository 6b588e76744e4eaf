//go:generate go run go.uber.org/mock/mockgen -source=session.go -destination=../mocks/mock_session_repository.go -package=mocks
package repositories

import (
	"hangman-bot/domain"
	"hangman-bot/errors"
	"sync"
	"time"
)

type ISessionRepository interface {
	Has(senderID string) bool
	Create(session domain.GameSession) error
	Get(senderID string) (domain.GameSession, bool)
	Save(session domain.GameSession) error
	Remove(senderID string) (domain.GameSession, bool)
	RemoveIdle(cutoff time.Time) []domain.GameSession
	List() []domain.GameSession
	Len() int
}

// SessionRepository keeps at most one game per sender, in memory only.
// Stored sessions are copies: callers must Save to publish a change.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]domain.GameSession
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[string]domain.GameSession)}
}

func (r *SessionRepository) Has(senderID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.sessions[senderID]
	return ok
}

// Create registers a new game, rejecting it if the sender already plays one.
func (r *SessionRepository) Create(session domain.GameSession) error {
	if session.SenderID == "" {
		return errors.ErrEmptySender
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[session.SenderID]; ok {
		return errors.ErrSessionAlreadyExists
	}
	r.sessions[session.SenderID] = session.Clone()
	return nil
}

func (r *SessionRepository) Get(senderID string) (domain.GameSession, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[senderID]
	if !ok {
		return domain.GameSession{}, false
	}
	return session.Clone(), true
}

// Save replaces an existing game. A removed game is not resurrected.
func (r *SessionRepository) Save(session domain.GameSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.sessions[session.SenderID]
	if !ok || current.ID != session.ID {
		return errors.ErrSessionNotFound
	}
	r.sessions[session.SenderID] = session.Clone()
	return nil
}

// Remove deletes the sender's game and returns it. It reports false when the
// game was already gone, e.g. expired by the janitor.
func (r *SessionRepository) Remove(senderID string) (domain.GameSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[senderID]
	if !ok {
		return domain.GameSession{}, false
	}
	delete(r.sessions, senderID)
	return session, true
}

// RemoveIdle drops every game not updated since cutoff and returns them.
func (r *SessionRepository) RemoveIdle(cutoff time.Time) []domain.GameSession {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed []domain.GameSession
	for senderID, session := range r.sessions {
		if session.UpdatedAt.Before(cutoff) {
			removed = append(removed, session)
			delete(r.sessions, senderID)
		}
	}
	return removed
}

func (r *SessionRepository) List() []domain.GameSession {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]domain.GameSession, 0, len(r.sessions))
	for _, session := range r.sessions {
		res = append(res, session.Clone())
	}
	return res
}

func (r *SessionRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
