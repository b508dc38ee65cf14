package memory

import (
	"context"
	"sync"
	"time"

	"github.com/rainesports/site-api/internal/domain/session"
)

// SessionRepository keys sessions by their opaque token. Expiry is enforced
// twice with one predicate: lazily on Get and in bulk via DeleteExpired.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]session.Session
	now      func() time.Time
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]session.Session),
		now:      time.Now,
	}
}

// SetNow overrides the clock. Test use only.
func (r *SessionRepository) SetNow(now func() time.Time) {
	r.now = now
}

func (r *SessionRepository) Create(_ context.Context, s session.Session) (session.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[s.ID] = s

	return s, nil
}

func (r *SessionRepository) Get(_ context.Context, id string) (session.Session, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return session.Session{}, false, nil
	}
	if s.Expired(r.now()) {
		delete(r.sessions, id)
		return session.Session{}, false, nil
	}

	return s, true, nil
}

func (r *SessionRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)

	return nil
}

func (r *SessionRepository) DeleteExpired(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for id, s := range r.sessions {
		if s.Expired(now) {
			delete(r.sessions, id)
			removed++
		}
	}

	return removed, nil
}
