package session

import "time"

// Session is a time-boxed admin credential. The id is the opaque bearer
// token itself; sessions are not tied to a user record because there is a
// single shared admin secret, not per-user identity.
type Session struct {
	ID        string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired is the single expiry predicate shared by lazy eviction on read
// and the proactive sweep.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
