package memory

import (
	"time"

	"tx-composer/internal/core/ports"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
)

// SessionStore implements ports.SessionStore in process memory. Sessions
// expire after ttl without access; every Get extends the deadline.
// Trees hold closures and cannot be serialized, so sessions never leave
// the process.
type SessionStore struct {
	c *gocache.Cache
}

// NewSessionStore creates a store whose janitor runs every cleanupInterval.
func NewSessionStore(ttl, cleanupInterval time.Duration, log zerolog.Logger) *SessionStore {
	c := gocache.New(ttl, cleanupInterval)
	c.OnEvicted(func(key string, _ interface{}) {
		log.Debug().Str("session_id", key).Msg("signing session evicted")
	})
	return &SessionStore{c: c}
}

// Save stores s under its id with the default expiration.
func (m *SessionStore) Save(s *ports.Session) {
	m.c.SetDefault(s.ID.String(), s)
}

// Get returns the session and extends its expiration.
func (m *SessionStore) Get(id uuid.UUID) (*ports.Session, bool) {
	val, found := m.c.Get(id.String())
	if !found {
		return nil, false
	}
	s, ok := val.(*ports.Session)
	if !ok {
		return nil, false
	}
	m.c.SetDefault(id.String(), s)
	return s, true
}

// Delete drops the session.
func (m *SessionStore) Delete(id uuid.UUID) {
	m.c.Delete(id.String())
}

// Len returns the number of stored sessions, including expired ones not
// yet collected by the janitor.
func (m *SessionStore) Len() int {
	return m.c.ItemCount()
}
