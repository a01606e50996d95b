package ports

import (
	"sync"
	"time"

	"tx-composer/internal/core/txbuilder"

	"github.com/google/uuid"
)

// Session is one signing flow. Its tree must only be touched while the
// session is locked.
type Session struct {
	ID        uuid.UUID
	Owner     string
	Tree      txbuilder.Builder
	CreatedAt time.Time

	mu sync.Mutex
}

// Lock serializes access to the session tree.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session tree.
func (s *Session) Unlock() { s.mu.Unlock() }

// SessionStore keeps open sessions until they are closed or expire.
type SessionStore interface {
	Save(session *Session)
	Get(id uuid.UUID) (*Session, bool)
	Delete(id uuid.UUID)
}
