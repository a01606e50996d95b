package memory

import (
	"bytes"
	"testing"
	"time"

	"tx-composer/internal/core/ports"
	"tx-composer/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(owner string) *ports.Session {
	return &ports.Session{ID: uuid.New(), Owner: owner, CreatedAt: time.Now()}
}

func TestSessionStore_SaveGetDelete(t *testing.T) {
	store := NewSessionStore(time.Minute, time.Minute, logger.NewWithWriter("error", &bytes.Buffer{}))
	s := newSession("alice")

	_, ok := store.Get(s.ID)
	assert.False(t, ok)

	store.Save(s)
	got, ok := store.Get(s.ID)
	require.True(t, ok)
	assert.Same(t, s, got)
	assert.Equal(t, 1, store.Len())

	store.Delete(s.ID)
	_, ok = store.Get(s.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestSessionStore_Expiry(t *testing.T) {
	store := NewSessionStore(20*time.Millisecond, 0, logger.NewWithWriter("error", &bytes.Buffer{}))
	s := newSession("bob")
	store.Save(s)

	time.Sleep(40 * time.Millisecond)

	_, ok := store.Get(s.ID)
	assert.False(t, ok)
}

func TestSessionStore_GetExtendsExpiry(t *testing.T) {
	store := NewSessionStore(60*time.Millisecond, 0, logger.NewWithWriter("error", &bytes.Buffer{}))
	s := newSession("carol")
	store.Save(s)

	for i := 0; i < 4; i++ {
		time.Sleep(30 * time.Millisecond)
		_, ok := store.Get(s.ID)
		require.True(t, ok, "session should stay alive while used (iteration %d)", i)
	}
}

func TestSessionStore_EvictionIsLogged(t *testing.T) {
	var buf bytes.Buffer
	store := NewSessionStore(time.Minute, 0, logger.NewWithWriter("debug", &buf))
	s := newSession("dave")
	store.Save(s)

	store.Delete(s.ID)

	assert.Contains(t, buf.String(), s.ID.String())
	assert.Contains(t, buf.String(), "signing session evicted")
}
