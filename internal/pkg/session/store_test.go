package session

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, cfg Config) (*memoryStore, *time.Time) {
	t.Helper()
	store := NewMemoryStore(cfg).(*memoryStore)
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	return store, &now
}

func TestMemoryStore_CreateAndValidate(t *testing.T) {
	store, _ := newTestStore(t, Config{TTL: time.Hour, MaxSessions: 10})

	token, err := store.Create("EMP001", "10.0.0.1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sess, ok := store.Validate(token, "10.0.0.1")
	require.True(t, ok)
	assert.Equal(t, "EMP001", sess.EmployeeID)
}

func TestMemoryStore_SingleSessionPerEmployee(t *testing.T) {
	store, _ := newTestStore(t, Config{TTL: time.Hour, MaxSessions: 10})

	first, err := store.Create("EMP001", "10.0.0.1")
	require.NoError(t, err)
	second, err := store.Create("EMP001", "10.0.0.1")
	require.NoError(t, err)

	_, ok := store.Validate(first, "10.0.0.1")
	assert.False(t, ok, "first token should be revoked by second login")
	_, ok = store.Validate(second, "10.0.0.1")
	assert.True(t, ok)
}

func TestMemoryStore_IPMismatchInvalidates(t *testing.T) {
	store, _ := newTestStore(t, Config{TTL: time.Hour, MaxSessions: 10})

	token, err := store.Create("EMP001", "10.0.0.1")
	require.NoError(t, err)

	_, ok := store.Validate(token, "10.0.0.2")
	assert.False(t, ok)

	// The session is gone even for the original IP.
	_, ok = store.Validate(token, "10.0.0.1")
	assert.False(t, ok)
}

func TestMemoryStore_IdleTimeout(t *testing.T) {
	store, now := newTestStore(t, Config{TTL: time.Hour, MaxSessions: 10})

	token, err := store.Create("EMP001", "10.0.0.1")
	require.NoError(t, err)

	*now = now.Add(59 * time.Minute)
	_, ok := store.Validate(token, "10.0.0.1")
	require.True(t, ok, "access inside TTL should refresh the session")

	*now = now.Add(59 * time.Minute)
	_, ok = store.Validate(token, "10.0.0.1")
	require.True(t, ok, "TTL is an idle timeout, not an absolute one")

	*now = now.Add(2 * time.Hour)
	_, ok = store.Validate(token, "10.0.0.1")
	assert.False(t, ok)
}

func TestMemoryStore_CapacityEviction(t *testing.T) {
	store, now := newTestStore(t, Config{TTL: time.Hour, MaxSessions: 3})

	tokens := make([]string, 0, 4)
	for i := 0; i < 4; i++ {
		token, err := store.Create(fmt.Sprintf("EMP%03d", i), "10.0.0.1")
		require.NoError(t, err)
		tokens = append(tokens, token)
		*now = now.Add(time.Minute)
	}

	// The oldest session was evicted to make room for the fourth.
	_, ok := store.Validate(tokens[0], "10.0.0.1")
	assert.False(t, ok)
	_, ok = store.Validate(tokens[3], "10.0.0.1")
	assert.True(t, ok)
}

func TestMemoryStore_CleanupExpired(t *testing.T) {
	store, now := newTestStore(t, Config{TTL: time.Hour, MaxSessions: 10})

	_, err := store.Create("EMP001", "10.0.0.1")
	require.NoError(t, err)
	*now = now.Add(30 * time.Minute)
	fresh, err := store.Create("EMP002", "10.0.0.1")
	require.NoError(t, err)

	*now = now.Add(45 * time.Minute)
	removed := store.CleanupExpired()
	assert.Equal(t, 1, removed)

	_, ok := store.Validate(fresh, "10.0.0.1")
	assert.True(t, ok)

	assert.Equal(t, 0, store.CleanupExpired(), "second cleanup is a no-op")
}
