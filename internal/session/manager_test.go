package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_CreateAndGet(t *testing.T) {
	m := NewManager(NewMemoryStore(), time.Hour)
	defer m.Close()

	sess, err := m.Create(42)
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
	assert.NotEmpty(t, sess.CSRFToken)
	assert.NotEqual(t, sess.Token, sess.CSRFToken)
	assert.Equal(t, uint(42), sess.AdminID)

	got, ok := m.Get(sess.Token)
	require.True(t, ok)
	assert.Equal(t, sess.AdminID, got.AdminID)
	assert.Equal(t, sess.CSRFToken, got.CSRFToken)
}

func TestManager_GetUnknownToken(t *testing.T) {
	m := NewManager(NewMemoryStore(), time.Hour)
	defer m.Close()

	_, ok := m.Get("no-such-token")
	assert.False(t, ok)
}

func TestManager_TokensAreUnique(t *testing.T) {
	m := NewManager(NewMemoryStore(), time.Hour)
	defer m.Close()

	first, err := m.Create(1)
	require.NoError(t, err)
	second, err := m.Create(1)
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
	assert.NotEqual(t, first.CSRFToken, second.CSRFToken)
}

func TestManager_Destroy(t *testing.T) {
	m := NewManager(NewMemoryStore(), time.Hour)
	defer m.Close()

	sess, err := m.Create(7)
	require.NoError(t, err)

	m.Destroy(sess.Token)

	_, ok := m.Get(sess.Token)
	assert.False(t, ok)
}

func TestManager_ExpiredSessionIsDropped(t *testing.T) {
	store := NewMemoryStore()
	m := NewManager(store, time.Hour)
	defer m.Close()

	store.Put(Session{
		Token:     "stale",
		AdminID:   9,
		CSRFToken: "csrf",
		ExpiresAt: time.Now().Add(-time.Minute),
	})

	_, ok := m.Get("stale")
	assert.False(t, ok)

	// The eager delete removes the record from the store itself.
	_, ok = store.Get("stale")
	assert.False(t, ok)
}

func TestManager_VerifyCSRF(t *testing.T) {
	m := NewManager(NewMemoryStore(), time.Hour)
	defer m.Close()

	sess, err := m.Create(3)
	require.NoError(t, err)

	assert.True(t, m.VerifyCSRF(sess.Token, sess.CSRFToken))
	assert.False(t, m.VerifyCSRF(sess.Token, "forged"))
	assert.False(t, m.VerifyCSRF(sess.Token, ""))
	assert.False(t, m.VerifyCSRF("unknown-session", sess.CSRFToken))
}

func TestMemoryStore_DeleteExpired(t *testing.T) {
	store := NewMemoryStore()
	now := time.Now()

	store.Put(Session{Token: "live", ExpiresAt: now.Add(time.Hour)})
	store.Put(Session{Token: "dead", ExpiresAt: now.Add(-time.Hour)})

	store.DeleteExpired(now)

	_, ok := store.Get("live")
	assert.True(t, ok)
	_, ok = store.Get("dead")
	assert.False(t, ok)
}
