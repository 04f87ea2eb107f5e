// Package session holds the server-side authenticated state for
// administrators. The cookie handed to clients only carries a signed
// session ID; the record kept here stays authoritative, so destroying
// a session invalidates its cookie no matter how long the signature
// would remain valid.
package session

import (
	"crypto/hmac"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

const janitorInterval = time.Minute

type Session struct {
	Token     string
	AdminID   uint
	CSRFToken string
	ExpiresAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

type Store interface {
	Put(s Session)
	Get(token string) (Session, bool)
	Delete(token string)
	DeleteExpired(now time.Time)
}

type Manager struct {
	store Store
	ttl   time.Duration
	done  chan struct{}
}

func NewManager(store Store, ttl time.Duration) *Manager {
	m := &Manager{
		store: store,
		ttl:   ttl,
		done:  make(chan struct{}),
	}

	go m.janitor()

	return m
}

// Create issues a fresh session for the administrator, including its
// anti-forgery token.
func (m *Manager) Create(adminID uint) (Session, error) {
	token, err := randomToken(32)
	if err != nil {
		return Session{}, err
	}

	csrfToken, err := randomToken(32)
	if err != nil {
		return Session{}, err
	}

	s := Session{
		Token:     token,
		AdminID:   adminID,
		CSRFToken: csrfToken,
		ExpiresAt: time.Now().Add(m.ttl),
	}
	m.store.Put(s)

	return s, nil
}

// Get misses on unknown and on expired tokens. Expired records are
// dropped eagerly rather than waiting for the janitor.
func (m *Manager) Get(token string) (Session, bool) {
	s, ok := m.store.Get(token)
	if !ok {
		return Session{}, false
	}

	if s.Expired(time.Now()) {
		m.store.Delete(token)
		return Session{}, false
	}

	return s, true
}

func (m *Manager) Destroy(token string) {
	m.store.Delete(token)
}

// VerifyCSRF compares the presented anti-forgery token against the
// session's token in constant time.
func (m *Manager) VerifyCSRF(sessionToken, presented string) bool {
	s, ok := m.Get(sessionToken)
	if !ok {
		return false
	}

	return hmac.Equal([]byte(s.CSRFToken), []byte(presented))
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Close stops the eviction janitor.
func (m *Manager) Close() {
	close(m.done)
}

func (m *Manager) janitor() {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			m.store.DeleteExpired(now)
		case <-m.done:
			return
		}
	}
}

func randomToken(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("rand.Read -> %w", err)
	}

	return hex.EncodeToString(b), nil
}
