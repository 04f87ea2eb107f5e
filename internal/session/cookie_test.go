package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookieCodec_RoundTrip(t *testing.T) {
	codec := NewCookieCodec("test-signing-key")

	cookie, err := codec.Encode("session-id-123", time.Now().Add(time.Hour))
	require.NoError(t, err)

	sid, err := codec.Decode(cookie)
	require.NoError(t, err)
	assert.Equal(t, "session-id-123", sid)
}

func TestCookieCodec_RejectsExpired(t *testing.T) {
	codec := NewCookieCodec("test-signing-key")

	cookie, err := codec.Encode("session-id-123", time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = codec.Decode(cookie)
	assert.ErrorIs(t, err, ErrInvalidCookie)
}

func TestCookieCodec_RejectsWrongKey(t *testing.T) {
	codec := NewCookieCodec("test-signing-key")
	other := NewCookieCodec("another-key")

	cookie, err := codec.Encode("session-id-123", time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = other.Decode(cookie)
	assert.ErrorIs(t, err, ErrInvalidCookie)
}

func TestCookieCodec_RejectsTamperedValue(t *testing.T) {
	codec := NewCookieCodec("test-signing-key")

	cookie, err := codec.Encode("session-id-123", time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = codec.Decode(cookie + "x")
	assert.ErrorIs(t, err, ErrInvalidCookie)
}

func TestCookieCodec_RejectsGarbage(t *testing.T) {
	codec := NewCookieCodec("test-signing-key")

	for _, value := range []string{"", "not-a-token", "a.b.c"} {
		_, err := codec.Decode(value)
		assert.ErrorIs(t, err, ErrInvalidCookie)
	}
}
