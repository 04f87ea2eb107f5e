package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/votekeeper/votekeeper-api/internal/session"
)

const testCookieName = "votekeeper_session"

func newAuthTestRouter(t *testing.T) (*gin.Engine, *session.Manager, *session.CookieCodec) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	manager := session.NewManager(session.NewMemoryStore(), time.Hour)
	t.Cleanup(manager.Close)

	codec := session.NewCookieCodec("test-signing-key")
	authenticator := NewAuthenticator(manager, codec, testCookieName)

	router := gin.New()
	router.GET("/protected", authenticator.RequireSession(), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"admin_id": ctx.GetUint(CtxAdminIDKey),
		})
	})

	return router, manager, codec
}

func sessionCookie(t *testing.T, manager *session.Manager, codec *session.CookieCodec, adminID uint) (*http.Cookie, session.Session) {
	t.Helper()

	sess, err := manager.Create(adminID)
	require.NoError(t, err)

	value, err := codec.Encode(sess.Token, sess.ExpiresAt)
	require.NoError(t, err)

	return &http.Cookie{Name: testCookieName, Value: value}, sess
}

func TestRequireSession_NoCookie(t *testing.T) {
	router, _, _ := newAuthTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireSession_NoCookieHTMLClientRedirects(t *testing.T) {
	router, _, _ := newAuthTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, LoginPath, rec.Header().Get("Location"))
}

func TestRequireSession_ValidCookie(t *testing.T) {
	router, manager, codec := newAuthTestRouter(t)

	cookie, _ := sessionCookie(t, manager, codec, 42)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"admin_id":42}`, rec.Body.String())
}

func TestRequireSession_TamperedCookie(t *testing.T) {
	router, manager, codec := newAuthTestRouter(t)

	cookie, _ := sessionCookie(t, manager, codec, 42)
	cookie.Value += "x"

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireSession_DestroyedSession(t *testing.T) {
	router, manager, codec := newAuthTestRouter(t)

	cookie, sess := sessionCookie(t, manager, codec, 42)
	manager.Destroy(sess.Token)

	// The cookie signature is still valid, but the server-side record
	// is gone, so the request must be rejected.
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
