package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/votekeeper/votekeeper-api/internal/api/handler/v1/response"
	"github.com/votekeeper/votekeeper-api/internal/session"
)

// Context keys set by the authenticator for downstream handlers.
const (
	CtxAdminIDKey      = "adminID"
	CtxSessionTokenKey = "sessionToken"
)

// LoginPath is where unauthenticated HTML clients are sent.
const LoginPath = "/login"

type Authenticator struct {
	manager    *session.Manager
	codec      *session.CookieCodec
	cookieName string
}

func NewAuthenticator(manager *session.Manager, codec *session.CookieCodec, cookieName string) *Authenticator {
	return &Authenticator{
		manager:    manager,
		codec:      codec,
		cookieName: cookieName,
	}
}

// RequireSession gates every management route. It decodes the signed
// cookie, resolves the server-side session, and injects the
// administrator's ID into the request context. Unauthenticated HTML
// clients are redirected to the login page; API clients get 401.
func (a *Authenticator) RequireSession() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		cookie, err := ctx.Cookie(a.cookieName)
		if err != nil {
			a.reject(ctx)
			return
		}

		token, err := a.codec.Decode(cookie)
		if err != nil {
			a.reject(ctx)
			return
		}

		sess, ok := a.manager.Get(token)
		if !ok {
			a.reject(ctx)
			return
		}

		ctx.Set(CtxAdminIDKey, sess.AdminID)
		ctx.Set(CtxSessionTokenKey, sess.Token)

		ctx.Next()
	}
}

func (a *Authenticator) reject(ctx *gin.Context) {
	if AcceptsHTML(ctx) {
		ctx.Redirect(http.StatusFound, LoginPath)
		ctx.Abort()
		return
	}

	response.RenderErr(ctx, response.ErrUnauthenticated())
}

// AcceptsHTML reports whether the client prefers a rendered page over
// JSON. Browser form posts send text/html in Accept; API clients do not.
func AcceptsHTML(ctx *gin.Context) bool {
	return strings.Contains(ctx.GetHeader("Accept"), "text/html")
}
