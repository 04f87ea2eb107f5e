package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/votekeeper/votekeeper-api/internal/api/handler/v1/response"
	"github.com/votekeeper/votekeeper-api/internal/session"
)

const (
	csrfHeader    = "X-CSRF-Token"
	csrfFormField = "_csrf"
)

var errCSRFTokenMismatch = errors.New("missing or invalid CSRF token")

// CSRF rejects state-changing requests whose anti-forgery token does
// not match the session's. Runs after RequireSession; reads and
// preflight requests pass through untouched.
func CSRF(manager *session.Manager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		switch ctx.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			ctx.Next()
			return
		}

		token := ctx.GetString(CtxSessionTokenKey)

		presented := ctx.GetHeader(csrfHeader)
		if presented == "" {
			presented = ctx.PostForm(csrfFormField)
		}

		if presented == "" || !manager.VerifyCSRF(token, presented) {
			response.RenderErr(ctx, response.ErrPermissionDenied(errCSRFTokenMismatch))
			return
		}

		ctx.Next()
	}
}
