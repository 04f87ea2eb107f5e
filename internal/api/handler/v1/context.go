package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/votekeeper/votekeeper-api/internal/api/handler/v1/response"
	"github.com/votekeeper/votekeeper-api/internal/api/middleware"
)

func adminIDFromContext(ctx *gin.Context) (uint, *response.Err) {
	v, exists := ctx.Get(middleware.CtxAdminIDKey)
	if !exists {
		return 0, response.ErrUnauthenticated()
	}

	id, ok := v.(uint)
	if !ok {
		return 0, response.ErrUnauthenticated()
	}

	return id, nil
}

func parseUintParam(ctx *gin.Context, name string) (uint, *response.Err) {
	raw := ctx.Param(name)

	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, response.ErrBadRequest(fmt.Errorf("invalid %v %q", name, raw))
	}

	return uint(parsed), nil
}

// renderValidationErr bounces HTML clients back to the originating
// form; API clients get a 400.
func renderValidationErr(ctx *gin.Context, formPath string, err error) {
	if middleware.AcceptsHTML(ctx) {
		ctx.Redirect(http.StatusSeeOther, formPath)
		ctx.Abort()
		return
	}

	response.RenderErr(ctx, response.ErrBadRequest(err))
}
