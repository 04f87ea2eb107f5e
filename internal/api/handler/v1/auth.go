package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/votekeeper/votekeeper-api/internal/api/handler/v1/request"
	"github.com/votekeeper/votekeeper-api/internal/api/handler/v1/response"
	"github.com/votekeeper/votekeeper-api/internal/api/middleware"
	"github.com/votekeeper/votekeeper-api/internal/config"
	"github.com/votekeeper/votekeeper-api/internal/domain"
	"github.com/votekeeper/votekeeper-api/internal/service"
	"github.com/votekeeper/votekeeper-api/internal/session"
)

// Clients always see one generic message for bad credentials; the
// distinct sentinels stay internal.
var errInvalidCredentials = errors.New("invalid email or password")

type AuthService interface {
	Signup(ctx context.Context, admin domain.Administrator) (domain.Administrator, error)
	Login(ctx context.Context, email, password string) (domain.Administrator, error)
	ResetPassword(ctx context.Context, adminID uint, oldPassword, newPassword string) error
}

type AuthHandler struct {
	conf     *config.SessionConfig
	svc      AuthService
	sessions *session.Manager
	codec    *session.CookieCodec
}

func NewAuthHandler(conf *config.SessionConfig, svc AuthService, sessions *session.Manager, codec *session.CookieCodec) *AuthHandler {
	return &AuthHandler{
		conf:     conf,
		svc:      svc,
		sessions: sessions,
		codec:    codec,
	}
}

// HandleSignup godoc
// @Summary      Create an administrator account and log it in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request   body      request.SignupRequest true "request body"
// @Success      201      {object}   response.SessionResponse
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin [post]
func (h *AuthHandler) HandleSignup(ctx *gin.Context) {
	var req request.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		renderValidationErr(ctx, "/signup", err)
		return
	}

	admin, err := h.svc.Signup(ctx.Request.Context(), domain.Administrator{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrAdminEmailExists) {
			renderValidationErr(ctx, "/signup", service.ErrAdminEmailExists)
			return
		}
		if errors.Is(err, service.ErrPasswordTooShort) {
			renderValidationErr(ctx, "/signup", service.ErrPasswordTooShort)
			return
		}

		err = fmt.Errorf("v1.HandleSignup -> h.svc.Signup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	sess, err := h.establishSession(ctx, admin.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleSignup -> h.establishSession -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	if middleware.AcceptsHTML(ctx) {
		ctx.Redirect(http.StatusSeeOther, "/elections")
		return
	}

	ctx.JSON(http.StatusCreated, response.SessionResponse{
		Admin:     admin,
		CSRFToken: sess.CSRFToken,
	})
}

// HandleLogin godoc
// @Summary      Authenticate an administrator and establish a session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.SessionResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /session [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		renderValidationErr(ctx, middleware.LoginPath, err)

		return
	}

	admin, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAdminNotFound) || errors.Is(err, service.ErrWrongPassword) {
			if middleware.AcceptsHTML(ctx) {
				ctx.Redirect(http.StatusSeeOther, middleware.LoginPath)
				return
			}
			response.RenderErr(ctx, response.ErrWrongCredentials(errInvalidCredentials))

			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	sess, err := h.establishSession(ctx, admin.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> h.establishSession -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	if middleware.AcceptsHTML(ctx) {
		ctx.Redirect(http.StatusSeeOther, "/elections")
		return
	}

	ctx.JSON(http.StatusOK, response.SessionResponse{
		Admin:     admin,
		CSRFToken: sess.CSRFToken,
	})
}

// HandleLoginPage godoc
// @Summary      Login entry point for unauthenticated clients
// @Description  Browser clients are redirected here when no valid session exists. The page itself is rendered by the frontend; API clients get a hint to POST /session.
// @Tags         auth
// @Produce      json
// @Success      200 {object} response.SuccessResponse
// @Router       /login [get]
func (h *AuthHandler) HandleLoginPage(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "POST /session with email and password to authenticate"})
}

// HandleSignout godoc
// @Summary      Destroy the current session
// @Tags         auth
// @Produce      json
// @Success      200 {object} response.SuccessResponse
// @Failure      401 {object} response.Err
// @Router       /signout [get]
// @Security SessionCookie
func (h *AuthHandler) HandleSignout(ctx *gin.Context) {
	token := ctx.GetString(middleware.CtxSessionTokenKey)
	h.sessions.Destroy(token)

	ctx.SetCookie(h.conf.CookieName, "", -1, "/", "", h.conf.SecureCookie, true)

	if middleware.AcceptsHTML(ctx) {
		ctx.Redirect(http.StatusSeeOther, "/")
		return
	}

	ctx.JSON(http.StatusOK, response.SuccessResponse{Success: true})
}

// HandleResetPassword godoc
// @Summary      Change the administrator's password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request   body      request.ResetPasswordRequest true "request body"
// @Success      200      {object}   response.SuccessResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /password-reset [post]
// @Security SessionCookie
func (h *AuthHandler) HandleResetPassword(ctx *gin.Context) {
	adminID, respErr := adminIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		renderValidationErr(ctx, "/password-reset", err)
		return
	}

	err := h.svc.ResetPassword(ctx.Request.Context(), adminID, req.OldPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, service.ErrWrongPassword) {
			renderValidationErr(ctx, "/password-reset", errors.New("old password does not match"))
			return
		}
		if errors.Is(err, service.ErrPasswordTooShort) {
			renderValidationErr(ctx, "/password-reset", service.ErrPasswordTooShort)
			return
		}

		err = fmt.Errorf("v1.HandleResetPassword -> h.svc.ResetPassword -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	if middleware.AcceptsHTML(ctx) {
		ctx.Redirect(http.StatusSeeOther, "/elections")
		return
	}

	ctx.JSON(http.StatusOK, response.SuccessResponse{Success: true})
}

func (h *AuthHandler) establishSession(ctx *gin.Context, adminID uint) (session.Session, error) {
	sess, err := h.sessions.Create(adminID)
	if err != nil {
		return session.Session{}, err
	}

	cookie, err := h.codec.Encode(sess.Token, sess.ExpiresAt)
	if err != nil {
		return session.Session{}, err
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(h.conf.CookieName, cookie, int(h.sessions.TTL().Seconds()), "/", "", h.conf.SecureCookie, true)

	return sess, nil
}
