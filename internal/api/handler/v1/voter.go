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
	"github.com/votekeeper/votekeeper-api/internal/domain"
	"github.com/votekeeper/votekeeper-api/internal/service"
)

type VoterService interface {
	Create(ctx context.Context, electionID, adminID uint, voterID, password string) (domain.Voter, error)
	List(ctx context.Context, electionID, adminID uint) ([]domain.Voter, error)
	Delete(ctx context.Context, electionID, voterID, adminID uint) (bool, error)
	ResetPassword(ctx context.Context, electionID, voterID, adminID uint, newPassword string) error
}

type VoterHandler struct {
	svc VoterService
}

func NewVoterHandler(svc VoterService) *VoterHandler {
	return &VoterHandler{
		svc: svc,
	}
}

// HandleListVoters godoc
// @Summary      List an election's voters
// @Tags         voters
// @Produce      json
// @Param        electionID  path      int  true  "Election ID"
// @Success      200  {object}  response.ListVotersResponse
// @Failure      401  {object}  response.Err
// @Failure      422  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /elections/{electionID}/voters [get]
// @Security SessionCookie
func (h *VoterHandler) HandleListVoters(ctx *gin.Context) {
	adminID, respErr := adminIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	electionID, respErr := parseUintParam(ctx, "electionID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	voters, err := h.svc.List(ctx.Request.Context(), electionID, adminID)
	if err != nil {
		if errors.Is(err, service.ErrElectionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("election", "ID", electionID))
			return
		}

		err = fmt.Errorf("v1.HandleListVoters -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.ListVotersResponse{Voters: voters})
}

// HandleCreateVoter godoc
// @Summary      Register a voter for an election
// @Tags         voters
// @Accept       json
// @Produce      json
// @Param        electionID  path      int  true  "Election ID"
// @Param        request     body      request.CreateVoterRequest true "request body"
// @Success      201  {object}  domain.Voter
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      422  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /elections/{electionID}/voters/create [post]
// @Security SessionCookie
func (h *VoterHandler) HandleCreateVoter(ctx *gin.Context) {
	adminID, respErr := adminIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	electionID, respErr := parseUintParam(ctx, "electionID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	formPath := fmt.Sprintf("/elections/%v/voters/create", electionID)

	var req request.CreateVoterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		renderValidationErr(ctx, formPath, err)
		return
	}

	voter, err := h.svc.Create(ctx.Request.Context(), electionID, adminID, req.VoterID, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVoterFieldsRequired):
			renderValidationErr(ctx, formPath, service.ErrVoterFieldsRequired)
		case errors.Is(err, service.ErrVoterIDExists):
			renderValidationErr(ctx, formPath, service.ErrVoterIDExists)
		case errors.Is(err, service.ErrElectionNotFound):
			response.RenderErr(ctx, response.ErrNotFound("election", "ID", electionID))
		default:
			err = fmt.Errorf("v1.HandleCreateVoter -> h.svc.Create -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	if middleware.AcceptsHTML(ctx) {
		ctx.Redirect(http.StatusSeeOther, fmt.Sprintf("/elections/%v/voters", electionID))
		return
	}

	ctx.JSON(http.StatusCreated, voter)
}

// HandleDeleteVoter godoc
// @Summary      Delete a voter
// @Tags         voters
// @Produce      json
// @Param        electionID  path      int  true  "Election ID"
// @Param        voterID     path      int  true  "Voter ID"
// @Success      200  {object}  response.SuccessResponse
// @Failure      401  {object}  response.Err
// @Failure      422  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /elections/{electionID}/voters/{voterID} [delete]
// @Security SessionCookie
func (h *VoterHandler) HandleDeleteVoter(ctx *gin.Context) {
	adminID, respErr := adminIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	electionID, respErr := parseUintParam(ctx, "electionID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	voterID, respErr := parseUintParam(ctx, "voterID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	deleted, err := h.svc.Delete(ctx.Request.Context(), electionID, voterID, adminID)
	if err != nil {
		if errors.Is(err, service.ErrElectionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("election", "ID", electionID))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteVoter -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.SuccessResponse{Success: deleted})
}

// HandleResetVoterPassword godoc
// @Summary      Reset a voter's password
// @Tags         voters
// @Accept       json
// @Produce      json
// @Param        electionID  path      int  true  "Election ID"
// @Param        voterID     path      int  true  "Voter ID"
// @Param        request     body      request.ResetVoterPasswordRequest true "request body"
// @Success      200  {object}  response.SuccessResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      422  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /elections/{electionID}/voters/{voterID}/edit [post]
// @Security SessionCookie
func (h *VoterHandler) HandleResetVoterPassword(ctx *gin.Context) {
	adminID, respErr := adminIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	electionID, respErr := parseUintParam(ctx, "electionID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	voterID, respErr := parseUintParam(ctx, "voterID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	formPath := fmt.Sprintf("/elections/%v/voters/%v/edit", electionID, voterID)

	var req request.ResetVoterPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		renderValidationErr(ctx, formPath, err)
		return
	}

	err := h.svc.ResetPassword(ctx.Request.Context(), electionID, voterID, adminID, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordTooShort):
			renderValidationErr(ctx, formPath, service.ErrPasswordTooShort)
		case errors.Is(err, service.ErrVoterNotFound):
			response.RenderErr(ctx, response.ErrNotFound("voter", "ID", voterID))
		case errors.Is(err, service.ErrElectionNotFound):
			response.RenderErr(ctx, response.ErrNotFound("election", "ID", electionID))
		default:
			err = fmt.Errorf("v1.HandleResetVoterPassword -> h.svc.ResetPassword -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	if middleware.AcceptsHTML(ctx) {
		ctx.Redirect(http.StatusSeeOther, fmt.Sprintf("/elections/%v/voters", electionID))
		return
	}

	ctx.JSON(http.StatusOK, response.SuccessResponse{Success: true})
}
