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

type ElectionService interface {
	Create(ctx context.Context, name string, adminID uint) (domain.Election, error)
	List(ctx context.Context, adminID uint) ([]domain.Election, error)
	Overview(ctx context.Context, id, adminID uint) (domain.ElectionOverview, error)
}

type ElectionHandler struct {
	svc ElectionService
}

func NewElectionHandler(svc ElectionService) *ElectionHandler {
	return &ElectionHandler{
		svc: svc,
	}
}

// HandleListElections godoc
// @Summary      List the authenticated administrator's elections
// @Tags         elections
// @Produce      json
// @Success      200  {object}  response.ListElectionsResponse
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /elections [get]
// @Security SessionCookie
func (h *ElectionHandler) HandleListElections(ctx *gin.Context) {
	adminID, respErr := adminIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	elections, err := h.svc.List(ctx.Request.Context(), adminID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListElections -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.ListElectionsResponse{Elections: elections})
}

// HandleCreateElection godoc
// @Summary      Create an election
// @Tags         elections
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateElectionRequest true "request body"
// @Success      201      {object}  domain.Election
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /elections [post]
// @Security SessionCookie
func (h *ElectionHandler) HandleCreateElection(ctx *gin.Context) {
	adminID, respErr := adminIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateElectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		renderValidationErr(ctx, "/elections/create", err)
		return
	}

	election, err := h.svc.Create(ctx.Request.Context(), req.Name, adminID)
	if err != nil {
		if errors.Is(err, service.ErrElectionNameTooShort) {
			renderValidationErr(ctx, "/elections/create", service.ErrElectionNameTooShort)
			return
		}

		err = fmt.Errorf("v1.HandleCreateElection -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	if middleware.AcceptsHTML(ctx) {
		ctx.Redirect(http.StatusSeeOther, "/elections")
		return
	}

	ctx.JSON(http.StatusCreated, election)
}

// HandleGetElection godoc
// @Summary      Get an election with its question and voter counts
// @Tags         elections
// @Produce      json
// @Param        electionID  path      int  true  "Election ID"
// @Success      200  {object}  domain.ElectionOverview
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      422  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /elections/{electionID} [get]
// @Security SessionCookie
func (h *ElectionHandler) HandleGetElection(ctx *gin.Context) {
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

	overview, err := h.svc.Overview(ctx.Request.Context(), electionID, adminID)
	if err != nil {
		if errors.Is(err, service.ErrElectionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("election", "ID", electionID))
			return
		}

		err = fmt.Errorf("v1.HandleGetElection -> h.svc.Overview -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, overview)
}
