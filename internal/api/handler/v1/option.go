package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/votekeeper/votekeeper-api/internal/api/handler/v1/request"
	"github.com/votekeeper/votekeeper-api/internal/api/handler/v1/response"
	"github.com/votekeeper/votekeeper-api/internal/api/middleware"
	"github.com/votekeeper/votekeeper-api/internal/service"
)

// HandleAddOption godoc
// @Summary      Add an option to a question
// @Tags         options
// @Accept       json
// @Produce      json
// @Param        electionID  path      int  true  "Election ID"
// @Param        questionID  path      int  true  "Question ID"
// @Param        request     body      request.AddOptionRequest true "request body"
// @Success      201  {object}  domain.Option
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      422  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /elections/{electionID}/questions/{questionID} [post]
// @Security SessionCookie
func (h *QuestionHandler) HandleAddOption(ctx *gin.Context) {
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

	questionID, respErr := parseUintParam(ctx, "questionID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	questionPath := fmt.Sprintf("/elections/%v/questions/%v", electionID, questionID)

	var req request.AddOptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		renderValidationErr(ctx, questionPath, err)
		return
	}

	option, err := h.svc.AddOption(ctx.Request.Context(), questionID, adminID, req.Label)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOptionLabelEmpty):
			renderValidationErr(ctx, questionPath, service.ErrOptionLabelEmpty)
		case errors.Is(err, service.ErrQuestionNotFound):
			response.RenderErr(ctx, response.ErrNotFound("question", "ID", questionID))
		default:
			err = fmt.Errorf("v1.HandleAddOption -> h.svc.AddOption -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	if middleware.AcceptsHTML(ctx) {
		ctx.Redirect(http.StatusSeeOther, questionPath)
		return
	}

	ctx.JSON(http.StatusCreated, option)
}

// HandleUpdateOption godoc
// @Summary      Update an option's label
// @Tags         options
// @Accept       json
// @Produce      json
// @Param        optionID  path      int  true  "Option ID"
// @Param        request   body      request.UpdateOptionRequest true "request body"
// @Success      200  {object}  domain.Option
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      422  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /options/{optionID}/edit [put]
// @Security SessionCookie
func (h *QuestionHandler) HandleUpdateOption(ctx *gin.Context) {
	adminID, respErr := adminIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	optionID, respErr := parseUintParam(ctx, "optionID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateOptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	option, err := h.svc.UpdateOption(ctx.Request.Context(), optionID, adminID, req.Label)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOptionLabelEmpty):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrOptionLabelEmpty))
		case errors.Is(err, service.ErrOptionNotFound):
			response.RenderErr(ctx, response.ErrNotFound("option", "ID", optionID))
		default:
			err = fmt.Errorf("v1.HandleUpdateOption -> h.svc.UpdateOption -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, option)
}

// HandleDeleteOption godoc
// @Summary      Delete an option
// @Tags         options
// @Produce      json
// @Param        optionID  path      int  true  "Option ID"
// @Success      200  {object}  response.SuccessResponse
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /options/{optionID} [delete]
// @Security SessionCookie
func (h *QuestionHandler) HandleDeleteOption(ctx *gin.Context) {
	adminID, respErr := adminIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	optionID, respErr := parseUintParam(ctx, "optionID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	deleted, err := h.svc.DeleteOption(ctx.Request.Context(), optionID, adminID)
	if err != nil {
		err = fmt.Errorf("v1.HandleDeleteOption -> h.svc.DeleteOption -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.SuccessResponse{Success: deleted})
}
