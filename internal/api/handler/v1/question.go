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

type QuestionService interface {
	AddQuestion(ctx context.Context, electionID, adminID uint, text, description string) (domain.Question, error)
	GetQuestion(ctx context.Context, id, adminID uint) (domain.Question, error)
	ListQuestions(ctx context.Context, electionID, adminID uint) ([]domain.Question, error)
	UpdateQuestion(ctx context.Context, id, adminID uint, text, description string) (domain.Question, error)
	DeleteQuestion(ctx context.Context, electionID, questionID, adminID uint) (bool, error)
	AddOption(ctx context.Context, questionID, adminID uint, label string) (domain.Option, error)
	ListOptions(ctx context.Context, questionID, adminID uint) ([]domain.Option, error)
	UpdateOption(ctx context.Context, id, adminID uint, label string) (domain.Option, error)
	DeleteOption(ctx context.Context, id, adminID uint) (bool, error)
}

type QuestionHandler struct {
	svc QuestionService
}

func NewQuestionHandler(svc QuestionService) *QuestionHandler {
	return &QuestionHandler{
		svc: svc,
	}
}

// HandleListQuestions godoc
// @Summary      List an election's questions
// @Tags         questions
// @Produce      json
// @Param        electionID  path      int  true  "Election ID"
// @Success      200  {object}  response.ListQuestionsResponse
// @Failure      401  {object}  response.Err
// @Failure      422  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /elections/{electionID}/questions [get]
// @Security SessionCookie
func (h *QuestionHandler) HandleListQuestions(ctx *gin.Context) {
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

	questions, err := h.svc.ListQuestions(ctx.Request.Context(), electionID, adminID)
	if err != nil {
		if errors.Is(err, service.ErrElectionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("election", "ID", electionID))
			return
		}

		err = fmt.Errorf("v1.HandleListQuestions -> h.svc.ListQuestions -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.ListQuestionsResponse{Questions: questions})
}

// HandleAddQuestion godoc
// @Summary      Add a question to an election
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        electionID  path      int  true  "Election ID"
// @Param        request     body      request.AddQuestionRequest true "request body"
// @Success      201  {object}  domain.Question
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      422  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /elections/{electionID}/questions/create [post]
// @Security SessionCookie
func (h *QuestionHandler) HandleAddQuestion(ctx *gin.Context) {
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

	formPath := fmt.Sprintf("/elections/%v/questions/create", electionID)

	var req request.AddQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		renderValidationErr(ctx, formPath, err)
		return
	}

	question, err := h.svc.AddQuestion(ctx.Request.Context(), electionID, adminID, req.Text, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuestionTextTooShort):
			renderValidationErr(ctx, formPath, service.ErrQuestionTextTooShort)
		case errors.Is(err, service.ErrElectionNotFound):
			response.RenderErr(ctx, response.ErrNotFound("election", "ID", electionID))
		default:
			err = fmt.Errorf("v1.HandleAddQuestion -> h.svc.AddQuestion -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	if middleware.AcceptsHTML(ctx) {
		ctx.Redirect(http.StatusSeeOther, fmt.Sprintf("/elections/%v/questions/%v", electionID, question.ID))
		return
	}

	ctx.JSON(http.StatusCreated, question)
}

// HandleGetQuestion godoc
// @Summary      Get a question with its options
// @Tags         questions
// @Produce      json
// @Param        electionID  path      int  true  "Election ID"
// @Param        questionID  path      int  true  "Question ID"
// @Success      200  {object}  response.QuestionResponse
// @Failure      401  {object}  response.Err
// @Failure      422  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /elections/{electionID}/questions/{questionID} [get]
// @Security SessionCookie
func (h *QuestionHandler) HandleGetQuestion(ctx *gin.Context) {
	adminID, respErr := adminIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	questionID, respErr := parseUintParam(ctx, "questionID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	question, err := h.svc.GetQuestion(ctx.Request.Context(), questionID, adminID)
	if err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("question", "ID", questionID))
			return
		}

		err = fmt.Errorf("v1.HandleGetQuestion -> h.svc.GetQuestion -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	options, err := h.svc.ListOptions(ctx.Request.Context(), questionID, adminID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetQuestion -> h.svc.ListOptions -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.QuestionResponse{
		Question: question,
		Options:  options,
	})
}

// HandleUpdateQuestion godoc
// @Summary      Update a question's text and description
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        questionID  path      int  true  "Question ID"
// @Param        request     body      request.UpdateQuestionRequest true "request body"
// @Success      200  {object}  domain.Question
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      422  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /questions/{questionID}/edit [put]
// @Security SessionCookie
func (h *QuestionHandler) HandleUpdateQuestion(ctx *gin.Context) {
	adminID, respErr := adminIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	questionID, respErr := parseUintParam(ctx, "questionID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	question, err := h.svc.UpdateQuestion(ctx.Request.Context(), questionID, adminID, req.Text, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuestionTextTooShort):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrQuestionTextTooShort))
		case errors.Is(err, service.ErrQuestionNotFound):
			response.RenderErr(ctx, response.ErrNotFound("question", "ID", questionID))
		default:
			err = fmt.Errorf("v1.HandleUpdateQuestion -> h.svc.UpdateQuestion -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, question)
}

// HandleDeleteQuestion godoc
// @Summary      Delete a question
// @Description  Deletion is rejected when it would leave the election without questions; that case responds success=false with no mutation.
// @Tags         questions
// @Produce      json
// @Param        electionID  path      int  true  "Election ID"
// @Param        questionID  path      int  true  "Question ID"
// @Success      200  {object}  response.SuccessResponse
// @Failure      401  {object}  response.Err
// @Failure      422  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /elections/{electionID}/questions/{questionID} [delete]
// @Security SessionCookie
func (h *QuestionHandler) HandleDeleteQuestion(ctx *gin.Context) {
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

	deleted, err := h.svc.DeleteQuestion(ctx.Request.Context(), electionID, questionID, adminID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMinimumQuestions):
			ctx.JSON(http.StatusOK, response.SuccessResponse{Success: false})
		case errors.Is(err, service.ErrElectionNotFound):
			response.RenderErr(ctx, response.ErrNotFound("election", "ID", electionID))
		default:
			err = fmt.Errorf("v1.HandleDeleteQuestion -> h.svc.DeleteQuestion -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.SuccessResponse{Success: deleted})
}
