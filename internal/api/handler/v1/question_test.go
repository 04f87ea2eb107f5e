package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/votekeeper/votekeeper-api/internal/api/middleware"
	"github.com/votekeeper/votekeeper-api/internal/domain"
	"github.com/votekeeper/votekeeper-api/internal/service"
)

// asAdmin stands in for RequireSession in handler tests.
func asAdmin(adminID uint) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(middleware.CtxAdminIDKey, adminID)
	}
}

type fakeQuestionService struct {
	addQuestion    func(ctx context.Context, electionID, adminID uint, text, description string) (domain.Question, error)
	getQuestion    func(ctx context.Context, id, adminID uint) (domain.Question, error)
	listQuestions  func(ctx context.Context, electionID, adminID uint) ([]domain.Question, error)
	updateQuestion func(ctx context.Context, id, adminID uint, text, description string) (domain.Question, error)
	deleteQuestion func(ctx context.Context, electionID, questionID, adminID uint) (bool, error)
	addOption      func(ctx context.Context, questionID, adminID uint, label string) (domain.Option, error)
	listOptions    func(ctx context.Context, questionID, adminID uint) ([]domain.Option, error)
	updateOption   func(ctx context.Context, id, adminID uint, label string) (domain.Option, error)
	deleteOption   func(ctx context.Context, id, adminID uint) (bool, error)
}

func (f *fakeQuestionService) AddQuestion(ctx context.Context, electionID, adminID uint, text, description string) (domain.Question, error) {
	return f.addQuestion(ctx, electionID, adminID, text, description)
}

func (f *fakeQuestionService) GetQuestion(ctx context.Context, id, adminID uint) (domain.Question, error) {
	return f.getQuestion(ctx, id, adminID)
}

func (f *fakeQuestionService) ListQuestions(ctx context.Context, electionID, adminID uint) ([]domain.Question, error) {
	return f.listQuestions(ctx, electionID, adminID)
}

func (f *fakeQuestionService) UpdateQuestion(ctx context.Context, id, adminID uint, text, description string) (domain.Question, error) {
	return f.updateQuestion(ctx, id, adminID, text, description)
}

func (f *fakeQuestionService) DeleteQuestion(ctx context.Context, electionID, questionID, adminID uint) (bool, error) {
	return f.deleteQuestion(ctx, electionID, questionID, adminID)
}

func (f *fakeQuestionService) AddOption(ctx context.Context, questionID, adminID uint, label string) (domain.Option, error) {
	return f.addOption(ctx, questionID, adminID, label)
}

func (f *fakeQuestionService) ListOptions(ctx context.Context, questionID, adminID uint) ([]domain.Option, error) {
	return f.listOptions(ctx, questionID, adminID)
}

func (f *fakeQuestionService) UpdateOption(ctx context.Context, id, adminID uint, label string) (domain.Option, error) {
	return f.updateOption(ctx, id, adminID, label)
}

func (f *fakeQuestionService) DeleteOption(ctx context.Context, id, adminID uint) (bool, error) {
	return f.deleteOption(ctx, id, adminID)
}

func newQuestionTestRouter(svc QuestionService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewQuestionHandler(svc)

	router := gin.New()
	router.Use(asAdmin(1))
	router.GET("/elections/:electionID/questions", handler.HandleListQuestions)
	router.POST("/elections/:electionID/questions/create", handler.HandleAddQuestion)
	router.GET("/elections/:electionID/questions/:questionID", handler.HandleGetQuestion)
	router.DELETE("/elections/:electionID/questions/:questionID", handler.HandleDeleteQuestion)

	return router
}

func TestHandleAddQuestion(t *testing.T) {
	svc := &fakeQuestionService{
		addQuestion: func(_ context.Context, electionID, adminID uint, text, description string) (domain.Question, error) {
			assert.Equal(t, uint(3), electionID)
			assert.Equal(t, uint(1), adminID)
			return domain.Question{ID: 10, Text: text, Description: description, ElectionID: electionID}, nil
		},
	}
	router := newQuestionTestRouter(svc)

	body := `{"text":"Who should lead?","description":"Pick one"}`
	req := httptest.NewRequest(http.MethodPost, "/elections/3/questions/create", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var question domain.Question
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &question))
	assert.Equal(t, uint(10), question.ID)
}

func TestHandleAddQuestion_TextTooShort(t *testing.T) {
	router := newQuestionTestRouter(&fakeQuestionService{})

	body := `{"text":"Who?"}`
	req := httptest.NewRequest(http.MethodPost, "/elections/3/questions/create", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetQuestion(t *testing.T) {
	svc := &fakeQuestionService{
		getQuestion: func(_ context.Context, id, _ uint) (domain.Question, error) {
			return domain.Question{ID: id, Text: "Who should lead?", ElectionID: 3}, nil
		},
		listOptions: func(_ context.Context, questionID, _ uint) ([]domain.Option, error) {
			return []domain.Option{{ID: 1, Label: "Candidate A", QuestionID: questionID}}, nil
		},
	}
	router := newQuestionTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/elections/3/questions/10", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Question domain.Question `json:"question"`
		Options  []domain.Option `json:"options"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint(10), resp.Question.ID)
	require.Len(t, resp.Options, 1)
	assert.Equal(t, "Candidate A", resp.Options[0].Label)
}

func TestHandleGetQuestion_NotOwned(t *testing.T) {
	svc := &fakeQuestionService{
		getQuestion: func(_ context.Context, _, _ uint) (domain.Question, error) {
			return domain.Question{}, service.ErrQuestionNotFound
		},
	}
	router := newQuestionTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/elections/3/questions/10", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandleDeleteQuestion(t *testing.T) {
	svc := &fakeQuestionService{
		deleteQuestion: func(_ context.Context, _, _, _ uint) (bool, error) {
			return true, nil
		},
	}
	router := newQuestionTestRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/elections/3/questions/10", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestHandleDeleteQuestion_LastQuestionRefused(t *testing.T) {
	svc := &fakeQuestionService{
		deleteQuestion: func(_ context.Context, _, _, _ uint) (bool, error) {
			return false, service.ErrMinimumQuestions
		},
	}
	router := newQuestionTestRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/elections/3/questions/10", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// The guard is not an error condition for the client, just a refusal.
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":false}`, rec.Body.String())
}

func TestHandleDeleteQuestion_BadElectionID(t *testing.T) {
	router := newQuestionTestRouter(&fakeQuestionService{})

	req := httptest.NewRequest(http.MethodDelete, "/elections/abc/questions/10", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleListQuestions_UnknownElection(t *testing.T) {
	svc := &fakeQuestionService{
		listQuestions: func(_ context.Context, _, _ uint) ([]domain.Question, error) {
			return nil, service.ErrElectionNotFound
		},
	}
	router := newQuestionTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/elections/99/questions", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
