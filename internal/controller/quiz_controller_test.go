package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"studycraft/internal/dto"
	"studycraft/internal/model"
	"studycraft/internal/repository"
	"studycraft/internal/service"
)

type stubLLM struct {
	material  string
	questions []service.GeneratedQuestion
	err       error
}

func (s *stubLLM) GenerateStudyMaterial(ctx context.Context, req dto.GenerateStudyMaterialRequest) (string, error) {
	return s.material, s.err
}

func (s *stubLLM) GenerateQuiz(ctx context.Context, req dto.GenerateQuizRequest) ([]service.GeneratedQuestion, error) {
	return s.questions, s.err
}

type stubAuth struct {
	user *model.User
}

func (s *stubAuth) CurrentUser() (*model.User, error) {
	return s.user, nil
}

// newTestRouter wires the full stack over an in-memory database, with the
// LLM stubbed out and a fixed current user.
func newTestRouter(t *testing.T, llm service.LLMService) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.StudySession{}, &model.Quiz{}, &model.QuizQuestion{}))

	user := &model.User{Username: "demo", Password: "hash"}
	require.NoError(t, db.Create(user).Error)

	generator := service.NewContentGeneratorService(llm)
	sessionService := service.NewStudySessionService(repository.NewStudySessionRepository(db), generator)
	quizService := service.NewQuizService(repository.NewQuizRepository(db), repository.NewQuizQuestionRepository(db), generator, db)
	auth := &stubAuth{user: user}

	sessionController := NewStudySessionController(sessionService, auth)
	quizController := NewQuizController(quizService, auth)

	router := gin.New()
	api := router.Group("/api")
	{
		sessions := api.Group("/study-sessions")
		{
			sessions.POST("", sessionController.CreateStudySession)
			sessions.GET("", sessionController.GetStudySessions)
			sessions.GET("/:id", sessionController.GetStudySession)
			sessions.DELETE("/:id", sessionController.DeleteStudySession)
		}
		quizzes := api.Group("/quizzes")
		{
			quizzes.GET("", quizController.GetQuizzes)
			quizzes.POST("", quizController.CreateQuiz)
			quizzes.GET("/:id", quizController.GetQuiz)
			quizzes.POST("/:id/answers", quizController.SubmitQuizAnswer)
			quizzes.GET("/:id/results", quizController.GetQuizResults)
		}
	}
	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func createTestQuiz(t *testing.T, router *gin.Engine) dto.QuizWithQuestionsResponse {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/quizzes", gin.H{
		"topic":          "Algebra",
		"difficulty":     "beginner",
		"totalQuestions": 2,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var resp dto.QuizWithQuestionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

var testQuestions = []service.GeneratedQuestion{
	{QuestionText: "What is 2 + 2?", Options: []string{"3", "4", "5", "6"}, CorrectOptionIndex: 1, Explanation: "basic addition"},
	{QuestionText: "What is 3 * 3?", Options: []string{"6", "9", "12", "27"}, CorrectOptionIndex: 1, Explanation: "basic multiplication"},
}

func TestCreateQuiz_ReturnsCreatedQuizWithQuestions(t *testing.T) {
	router, _ := newTestRouter(t, &stubLLM{questions: testQuestions})

	resp := createTestQuiz(t, router)
	assert.Equal(t, "Algebra", resp.Quiz.Topic)
	assert.Equal(t, "Mathematics", resp.Quiz.Subject)
	assert.False(t, resp.Quiz.Completed)
	require.Len(t, resp.Questions, 2)
	assert.Equal(t, "What is 2 + 2?", resp.Questions[0].QuestionText)
}

func TestCreateQuiz_InvalidBody(t *testing.T) {
	router, _ := newTestRouter(t, &stubLLM{questions: testQuestions})

	rec := doJSON(t, router, http.MethodPost, "/api/quizzes", gin.H{
		"difficulty":     "beginner",
		"totalQuestions": 2,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "Invalid request data", errResp.Message)
	assert.NotEmpty(t, errResp.Details)
}

func TestSubmitQuizAnswer_QuizIDMismatch(t *testing.T) {
	router, _ := newTestRouter(t, &stubLLM{questions: testQuestions})
	quiz := createTestQuiz(t, router)

	rec := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/quizzes/%d/answers", quiz.Quiz.ID+1), gin.H{
		"quizId":     quiz.Quiz.ID,
		"questionId": quiz.Questions[0].ID,
		"answer":     0,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "Quiz ID mismatch", errResp.Message)
}

func TestSubmitQuizAnswer_AnswerIndexZeroBinds(t *testing.T) {
	router, _ := newTestRouter(t, &stubLLM{questions: testQuestions})
	quiz := createTestQuiz(t, router)

	rec := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/quizzes/%d/answers", quiz.Quiz.ID), gin.H{
		"quizId":     quiz.Quiz.ID,
		"questionId": quiz.Questions[0].ID,
		"answer":     0,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var question dto.QuizQuestionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &question))
	require.NotNil(t, question.UserAnswer)
	assert.Equal(t, 0, *question.UserAnswer)
	require.NotNil(t, question.Correct)
	assert.False(t, *question.Correct)
}

func TestSubmitQuizAnswer_UnknownQuestion(t *testing.T) {
	router, _ := newTestRouter(t, &stubLLM{questions: testQuestions})
	quiz := createTestQuiz(t, router)

	rec := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/quizzes/%d/answers", quiz.Quiz.ID), gin.H{
		"quizId":     quiz.Quiz.ID,
		"questionId": 99999,
		"answer":     1,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestQuizResults_ScoreAfterAllAnswers(t *testing.T) {
	router, _ := newTestRouter(t, &stubLLM{questions: testQuestions})
	quiz := createTestQuiz(t, router)

	for i, q := range quiz.Questions {
		answer := 1 // correct for the first question only
		if i == 1 {
			answer = 0
		}
		rec := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/quizzes/%d/answers", quiz.Quiz.ID), gin.H{
			"quizId":     quiz.Quiz.ID,
			"questionId": q.ID,
			"answer":     answer,
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	rec := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/quizzes/%d/results", quiz.Quiz.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var results dto.QuizResultsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	assert.True(t, results.Completed)
	assert.Equal(t, 50, results.Score)
}

func TestGetQuiz_InvalidAndMissingID(t *testing.T) {
	router, _ := newTestRouter(t, &stubLLM{questions: testQuestions})

	rec := doJSON(t, router, http.MethodGet, "/api/quizzes/not-a-number", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/quizzes/424242", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStudySessionEndpoints_Lifecycle(t *testing.T) {
	router, _ := newTestRouter(t, &stubLLM{material: "# Algebra\n\nNotes."})

	rec := doJSON(t, router, http.MethodPost, "/api/study-sessions", gin.H{
		"topic":         "Algebra",
		"format":        "outline",
		"difficulty":    "beginner",
		"learningStyle": "visual",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created dto.StudySessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "# Algebra\n\nNotes.", created.Content)
	assert.Equal(t, "Mathematics", created.Subject)

	rec = doJSON(t, router, http.MethodGet, "/api/study-sessions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []dto.StudySessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/study-sessions/%d", created.ID), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/study-sessions/%d", created.ID), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/study-sessions/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateStudySession_InvalidDifficulty(t *testing.T) {
	router, _ := newTestRouter(t, &stubLLM{material: "notes"})

	rec := doJSON(t, router, http.MethodPost, "/api/study-sessions", gin.H{
		"topic":         "Algebra",
		"format":        "outline",
		"difficulty":    "expert",
		"learningStyle": "visual",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
