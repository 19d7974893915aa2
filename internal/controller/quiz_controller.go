package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"studycraft/internal/dto"
	"studycraft/internal/service"
)

type QuizController struct {
	quizService service.QuizService
	authService service.AuthService
}

func NewQuizController(quizService service.QuizService, authService service.AuthService) *QuizController {
	return &QuizController{quizService: quizService, authService: authService}
}

// GetQuizzes godoc
// @Summary List the current user's quizzes
// @Description Quizzes are ordered by most recently created first.
// @Tags Quizzes
// @Produce json
// @Success 200 {array} dto.QuizResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes [get]
func (c *QuizController) GetQuizzes(ctx *gin.Context) {
	user, err := c.authService.CurrentUser()
	if err != nil {
		log.Error().Err(err).Msg("GetQuizzes: could not resolve current user")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch quizzes"})
		return
	}

	quizzes, err := c.quizService.GetAllForUser(user.ID)
	if err != nil {
		log.Error().Err(err).Msg("GetQuizzes: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch quizzes"})
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// CreateQuiz godoc
// @Summary Generate a quiz and store it with its questions
// @Description Generates multiple-choice questions for the topic (fallback questions on LLM failure) and persists the quiz for the current user.
// @Tags Quizzes
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuizRequest true "Generation parameters"
// @Success 201 {object} dto.QuizWithQuestionsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	var req dto.GenerateQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateQuiz: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request data", Details: []string{err.Error()}})
		return
	}

	user, err := c.authService.CurrentUser()
	if err != nil {
		log.Error().Err(err).Msg("CreateQuiz: could not resolve current user")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create quiz"})
		return
	}

	quiz, err := c.quizService.Create(ctx.Request.Context(), user.ID, req)
	if err != nil {
		log.Error().Err(err).Str("topic", req.Topic).Msg("CreateQuiz: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create quiz"})
		return
	}
	ctx.JSON(http.StatusCreated, quiz)
}

// GetQuiz godoc
// @Summary Get a quiz and its questions by id
// @Tags Quizzes
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {object} dto.QuizWithQuestionsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid quiz ID"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes/{id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Invalid quiz ID")
	if !ok {
		return
	}

	quiz, err := c.quizService.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Quiz not found"})
			return
		}
		log.Error().Err(err).Uint("quizID", id).Msg("GetQuiz: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch quiz"})
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// SubmitQuizAnswer godoc
// @Summary Submit an answer for one question of a quiz
// @Description Records the answer and its correctness. When the last open question of the quiz is answered, the quiz score is computed and the quiz is marked completed.
// @Tags Quizzes
// @Accept json
// @Produce json
// @Param id path int true "Quiz ID"
// @Param request body dto.SubmitQuizAnswerRequest true "Answer submission (quizId must match the path)"
// @Success 200 {object} dto.QuizQuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid body or quiz ID mismatch"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes/{id}/answers [post]
func (c *QuizController) SubmitQuizAnswer(ctx *gin.Context) {
	quizID, ok := parseIDParam(ctx, "Invalid quiz ID")
	if !ok {
		return
	}

	var req dto.SubmitQuizAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitQuizAnswer: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request data", Details: []string{err.Error()}})
		return
	}
	if req.QuizID != quizID {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Quiz ID mismatch"})
		return
	}

	question, err := c.quizService.SubmitAnswer(quizID, req.QuestionID, *req.Answer)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Question not found"})
			return
		}
		log.Error().Err(err).Uint("quizID", quizID).Uint("questionID", req.QuestionID).Msg("SubmitQuizAnswer: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to submit quiz answer"})
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// GetQuizResults godoc
// @Summary Get a quiz's questions plus its completion state and score
// @Tags Quizzes
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {object} dto.QuizResultsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid quiz ID"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes/{id}/results [get]
func (c *QuizController) GetQuizResults(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Invalid quiz ID")
	if !ok {
		return
	}

	results, err := c.quizService.Results(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Quiz not found"})
			return
		}
		log.Error().Err(err).Uint("quizID", id).Msg("GetQuizResults: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch quiz results"})
		return
	}
	ctx.JSON(http.StatusOK, results)
}
