package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"studycraft/internal/dto"
	"studycraft/internal/service"
)

type StudySessionController struct {
	sessionService service.StudySessionService
	authService    service.AuthService
}

func NewStudySessionController(sessionService service.StudySessionService, authService service.AuthService) *StudySessionController {
	return &StudySessionController{sessionService: sessionService, authService: authService}
}

// CreateStudySession godoc
// @Summary Generate study material and store it as a session
// @Description Generates study content for the given topic (fallback content on LLM failure) and persists it for the current user.
// @Tags Study Sessions
// @Accept json
// @Produce json
// @Param request body dto.GenerateStudyMaterialRequest true "Generation parameters"
// @Success 201 {object} dto.StudySessionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /study-sessions [post]
func (c *StudySessionController) CreateStudySession(ctx *gin.Context) {
	var req dto.GenerateStudyMaterialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateStudySession: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request data", Details: []string{err.Error()}})
		return
	}

	user, err := c.authService.CurrentUser()
	if err != nil {
		log.Error().Err(err).Msg("CreateStudySession: could not resolve current user")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create study session"})
		return
	}

	session, err := c.sessionService.Create(ctx.Request.Context(), user.ID, req)
	if err != nil {
		log.Error().Err(err).Str("topic", req.Topic).Msg("CreateStudySession: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create study session"})
		return
	}
	ctx.JSON(http.StatusCreated, session)
}

// GetStudySessions godoc
// @Summary List the current user's study sessions
// @Description Sessions are ordered by most recently accessed first.
// @Tags Study Sessions
// @Produce json
// @Success 200 {array} dto.StudySessionResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /study-sessions [get]
func (c *StudySessionController) GetStudySessions(ctx *gin.Context) {
	user, err := c.authService.CurrentUser()
	if err != nil {
		log.Error().Err(err).Msg("GetStudySessions: could not resolve current user")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch study sessions"})
		return
	}

	sessions, err := c.sessionService.GetAllForUser(user.ID)
	if err != nil {
		log.Error().Err(err).Msg("GetStudySessions: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch study sessions"})
		return
	}
	ctx.JSON(http.StatusOK, sessions)
}

// GetStudySession godoc
// @Summary Get a study session by id
// @Description Returns the session and refreshes its last-accessed timestamp.
// @Tags Study Sessions
// @Produce json
// @Param id path int true "Study session ID"
// @Success 200 {object} dto.StudySessionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid session ID"
// @Failure 404 {object} dto.ErrorResponse "Study session not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /study-sessions/{id} [get]
func (c *StudySessionController) GetStudySession(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Invalid session ID")
	if !ok {
		return
	}

	session, err := c.sessionService.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Study session not found"})
			return
		}
		log.Error().Err(err).Uint("sessionID", id).Msg("GetStudySession: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch study session"})
		return
	}
	ctx.JSON(http.StatusOK, session)
}

// DeleteStudySession godoc
// @Summary Delete a study session
// @Tags Study Sessions
// @Param id path int true "Study session ID"
// @Success 204 "Deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid session ID"
// @Failure 404 {object} dto.ErrorResponse "Study session not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /study-sessions/{id} [delete]
func (c *StudySessionController) DeleteStudySession(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Invalid session ID")
	if !ok {
		return
	}

	if err := c.sessionService.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Study session not found"})
			return
		}
		log.Error().Err(err).Uint("sessionID", id).Msg("DeleteStudySession: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to delete study session"})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// parseIDParam reads the :id path segment as an unsigned integer, writing a
// 400 response itself when the value is not numeric.
func parseIDParam(ctx *gin.Context, badRequestMsg string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: badRequestMsg})
		return 0, false
	}
	return uint(id), true
}
