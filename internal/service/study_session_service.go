package service

import (
	"context"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"studycraft/internal/dto"
	"studycraft/internal/model"
	"studycraft/internal/repository"
)

type StudySessionService interface {
	Create(ctx context.Context, userID uint, req dto.GenerateStudyMaterialRequest) (*dto.StudySessionResponse, error)
	GetAllForUser(userID uint) ([]dto.StudySessionResponse, error)
	Get(id uint) (*dto.StudySessionResponse, error)
	Delete(id uint) error
}

type studySessionService struct {
	sessionRepo repository.StudySessionRepository
	generator   ContentGeneratorService
}

func NewStudySessionService(sessionRepo repository.StudySessionRepository, generator ContentGeneratorService) StudySessionService {
	return &studySessionService{sessionRepo: sessionRepo, generator: generator}
}

// Create generates study material for the request and persists it as a new
// session. Generation cannot fail (the generator substitutes fallback
// content), so the only error source is the store.
func (s *studySessionService) Create(ctx context.Context, userID uint, req dto.GenerateStudyMaterialRequest) (*dto.StudySessionResponse, error) {
	content := s.generator.GenerateStudyMaterial(ctx, req)

	subject := req.Subject
	if subject == "" {
		subject = DetectSubject(req.Topic)
	}

	session := model.StudySession{
		UserID:          userID,
		Topic:           req.Topic,
		Subject:         subject,
		Content:         content,
		Format:          req.Format,
		Difficulty:      req.Difficulty,
		LearningStyle:   req.LearningStyle,
		IncludeExamples: req.IncludeExamples,
		IncludeVisuals:  req.IncludeVisuals,
	}
	if err := s.sessionRepo.Create(&session); err != nil {
		log.Error().Err(err).Str("topic", req.Topic).Msg("Failed to create study session")
		return nil, fmt.Errorf("database error creating study session: %w", err)
	}

	var resp dto.StudySessionResponse
	if err := copier.Copy(&resp, &session); err != nil {
		return nil, fmt.Errorf("error preparing study session response: %w", err)
	}
	return &resp, nil
}

func (s *studySessionService) GetAllForUser(userID uint) ([]dto.StudySessionResponse, error) {
	sessions, err := s.sessionRepo.FindAllByUserID(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to list study sessions")
		return nil, fmt.Errorf("error fetching study sessions: %w", err)
	}

	resp := make([]dto.StudySessionResponse, 0, len(sessions))
	for i := range sessions {
		var item dto.StudySessionResponse
		if err := copier.Copy(&item, &sessions[i]); err != nil {
			return nil, fmt.Errorf("error preparing study session list response: %w", err)
		}
		resp = append(resp, item)
	}
	return resp, nil
}

// Get returns the session and refreshes its last-accessed timestamp.
func (s *studySessionService) Get(id uint) (*dto.StudySessionResponse, error) {
	session, err := s.sessionRepo.TouchLastAccessed(id)
	if err != nil {
		return nil, fmt.Errorf("study session not found with ID %d: %w", id, err)
	}

	var resp dto.StudySessionResponse
	if err := copier.Copy(&resp, session); err != nil {
		return nil, fmt.Errorf("error preparing study session response: %w", err)
	}
	return &resp, nil
}

func (s *studySessionService) Delete(id uint) error {
	if err := s.sessionRepo.Delete(id); err != nil {
		return fmt.Errorf("study session not found with ID %d: %w", id, err)
	}
	return nil
}
