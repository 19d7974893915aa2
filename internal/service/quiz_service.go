package service

import (
	"context"
	"fmt"
	"math"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"studycraft/internal/dto"
	"studycraft/internal/model"
	"studycraft/internal/repository"
)

// QuizService owns the quiz lifecycle: Created (no answers) -> InProgress
// (some answers) -> Completed (all answered, score computed). The transition
// is one-way; a completed quiz is never reopened.
type QuizService interface {
	Create(ctx context.Context, userID uint, req dto.GenerateQuizRequest) (*dto.QuizWithQuestionsResponse, error)
	GetAllForUser(userID uint) ([]dto.QuizResponse, error)
	Get(id uint) (*dto.QuizWithQuestionsResponse, error)
	SubmitAnswer(quizID, questionID uint, answer int) (*dto.QuizQuestionResponse, error)
	Results(id uint) (*dto.QuizResultsResponse, error)
}

type quizService struct {
	quizRepo     repository.QuizRepository
	questionRepo repository.QuizQuestionRepository
	generator    ContentGeneratorService
	db           *gorm.DB // transactions for answer submission
}

func NewQuizService(
	quizRepo repository.QuizRepository,
	questionRepo repository.QuizQuestionRepository,
	generator ContentGeneratorService,
	db *gorm.DB,
) QuizService {
	return &quizService{
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		generator:    generator,
		db:           db,
	}
}

// Create generates questions for the topic and persists the quiz with its
// question batch in one association write. Generation never fails; fallback
// content may shrink the batch below the requested count.
func (s *quizService) Create(ctx context.Context, userID uint, req dto.GenerateQuizRequest) (*dto.QuizWithQuestionsResponse, error) {
	generated := s.generator.GenerateQuiz(ctx, req)

	subject := req.Subject
	if subject == "" {
		subject = DetectSubject(req.Topic)
	}

	questions := make([]model.QuizQuestion, len(generated))
	for i, g := range generated {
		questions[i] = model.QuizQuestion{
			QuestionText:       g.QuestionText,
			Options:            g.Options,
			CorrectOptionIndex: g.CorrectOptionIndex,
			Explanation:        g.Explanation,
		}
	}

	quiz := model.Quiz{
		UserID:         userID,
		SessionID:      req.SessionID,
		Topic:          req.Topic,
		Subject:        subject,
		Difficulty:     req.Difficulty,
		TotalQuestions: req.TotalQuestions,
		Questions:      questions,
	}
	if err := s.quizRepo.Create(&quiz); err != nil {
		log.Error().Err(err).Str("topic", req.Topic).Msg("Failed to create quiz")
		return nil, fmt.Errorf("database error creating quiz: %w", err)
	}

	persisted, err := s.questionRepo.FindAllByQuizID(quiz.ID)
	if err != nil {
		return nil, fmt.Errorf("error fetching questions for quiz %d: %w", quiz.ID, err)
	}
	return buildQuizWithQuestions(&quiz, persisted)
}

func (s *quizService) GetAllForUser(userID uint) ([]dto.QuizResponse, error) {
	quizzes, err := s.quizRepo.FindAllByUserID(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to list quizzes")
		return nil, fmt.Errorf("error fetching quizzes: %w", err)
	}

	resp := make([]dto.QuizResponse, 0, len(quizzes))
	for i := range quizzes {
		var item dto.QuizResponse
		if err := copier.Copy(&item, &quizzes[i]); err != nil {
			return nil, fmt.Errorf("error preparing quiz list response: %w", err)
		}
		resp = append(resp, item)
	}
	return resp, nil
}

func (s *quizService) Get(id uint) (*dto.QuizWithQuestionsResponse, error) {
	quiz, err := s.quizRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("quiz not found with ID %d: %w", id, err)
	}
	questions, err := s.questionRepo.FindAllByQuizID(id)
	if err != nil {
		return nil, fmt.Errorf("error fetching questions for quiz %d: %w", id, err)
	}
	return buildQuizWithQuestions(quiz, questions)
}

// SubmitAnswer records the answer and derived correctness on the question,
// then completes the quiz if every question now has an answer. The whole
// sequence runs in one transaction and the completion write carries a
// completed = false guard, so concurrent submissions of the final answers
// cannot complete a quiz twice, and the transition stays one-way.
func (s *quizService) SubmitAnswer(quizID, questionID uint, answer int) (*dto.QuizQuestionResponse, error) {
	var updated model.QuizQuestion

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var question model.QuizQuestion
		if err := tx.First(&question, questionID).Error; err != nil {
			return fmt.Errorf("question not found with ID %d: %w", questionID, err)
		}

		correct := answer == question.CorrectOptionIndex
		question.UserAnswer = &answer
		question.Correct = &correct
		if err := tx.Save(&question).Error; err != nil {
			return fmt.Errorf("failed to record answer for question %d: %w", questionID, err)
		}
		updated = question

		var questions []model.QuizQuestion
		if err := tx.Where("quiz_id = ?", quizID).Find(&questions).Error; err != nil {
			return fmt.Errorf("error fetching questions for quiz %d: %w", quizID, err)
		}
		if len(questions) == 0 {
			return nil
		}

		correctCount := 0
		for _, q := range questions {
			if q.UserAnswer == nil {
				return nil // quiz still in progress
			}
			if q.Correct != nil && *q.Correct {
				correctCount++
			}
		}

		score := int(math.Round(float64(correctCount) / float64(len(questions)) * 100))
		result := tx.Model(&model.Quiz{}).
			Where("id = ? AND completed = ?", quizID, false).
			Updates(map[string]interface{}{"score": score, "completed": true})
		if result.Error != nil {
			return fmt.Errorf("failed to complete quiz %d: %w", quizID, result.Error)
		}
		if result.RowsAffected > 0 {
			log.Info().Uint("quizID", quizID).Int("score", score).Msg("Quiz completed")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var resp dto.QuizQuestionResponse
	if err := copier.Copy(&resp, &updated); err != nil {
		return nil, fmt.Errorf("error preparing answer response: %w", err)
	}
	return &resp, nil
}

func (s *quizService) Results(id uint) (*dto.QuizResultsResponse, error) {
	quiz, err := s.quizRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("quiz not found with ID %d: %w", id, err)
	}
	questions, err := s.questionRepo.FindAllByQuizID(id)
	if err != nil {
		return nil, fmt.Errorf("error fetching questions for quiz %d: %w", id, err)
	}

	withQuestions, err := buildQuizWithQuestions(quiz, questions)
	if err != nil {
		return nil, err
	}
	return &dto.QuizResultsResponse{
		Quiz:      withQuestions.Quiz,
		Questions: withQuestions.Questions,
		Completed: quiz.Completed,
		Score:     quiz.Score,
	}, nil
}

func buildQuizWithQuestions(quiz *model.Quiz, questions []model.QuizQuestion) (*dto.QuizWithQuestionsResponse, error) {
	var quizResp dto.QuizResponse
	if err := copier.Copy(&quizResp, quiz); err != nil {
		return nil, fmt.Errorf("error preparing quiz response: %w", err)
	}

	questionResps := make([]dto.QuizQuestionResponse, 0, len(questions))
	for i := range questions {
		var q dto.QuizQuestionResponse
		if err := copier.Copy(&q, &questions[i]); err != nil {
			return nil, fmt.Errorf("error preparing quiz question response: %w", err)
		}
		questionResps = append(questionResps, q)
	}

	return &dto.QuizWithQuestionsResponse{Quiz: quizResp, Questions: questionResps}, nil
}
