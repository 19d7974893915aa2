package repository

import (
	"studycraft/internal/model"

	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(quiz *model.Quiz) error
	FindByID(id uint) (*model.Quiz, error)
	FindAllByUserID(userID uint) ([]model.Quiz, error)
	FindAllBySessionID(sessionID uint) ([]model.Quiz, error)
	UpdateScore(id uint, score int) (*model.Quiz, error)
	MarkCompleted(id uint) (*model.Quiz, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

// Create persists the quiz together with any populated Questions association.
func (r *quizRepository) Create(quiz *model.Quiz) error {
	return r.db.Create(quiz).Error
}

func (r *quizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.db.First(&quiz, id).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

// FindAllByUserID lists a user's quizzes, most recently created first.
func (r *quizRepository) FindAllByUserID(userID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	if err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) FindAllBySessionID(sessionID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	if err := r.db.Where("session_id = ?", sessionID).Order("created_at desc").Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) UpdateScore(id uint, score int) (*model.Quiz, error) {
	if err := r.db.Model(&model.Quiz{}).Where("id = ?", id).Update("score", score).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

func (r *quizRepository) MarkCompleted(id uint) (*model.Quiz, error) {
	if err := r.db.Model(&model.Quiz{}).Where("id = ?", id).Update("completed", true).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}
