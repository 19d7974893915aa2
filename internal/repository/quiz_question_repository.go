package repository

import (
	"studycraft/internal/model"

	"gorm.io/gorm"
)

type QuizQuestionRepository interface {
	Create(question *model.QuizQuestion) error
	FindByID(id uint) (*model.QuizQuestion, error)
	FindAllByQuizID(quizID uint) ([]model.QuizQuestion, error)
	Update(question *model.QuizQuestion) error
}

type quizQuestionRepository struct {
	db *gorm.DB
}

func NewQuizQuestionRepository(db *gorm.DB) QuizQuestionRepository {
	return &quizQuestionRepository{db: db}
}

func (r *quizQuestionRepository) Create(question *model.QuizQuestion) error {
	return r.db.Create(question).Error
}

func (r *quizQuestionRepository) FindByID(id uint) (*model.QuizQuestion, error) {
	var question model.QuizQuestion
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// FindAllByQuizID returns a quiz's questions in creation order.
func (r *quizQuestionRepository) FindAllByQuizID(quizID uint) ([]model.QuizQuestion, error) {
	var questions []model.QuizQuestion
	if err := r.db.Where("quiz_id = ?", quizID).Order("id asc").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *quizQuestionRepository) Update(question *model.QuizQuestion) error {
	return r.db.Save(question).Error
}
