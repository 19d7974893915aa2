package repository

import (
	"time"

	"studycraft/internal/model"

	"gorm.io/gorm"
)

type StudySessionRepository interface {
	Create(session *model.StudySession) error
	FindByID(id uint) (*model.StudySession, error)
	FindAllByUserID(userID uint) ([]model.StudySession, error)
	TouchLastAccessed(id uint) (*model.StudySession, error)
	Delete(id uint) error
}

type studySessionRepository struct {
	db *gorm.DB
}

func NewStudySessionRepository(db *gorm.DB) StudySessionRepository {
	return &studySessionRepository{db: db}
}

func (r *studySessionRepository) Create(session *model.StudySession) error {
	return r.db.Create(session).Error
}

func (r *studySessionRepository) FindByID(id uint) (*model.StudySession, error) {
	var session model.StudySession
	if err := r.db.First(&session, id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// FindAllByUserID lists a user's sessions, most recently accessed first.
func (r *studySessionRepository) FindAllByUserID(userID uint) ([]model.StudySession, error) {
	var sessions []model.StudySession
	if err := r.db.Where("user_id = ?", userID).Order("last_accessed desc").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// TouchLastAccessed stamps the session and returns the persisted row.
func (r *studySessionRepository) TouchLastAccessed(id uint) (*model.StudySession, error) {
	result := r.db.Model(&model.StudySession{}).Where("id = ?", id).Update("last_accessed", time.Now())
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(id)
}

func (r *studySessionRepository) Delete(id uint) error {
	result := r.db.Delete(&model.StudySession{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
