package model

import (
	"time"

	"gorm.io/gorm"
)

// Quiz owns its QuizQuestions; they are created in one batch and queried by
// quiz id. The optional SessionID links a quiz to the study session it was
// generated from.
type Quiz struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	UserID         uint           `json:"userId" gorm:"not null;index"`
	SessionID      *uint          `json:"sessionId,omitempty" gorm:"index"`
	Topic          string         `json:"topic" gorm:"not null"`
	Subject        string         `json:"subject" gorm:"not null"`
	Difficulty     string         `json:"difficulty" gorm:"not null"`
	TotalQuestions int            `json:"totalQuestions" gorm:"not null"`
	Completed      bool           `json:"completed" gorm:"not null;default:false"`
	Score          int            `json:"score" gorm:"not null;default:0"` // 0-100, set once all questions are answered
	Questions      []QuizQuestion `json:"questions,omitempty" gorm:"foreignKey:QuizID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"-"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
