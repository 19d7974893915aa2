package model

import (
	"time"

	"gorm.io/gorm"
)

type QuizQuestion struct {
	ID                 uint           `gorm:"primarykey" json:"id"`
	QuizID             uint           `json:"quizId" gorm:"not null;index"`
	QuestionText       string         `json:"questionText" gorm:"type:text;not null"`
	Options            []string       `json:"options" gorm:"serializer:json;not null"` // always four options
	CorrectOptionIndex int            `json:"correctOptionIndex" gorm:"not null"`      // zero-based, 0-3
	Explanation        string         `json:"explanation" gorm:"type:text"`
	UserAnswer         *int           `json:"userAnswer"` // nil until the question is answered
	Correct            *bool          `json:"correct"`    // nil until answered, then UserAnswer == CorrectOptionIndex
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"-"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}
