package model

import (
	"time"

	"gorm.io/gorm"
)

// StudySession is a persisted record of generated study content together
// with the parameters it was generated from.
type StudySession struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	UserID          uint           `json:"userId" gorm:"not null;index"`
	Topic           string         `json:"topic" gorm:"not null"`
	Subject         string         `json:"subject" gorm:"not null"`
	Content         string         `json:"content" gorm:"type:text;not null"`
	Format          string         `json:"format" gorm:"not null"`
	Difficulty      string         `json:"difficulty" gorm:"not null"`
	LearningStyle   string         `json:"learningStyle" gorm:"not null"`
	IncludeExamples bool           `json:"includeExamples"`
	IncludeVisuals  bool           `json:"includeVisuals"`
	CreatedAt       time.Time      `json:"createdAt"`
	LastAccessed    time.Time      `json:"lastAccessed" gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `json:"-"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
