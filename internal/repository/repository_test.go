package repository

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"studycraft/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.StudySession{}, &model.Quiz{}, &model.QuizQuestion{}))
	return db
}

func TestStudySessionRepository_FindAllByUserID_OrdersByLastAccessed(t *testing.T) {
	db := newTestDB(t)
	repo := NewStudySessionRepository(db)

	base := time.Now().Add(-time.Hour)
	for i, topic := range []string{"old", "newest", "middle"} {
		offsets := []time.Duration{0, 30 * time.Minute, 10 * time.Minute}
		require.NoError(t, repo.Create(&model.StudySession{
			UserID:       1,
			Topic:        topic,
			Subject:      "General",
			LastAccessed: base.Add(offsets[i]),
		}))
	}
	require.NoError(t, repo.Create(&model.StudySession{UserID: 2, Topic: "other user"}))

	sessions, err := repo.FindAllByUserID(1)
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	assert.Equal(t, "newest", sessions[0].Topic)
	assert.Equal(t, "middle", sessions[1].Topic)
	assert.Equal(t, "old", sessions[2].Topic)
}

func TestStudySessionRepository_TouchLastAccessed(t *testing.T) {
	db := newTestDB(t)
	repo := NewStudySessionRepository(db)

	session := &model.StudySession{UserID: 1, Topic: "Algebra", LastAccessed: time.Now().Add(-time.Hour)}
	require.NoError(t, repo.Create(session))

	touched, err := repo.TouchLastAccessed(session.ID)
	require.NoError(t, err)
	assert.True(t, touched.LastAccessed.After(session.LastAccessed))

	_, err = repo.TouchLastAccessed(999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestStudySessionRepository_Delete_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewStudySessionRepository(db)

	err := repo.Delete(999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestQuizRepository_CreatePersistsQuestions(t *testing.T) {
	db := newTestDB(t)
	quizRepo := NewQuizRepository(db)
	questionRepo := NewQuizQuestionRepository(db)

	quiz := &model.Quiz{
		UserID:         1,
		Topic:          "Algebra",
		Subject:        "Mathematics",
		Difficulty:     "beginner",
		TotalQuestions: 2,
		Questions: []model.QuizQuestion{
			{QuestionText: "first", Options: []string{"a", "b"}, CorrectOptionIndex: 0},
			{QuestionText: "second", Options: []string{"a", "b"}, CorrectOptionIndex: 1},
		},
	}
	require.NoError(t, quizRepo.Create(quiz))

	questions, err := questionRepo.FindAllByQuizID(quiz.ID)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "first", questions[0].QuestionText)
	assert.Equal(t, []string{"a", "b"}, questions[0].Options)
	assert.Equal(t, "second", questions[1].QuestionText)
}

func TestQuizRepository_FindAllByUserID_OrdersByCreatedAt(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuizRepository(db)

	base := time.Now().Add(-time.Hour)
	for i, topic := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(&model.Quiz{
			UserID:    1,
			Topic:     topic,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	quizzes, err := repo.FindAllByUserID(1)
	require.NoError(t, err)
	require.Len(t, quizzes, 3)
	assert.Equal(t, "third", quizzes[0].Topic)
	assert.Equal(t, "first", quizzes[2].Topic)
}

func TestQuizRepository_FindAllBySessionID(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuizRepository(db)

	sessionID := uint(7)
	require.NoError(t, repo.Create(&model.Quiz{UserID: 1, Topic: "linked", SessionID: &sessionID}))
	require.NoError(t, repo.Create(&model.Quiz{UserID: 1, Topic: "standalone"}))

	quizzes, err := repo.FindAllBySessionID(sessionID)
	require.NoError(t, err)
	require.Len(t, quizzes, 1)
	assert.Equal(t, "linked", quizzes[0].Topic)
}

func TestQuizRepository_ScoreAndCompletion(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuizRepository(db)

	quiz := &model.Quiz{UserID: 1, Topic: "Algebra"}
	require.NoError(t, repo.Create(quiz))

	scored, err := repo.UpdateScore(quiz.ID, 80)
	require.NoError(t, err)
	assert.Equal(t, 80, scored.Score)
	assert.False(t, scored.Completed)

	completed, err := repo.MarkCompleted(quiz.ID)
	require.NoError(t, err)
	assert.True(t, completed.Completed)
	assert.Equal(t, 80, completed.Score)
}

func TestQuizQuestionRepository_Update(t *testing.T) {
	db := newTestDB(t)
	quizRepo := NewQuizRepository(db)
	questionRepo := NewQuizQuestionRepository(db)

	quiz := &model.Quiz{
		UserID: 1,
		Topic:  "Algebra",
		Questions: []model.QuizQuestion{
			{QuestionText: "q", Options: []string{"a", "b"}, CorrectOptionIndex: 1},
		},
	}
	require.NoError(t, quizRepo.Create(quiz))

	question, err := questionRepo.FindByID(quiz.Questions[0].ID)
	require.NoError(t, err)
	assert.Nil(t, question.UserAnswer)

	answer := 1
	correct := true
	question.UserAnswer = &answer
	question.Correct = &correct
	require.NoError(t, questionRepo.Update(question))

	reloaded, err := questionRepo.FindByID(question.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.UserAnswer)
	assert.Equal(t, 1, *reloaded.UserAnswer)
	require.NotNil(t, reloaded.Correct)
	assert.True(t, *reloaded.Correct)
}

func TestUserRepository_FindByUsername(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	require.NoError(t, repo.Create(&model.User{Username: "demo", Password: "hash"}))

	user, err := repo.FindByUsername("demo")
	require.NoError(t, err)
	assert.Equal(t, "demo", user.Username)

	_, err = repo.FindByUsername("missing")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
