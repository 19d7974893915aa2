package dto

import "time"

type StudySessionResponse struct {
	ID              uint      `json:"id"`
	UserID          uint      `json:"userId"`
	Topic           string    `json:"topic"`
	Subject         string    `json:"subject"`
	Content         string    `json:"content"`
	Format          string    `json:"format"`
	Difficulty      string    `json:"difficulty"`
	LearningStyle   string    `json:"learningStyle"`
	IncludeExamples bool      `json:"includeExamples"`
	IncludeVisuals  bool      `json:"includeVisuals"`
	CreatedAt       time.Time `json:"createdAt"`
	LastAccessed    time.Time `json:"lastAccessed"`
}

type QuizResponse struct {
	ID             uint      `json:"id"`
	UserID         uint      `json:"userId"`
	SessionID      *uint     `json:"sessionId,omitempty"`
	Topic          string    `json:"topic"`
	Subject        string    `json:"subject"`
	Difficulty     string    `json:"difficulty"`
	TotalQuestions int       `json:"totalQuestions"`
	Completed      bool      `json:"completed"`
	Score          int       `json:"score"`
	CreatedAt      time.Time `json:"createdAt"`
}

type QuizQuestionResponse struct {
	ID                 uint     `json:"id"`
	QuizID             uint     `json:"quizId"`
	QuestionText       string   `json:"questionText"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correctOptionIndex"`
	Explanation        string   `json:"explanation"`
	UserAnswer         *int     `json:"userAnswer"`
	Correct            *bool    `json:"correct"`
}

// QuizWithQuestionsResponse is returned by quiz creation and detail endpoints.
type QuizWithQuestionsResponse struct {
	Quiz      QuizResponse           `json:"quiz"`
	Questions []QuizQuestionResponse `json:"questions"`
}

// QuizResultsResponse mirrors QuizWithQuestionsResponse and additionally
// surfaces the aggregate completion state at the top level.
type QuizResultsResponse struct {
	Quiz      QuizResponse           `json:"quiz"`
	Questions []QuizQuestionResponse `json:"questions"`
	Completed bool                   `json:"completed"`
	Score     int                    `json:"score"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
