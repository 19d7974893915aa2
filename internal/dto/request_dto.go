package dto

// GenerateStudyMaterialRequest is the body for POST /api/study-sessions.
type GenerateStudyMaterialRequest struct {
	Topic           string `json:"topic" binding:"required"`
	Subject         string `json:"subject"` // optional hint; detected from topic when empty
	Format          string `json:"format" binding:"required"`
	Difficulty      string `json:"difficulty" binding:"required,oneof=beginner intermediate advanced"`
	LearningStyle   string `json:"learningStyle" binding:"required"`
	IncludeExamples bool   `json:"includeExamples"`
	IncludeVisuals  bool   `json:"includeVisuals"`
}

// GenerateQuizRequest is the body for POST /api/quizzes.
type GenerateQuizRequest struct {
	SessionID      *uint  `json:"sessionId"` // optional link to an existing study session
	Topic          string `json:"topic" binding:"required"`
	Subject        string `json:"subject"`
	Difficulty     string `json:"difficulty" binding:"required,oneof=beginner intermediate advanced"`
	TotalQuestions int    `json:"totalQuestions" binding:"required,min=1,max=20"`
}

// SubmitQuizAnswerRequest is the body for POST /api/quizzes/:id/answers.
// Answer is a pointer so index 0 survives required-field binding. The value
// range is deliberately not validated here: an out-of-range answer never
// matches the correct option.
type SubmitQuizAnswerRequest struct {
	QuizID     uint `json:"quizId" binding:"required"`
	QuestionID uint `json:"questionId" binding:"required"`
	Answer     *int `json:"answer" binding:"required"`
}
