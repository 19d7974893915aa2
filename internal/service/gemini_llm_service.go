package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"

	"studycraft/config"
	"studycraft/internal/dto"
)

// GeneratedQuestion is the structured-response contract for quiz generation:
// four options and a zero-based correct index.
type GeneratedQuestion struct {
	QuestionText       string   `json:"questionText"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correctOptionIndex"`
	Explanation        string   `json:"explanation"`
}

// LLMService talks to the generative API. Errors propagate to the caller;
// the content generator one layer up absorbs them into fallback content.
type LLMService interface {
	GenerateStudyMaterial(ctx context.Context, req dto.GenerateStudyMaterialRequest) (string, error)
	GenerateQuiz(ctx context.Context, req dto.GenerateQuizRequest) ([]GeneratedQuestion, error)
}

type geminiLLMService struct {
	textModel *genai.GenerativeModel
	jsonModel *genai.GenerativeModel
	cfg       *config.Config
}

func NewGeminiLLMService(cfg *config.Config) (LLMService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. LLM calls will fail and fallback content will be served.")
		return &geminiLLMService{cfg: cfg}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}

	textModel := client.GenerativeModel("gemini-1.5-flash")

	jsonModel := client.GenerativeModel("gemini-1.5-flash")
	jsonModel.ResponseMIMEType = "application/json"

	return &geminiLLMService{textModel: textModel, jsonModel: jsonModel, cfg: cfg}, nil
}

func (s *geminiLLMService) GenerateStudyMaterial(ctx context.Context, req dto.GenerateStudyMaterialRequest) (string, error) {
	if s.textModel == nil {
		return "", fmt.Errorf("gemini client not initialized")
	}

	var prompt strings.Builder
	fmt.Fprintf(&prompt, "Create comprehensive %s about %q", req.Format, req.Topic)
	if req.Subject != "" {
		fmt.Fprintf(&prompt, " in the subject area of %s", req.Subject)
	}
	fmt.Fprintf(&prompt, ". The content should be at a %s level and use a %s learning style.", req.Difficulty, req.LearningStyle)
	if req.IncludeExamples {
		prompt.WriteString(" Include practical examples to illustrate key concepts.")
	}
	if req.IncludeVisuals {
		prompt.WriteString(" Describe any visual aids or diagrams that would be helpful (note: actual images won't be generated).")
	}
	prompt.WriteString(" Format the output in markdown with appropriate headings, lists, and emphasis.")
	prompt.WriteString("\n\nYou are an expert educational content creator who specializes in creating clear, accurate, and engaging study materials.")

	resp, err := s.textModel.GenerateContent(ctx, genai.Text(prompt.String()))
	if err != nil {
		log.Error().Err(err).Str("topic", req.Topic).Msg("Gemini API error during study material generation")
		return "", err
	}

	content := collectText(resp)
	if content == "" {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return content, nil
}

func (s *geminiLLMService) GenerateQuiz(ctx context.Context, req dto.GenerateQuizRequest) ([]GeneratedQuestion, error) {
	if s.jsonModel == nil {
		return nil, fmt.Errorf("gemini client not initialized")
	}

	var prompt strings.Builder
	fmt.Fprintf(&prompt, "Create a quiz about %q", req.Topic)
	if req.Subject != "" {
		fmt.Fprintf(&prompt, " in the subject area of %s", req.Subject)
	}
	fmt.Fprintf(&prompt, ". The quiz should have exactly %d multiple-choice questions at a %s level.", req.TotalQuestions, req.Difficulty)
	prompt.WriteString(" For each question, provide four possible answers, clearly indicate which answer is correct (using a zero-based index, from 0 to 3), and provide a brief explanation for why the correct answer is right.")
	prompt.WriteString(` Return the response in JSON format with the following structure: { "questions": [{ "questionText": "...", "options": ["option1", "option2", "option3", "option4"], "correctOptionIndex": 0, "explanation": "..." }, ...] }`)

	resp, err := s.jsonModel.GenerateContent(ctx, genai.Text(prompt.String()))
	if err != nil {
		log.Error().Err(err).Str("topic", req.Topic).Msg("Gemini API error during quiz generation")
		return nil, err
	}

	raw := collectText(resp)
	if raw == "" {
		return nil, fmt.Errorf("gemini returned no text content")
	}

	questions, err := parseQuizResponse(raw)
	if err != nil {
		log.Warn().Err(err).Str("rawResponse", raw).Msg("Failed to parse quiz questions from Gemini response")
		return nil, err
	}
	return questions, nil
}

// parseQuizResponse decodes the structured quiz payload, tolerating markdown
// code fences around the JSON body.
func parseQuizResponse(raw string) ([]GeneratedQuestion, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var payload struct {
		Questions []GeneratedQuestion `json:"questions"`
	}
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("malformed quiz response: %w", err)
	}
	if len(payload.Questions) == 0 {
		return nil, fmt.Errorf("failed to generate quiz questions")
	}
	return payload.Questions, nil
}

func collectText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String()
}
