package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"studycraft/internal/dto"
)

// ContentGeneratorService produces study material and quiz questions. It
// never returns an error: any failure from the LLM layer (network, parse,
// empty result) is absorbed here and replaced with canned fallback content
// selected by FallbackSubject. Callers cannot tell real from fallback output.
type ContentGeneratorService interface {
	GenerateStudyMaterial(ctx context.Context, req dto.GenerateStudyMaterialRequest) string
	GenerateQuiz(ctx context.Context, req dto.GenerateQuizRequest) []GeneratedQuestion
}

type contentGeneratorService struct {
	llm LLMService
}

func NewContentGeneratorService(llm LLMService) ContentGeneratorService {
	return &contentGeneratorService{llm: llm}
}

func (s *contentGeneratorService) GenerateStudyMaterial(ctx context.Context, req dto.GenerateStudyMaterialRequest) string {
	content, err := s.llm.GenerateStudyMaterial(ctx, req)
	if err == nil {
		return content
	}

	log.Warn().Err(err).Str("topic", req.Topic).Msg("Study material generation failed, serving fallback content")
	return fallbackStudyMaterial(req.Topic, req.Subject)
}

func (s *contentGeneratorService) GenerateQuiz(ctx context.Context, req dto.GenerateQuizRequest) []GeneratedQuestion {
	questions, err := s.llm.GenerateQuiz(ctx, req)
	if err == nil {
		return questions
	}

	log.Warn().Err(err).Str("topic", req.Topic).Msg("Quiz generation failed, serving fallback questions")
	return fallbackQuiz(req.Topic, req.Subject, req.TotalQuestions)
}

// fallbackStudyMaterial splices the requested topic into a per-category
// introduction and prepends it to the canned material for that category.
func fallbackStudyMaterial(topic, subject string) string {
	category := FallbackSubject(topic, subject)
	material, ok := sampleMaterials[category]
	if !ok {
		material = sampleMaterials[SubjectDefault]
	}

	var intro strings.Builder
	fmt.Fprintf(&intro, "# %s - Study Material\n\n", topic)
	fmt.Fprintf(&intro, "_Note: This is sample content for %q (API limit reached). The following material covers key concepts in %s._\n\n", topic, category)

	switch category {
	case SubjectMathematics:
		fmt.Fprintf(&intro, "## %s Overview\n\nThe study of %s is an important area in mathematics that helps us understand numerical relationships and solve problems efficiently. Below is general information about mathematical concepts that can be applied to this topic.\n\n", topic, topic)
	case SubjectHistory:
		fmt.Fprintf(&intro, "## %s Context\n\nUnderstanding %s requires knowledge of historical events and their significance. The following material provides context for historical analysis that can be applied to this specific topic.\n\n", topic, topic)
	case SubjectScience:
		fmt.Fprintf(&intro, "## %s in Science\n\n%s is an important concept in science. The following material covers fundamental scientific principles that relate to this topic.\n\n", topic, topic)
	default:
		fmt.Fprintf(&intro, "## Understanding %s\n\nThe following general study principles can be applied to learning about %s. This material covers effective learning strategies.\n\n", topic, topic)
	}

	return intro.String() + material
}

// fallbackQuiz returns min(totalQuestions, available) canned questions for
// the topic's category. Only default and mathematics quiz tables exist;
// history and science topics get the default set. The first question is
// rephrased to reference the topic and its explanation notes that sample
// content was served.
func fallbackQuiz(topic, subject string, totalQuestions int) []GeneratedQuestion {
	category := FallbackSubject(topic, subject)
	source, ok := sampleQuizzes[category]
	if !ok {
		source = sampleQuizzes[SubjectDefault]
	}

	n := totalQuestions
	if n > len(source) {
		n = len(source)
	}
	if n < 0 {
		n = 0
	}

	questions := make([]GeneratedQuestion, n)
	for i := 0; i < n; i++ {
		q := source[i]
		q.Options = append([]string(nil), q.Options...)
		if i == 0 {
			q.QuestionText = fmt.Sprintf("In the context of %s, %s", topic, strings.ToLower(q.QuestionText))
			q.Explanation += fmt.Sprintf(" (Note: This is a sample question related to %s provided due to API limitations)", topic)
		}
		questions[i] = q
	}
	return questions
}
