package service

import "testing"

func TestParseQuizResponse_ValidPayload(t *testing.T) {
	raw := `{"questions":[{"questionText":"Q?","options":["a","b","c","d"],"correctOptionIndex":2,"explanation":"why"}]}`
	questions, err := parseQuizResponse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
	q := questions[0]
	if q.QuestionText != "Q?" || q.CorrectOptionIndex != 2 || len(q.Options) != 4 {
		t.Errorf("question fields not parsed correctly: %+v", q)
	}
}

func TestParseQuizResponse_StripsCodeFences(t *testing.T) {
	raw := "```json\n{\"questions\":[{\"questionText\":\"Q?\",\"options\":[\"a\",\"b\",\"c\",\"d\"],\"correctOptionIndex\":0,\"explanation\":\"e\"}]}\n```"
	questions, err := parseQuizResponse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
}

func TestParseQuizResponse_MalformedJSON(t *testing.T) {
	if _, err := parseQuizResponse("not json at all"); err == nil {
		t.Error("expected error for malformed response")
	}
}

func TestParseQuizResponse_EmptyQuestions(t *testing.T) {
	if _, err := parseQuizResponse(`{"questions":[]}`); err == nil {
		t.Error("expected error for empty questions array")
	}
	if _, err := parseQuizResponse(`{}`); err == nil {
		t.Error("expected error for missing questions field")
	}
}
