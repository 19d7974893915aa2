package service

import "strings"

// Two independent keyword-classification strategies live here. They overlap
// but are not the same: FallbackSubject picks one of the four canned-content
// categories used when generation fails, while DetectSubject produces the
// display label stored on sessions and quizzes. Keep them separate; their
// category sets and keyword lists differ on purpose.

// Fallback content categories.
const (
	SubjectDefault     = "default"
	SubjectMathematics = "mathematics"
	SubjectHistory     = "history"
	SubjectScience     = "science"
)

var fallbackMathKeywords = []string{
	"math", "algebra", "calculus", "geometry", "equation", "theorem",
	"arithmetic", "trigonometry", "statistics", "probability",
}

var fallbackHistoryKeywords = []string{
	"history", "world war", "ancient", "civilization", "medieval",
	"renaissance", "revolution", "empire", "dynasty", "century", "historical",
}

var fallbackScienceKeywords = []string{
	"biology", "cell", "dna", "evolution", "science", "physics", "chemistry",
	"atom", "molecule", "genetics", "organism", "quantum", "theory",
}

// FallbackSubject maps a topic (and optional subject hint) to a fallback
// content category. The hint is checked first; otherwise the topic is scanned
// against the keyword lists in fixed order, first match wins. Total and
// deterministic for every input, including empty strings.
func FallbackSubject(topic, subject string) string {
	if subject != "" {
		normalized := strings.ToLower(subject)
		switch {
		case strings.Contains(normalized, "math"):
			return SubjectMathematics
		case strings.Contains(normalized, "history"):
			return SubjectHistory
		case strings.Contains(normalized, "biology"),
			strings.Contains(normalized, "chemistry"),
			strings.Contains(normalized, "physics"):
			return SubjectScience
		}
	}

	normalized := strings.ToLower(topic)
	if containsAny(normalized, fallbackMathKeywords) {
		return SubjectMathematics
	}
	if containsAny(normalized, fallbackHistoryKeywords) {
		return SubjectHistory
	}
	if containsAny(normalized, fallbackScienceKeywords) {
		return SubjectScience
	}
	return SubjectDefault
}

// detectRule pairs a display label with the keywords that select it.
type detectRule struct {
	label    string
	keywords []string
}

// List order is the tie-break: the first rule with a matching keyword wins.
var detectRules = []detectRule{
	{"Mathematics", []string{"math", "calculus", "algebra", "geometry"}},
	{"Physics", []string{"physics", "mechanics", "quantum"}},
	{"Biology", []string{"biology", "cell", "organism", "genetics"}},
	{"Chemistry", []string{"chemistry", "chemical", "molecule"}},
	{"History", []string{"history", "war", "century"}},
	{"Literature", []string{"literature", "novel", "poetry"}},
	{"Computer Science", []string{"computer", "programming", "algorithm"}},
}

// DetectSubject maps a free-text topic to a display subject label, falling
// through to "General" when nothing matches.
func DetectSubject(topic string) string {
	normalized := strings.ToLower(topic)
	for _, rule := range detectRules {
		if containsAny(normalized, rule.keywords) {
			return rule.label
		}
	}
	return "General"
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
