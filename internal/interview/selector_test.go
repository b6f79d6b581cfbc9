package interview

import (
	"math/rand"
	"strings"
	"testing"
)

func frontendCandidate(resume string) *Candidate {
	return &Candidate{
		Name:       "Jordan Lee",
		Phone:      "+1-555-0100",
		JobRole:    "Frontend Developer",
		ResumeText: resume,
	}
}

func TestSelectQuestionsReferenceShape(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	selector := NewSelector(DefaultBank(), 0, 0, rng)

	questions := selector.SelectQuestions(frontendCandidate("an experienced professional"))

	if len(questions) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(questions))
	}

	for i, question := range questions {
		if question.ID != i+1 {
			t.Fatalf("expected sequential id %d, got %d", i+1, question.ID)
		}
		if question.Text == "" {
			t.Fatalf("question %d has empty text", question.ID)
		}

		expected := Technical
		if i >= DefaultTechnicalCount {
			expected = Behavioral
		}
		if question.Category != expected {
			t.Fatalf("question %d: expected category %s, got %s", question.ID, expected, question.Category)
		}
	}
}

func TestSelectQuestionsUnknownRoleFallsBack(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	selector := NewSelector(DefaultBank(), 0, 0, rng)

	candidate := &Candidate{
		Name:       "Sam Poe",
		Phone:      "+1-555-0101",
		JobRole:    "Marine Biologist",
		ResumeText: "field research and data collection",
	}

	questions := selector.SelectQuestions(candidate)
	if len(questions) != 5 {
		t.Fatalf("expected 5 questions for unknown role, got %d", len(questions))
	}

	defaults := DefaultBank().Default
	for _, question := range questions[:DefaultTechnicalCount] {
		if !contains(defaults.Technical, question.Text) {
			t.Fatalf("technical question %q is not from the default pool", question.Text)
		}
	}
	if !contains(defaults.Behavioral, questions[4].Text) {
		t.Fatalf("behavioral question %q is not from the default pool", questions[4].Text)
	}
}

func TestSelectQuestionsPersonalization(t *testing.T) {
	// The stub shuffle keeps the pool order, so the first question is known.
	selector := NewSelector(DefaultBank(), 0, 0, &stubRand{})

	questions := selector.SelectQuestions(frontendCandidate("Built apps with React and TypeScript daily"))

	first := questions[0].Text
	prefix := "I see you have experience with react, typescript. "
	if !strings.HasPrefix(first, prefix) {
		t.Fatalf("expected personalization prefix %q, got %q", prefix, first)
	}
	if !strings.HasSuffix(first, "Explain the virtual DOM in React and how it improves performance.") {
		t.Fatalf("expected original question text preserved, got %q", first)
	}

	for _, question := range questions[1:] {
		if strings.HasPrefix(question.Text, "I see you have experience with") {
			t.Fatalf("question %d should not be personalized", question.ID)
		}
	}
}

func TestSelectQuestionsPersonalizationCapsAtThree(t *testing.T) {
	selector := NewSelector(DefaultBank(), 0, 0, &stubRand{})

	questions := selector.SelectQuestions(frontendCandidate("react angular vue javascript typescript"))

	prefix := "I see you have experience with react, angular, vue. "
	if !strings.HasPrefix(questions[0].Text, prefix) {
		t.Fatalf("expected at most three keywords in %q", questions[0].Text)
	}
}

func TestSelectQuestionsNoKeywordsLeavesTextUnchanged(t *testing.T) {
	selector := NewSelector(DefaultBank(), 0, 0, &stubRand{})

	questions := selector.SelectQuestions(frontendCandidate("ten years of leadership"))

	expected := DefaultBank().Roles["Frontend Developer"].Technical[0]
	if questions[0].Text != expected {
		t.Fatalf("expected unmodified first question %q, got %q", expected, questions[0].Text)
	}
}

func TestSelectQuestionsTopsUpShortPools(t *testing.T) {
	bank := &Bank{
		Roles: map[string]Pool{
			"Data Analyst": {
				Technical:  []string{"How do you validate a dataset?"},
				Behavioral: []string{"Tell me about a report that changed a decision."},
			},
		},
		Default: DefaultBank().Default,
	}

	selector := NewSelector(bank, 0, 0, rand.New(rand.NewSource(3)))

	candidate := &Candidate{
		Name:       "Kim Ash",
		Phone:      "+1-555-0102",
		JobRole:    "Data Analyst",
		ResumeText: "spreadsheets",
	}

	questions := selector.SelectQuestions(candidate)
	if len(questions) != 5 {
		t.Fatalf("expected 5 questions after top-up, got %d", len(questions))
	}
}
