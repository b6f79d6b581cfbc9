package interview

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func newTestSession() *Session {
	candidate := &Candidate{
		Name:       "Alex Reed",
		Phone:      "+1-555-0103",
		JobRole:    "Backend Developer",
		ResumeText: "five years with Go services",
	}
	questions := []*Question{
		{ID: 1, Text: "Explain RESTful API design principles.", Category: Technical},
		{ID: 2, Text: "Tell me about a time you led a project.", Category: Behavioral},
	}
	return NewSession(candidate, questions, NewEvaluator(&stubRand{}, zap.NewNop()))
}

func TestSessionSubmitAdvances(t *testing.T) {
	session := newTestSession()

	if session.ID == "" {
		t.Fatal("expected a generated session id")
	}
	if session.Done() {
		t.Fatal("fresh session must not be done")
	}

	first := session.Current()
	answer, err := session.Submit(strings.Repeat("api design word ", 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer.QuestionID != first.ID {
		t.Fatalf("expected answer for question %d, got %d", first.ID, answer.QuestionID)
	}

	answered, total := session.Progress()
	if answered != 1 || total != 2 {
		t.Fatalf("expected progress 1/2, got %d/%d", answered, total)
	}
	if session.Current().ID != 2 {
		t.Fatalf("expected cursor on question 2, got %d", session.Current().ID)
	}

	if _, err := session.Submit(strings.Repeat("team result word ", 10)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !session.Done() {
		t.Fatal("session must be done after the last answer")
	}
	if session.Current() != nil {
		t.Fatal("Current must return nil once done")
	}
	if len(session.Answers) != 2 {
		t.Fatalf("expected 2 answers, got %d", len(session.Answers))
	}
}

func TestSessionSubmitRejectsEmptyTranscript(t *testing.T) {
	session := newTestSession()

	_, err := session.Submit("  \t ")
	if !errors.Is(err, ErrEmptyTranscript) {
		t.Fatalf("expected ErrEmptyTranscript, got %v", err)
	}

	answered, _ := session.Progress()
	if answered != 0 {
		t.Fatal("rejected submit must not advance the cursor")
	}
	if len(session.Answers) != 0 {
		t.Fatal("rejected submit must not append an answer")
	}
}

func TestSessionCompleteRejectsMutation(t *testing.T) {
	session := newTestSession()
	for !session.Done() {
		if _, err := session.Submit("a plain answer with enough words to score"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if _, err := session.Submit("late answer"); !errors.Is(err, ErrSessionComplete) {
		t.Fatalf("expected ErrSessionComplete from Submit, got %v", err)
	}
	if err := session.Record("late transcript"); !errors.Is(err, ErrSessionComplete) {
		t.Fatalf("expected ErrSessionComplete from Record, got %v", err)
	}
	if err := session.Retake(); !errors.Is(err, ErrSessionComplete) {
		t.Fatalf("expected ErrSessionComplete from Retake, got %v", err)
	}
}

func TestSessionRetakeClearsPending(t *testing.T) {
	session := newTestSession()

	if err := session.Record("first attempt at an answer"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Pending() != "first attempt at an answer" {
		t.Fatalf("unexpected pending transcript %q", session.Pending())
	}

	if err := session.Retake(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Pending() != "" {
		t.Fatal("Retake must clear the pending transcript")
	}

	answered, _ := session.Progress()
	if answered != 0 {
		t.Fatal("Retake must not advance the cursor")
	}
}

func TestSessionSummarize(t *testing.T) {
	session := newTestSession()

	if _, err := session.Summarize(); !errors.Is(err, ErrSessionIncomplete) {
		t.Fatalf("expected ErrSessionIncomplete, got %v", err)
	}

	for !session.Done() {
		if _, err := session.Submit(strings.Repeat("steady answer ", 15)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	summary, err := session.Summarize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.FinalRating < 1 || summary.FinalRating > 10 {
		t.Fatalf("final rating %v out of range", summary.FinalRating)
	}
	if summary.Recommendation == "" {
		t.Fatal("expected a recommendation")
	}
}
